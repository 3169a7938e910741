package services

import "github.com/Dosada05/debate-arena/models"

// lessonCatalog is the static curriculum. The all_lessons and
// min_advanced_lessons achievement criteria count against this list.
var lessonCatalog = []models.Lesson{
	{
		ID:             "debate_basics_1",
		Title:          "What is Debate?",
		Level:          "beginner",
		Description:    "Introduction to competitive debate and its fundamental principles",
		Content:        "Debate is a structured discussion where participants present arguments for and against a given motion. Teams are assigned positions and must construct logical, evidence-based arguments judged on quality of reasoning and clash.",
		Exercise:       "Explain in your own words what makes a good argument in debate. Include at least three specific characteristics and explain why each is important.",
		Difficulty:     "beginner",
		EstimatedTime:  10,
		PointsPossible: 25,
	},
	{
		ID:             "debate_basics_2",
		Title:          "Argument Structure",
		Level:          "beginner",
		Description:    "Learn the basic structure of a debate argument: Claim, Warrant, Impact",
		Content:        "Every strong debate argument follows the CWI structure: the Claim is the assertion you make, the Warrant is the reasoning or evidence that supports it, and the Impact explains why it matters.",
		Exercise:       "Create a complete CWI argument about whether social media should be regulated. Clearly label each component and explain why your warrant logically supports your claim.",
		Difficulty:     "beginner",
		EstimatedTime:  15,
		PointsPossible: 25,
	},
	{
		ID:             "debate_basics_3",
		Title:          "Types of Evidence",
		Level:          "beginner",
		Description:    "Understanding different types of evidence and how to use them effectively",
		Content:        "Strong arguments require strong evidence: statistics, expert testimony, real-world examples, and logical reasoning. Judge evidence by recency, relevance, reliability, and how representative it is.",
		Exercise:       "Choose a debate topic and provide one example of each type of evidence (statistical, expert, example, logical) that could be used.",
		Difficulty:     "beginner",
		EstimatedTime:  20,
		PointsPossible: 30,
	},
	{
		ID:             "debate_intermediate_1",
		Title:          "Rebuttal Strategies",
		Level:          "intermediate",
		Description:    "Advanced techniques for attacking and defending arguments",
		Content:        "Effective rebuttal follows four steps: signpost the argument you are addressing, summarize the opponent's position, attack its logic, evidence, or impact, and rebuild your own case. Attack the strongest version of the opposing argument, not a strawman.",
		Exercise:       "Given this argument: \"Video games cause violence because players practice violent behaviors repeatedly,\" provide a comprehensive rebuttal using the 4-step process.",
		Difficulty:     "intermediate",
		EstimatedTime:  25,
		PointsPossible: 50,
	},
	{
		ID:             "debate_intermediate_2",
		Title:          "Case Building & Strategy",
		Level:          "intermediate",
		Description:    "How to construct a comprehensive debate case with multiple arguments",
		Content:        "A strong case defines key terms, establishes criteria for evaluating arguments, presents two to four contentions, and weighs them against the opposition's material. Select arguments for strength, uniqueness, impact, and breadth.",
		Exercise:       "Build a comprehensive case structure for the motion \"This house would implement universal basic income.\" Include definition, criteria, and at least 3 contentions with brief explanations.",
		Difficulty:     "intermediate",
		EstimatedTime:  30,
		PointsPossible: 50,
	},
	{
		ID:             "debate_intermediate_3",
		Title:          "Cross-Examination Skills",
		Level:          "intermediate",
		Description:    "Mastering the art of questioning and responding under pressure",
		Content:        "Cross-examination rewards short, specific questions that build toward a goal: clarification, limitation, comparison, consequences, and sourcing. When answering, be direct, clarify ambiguity, and never volunteer extra ground.",
		Exercise:       "Create 5 strategic cross-examination questions for someone arguing that \"Social media platforms should be held liable for user-generated content.\" Explain what each question aims to achieve.",
		Difficulty:     "intermediate",
		EstimatedTime:  25,
		PointsPossible: 45,
	},
	{
		ID:             "debate_advanced_1",
		Title:          "Advanced Rhetorical Techniques",
		Level:          "advanced",
		Description:    "Sophisticated persuasion strategies and logical frameworks",
		Content:        "Advanced debaters argue through explicit frameworks: consequentialist, deontological, virtue-ethical, or contractualist. Techniques include burden shifting, definitional control, narrative building, and precedent setting.",
		Exercise:       "Analyze the motion \"This house would prioritize economic growth over environmental protection\" using TWO different philosophical frameworks. Explain how each framework would approach the debate differently.",
		Difficulty:     "advanced",
		EstimatedTime:  35,
		PointsPossible: 60,
	},
	{
		ID:             "debate_advanced_2",
		Title:          "Complex Weighing & Comparison",
		Level:          "advanced",
		Description:    "Advanced techniques for comparing and weighing competing arguments",
		Content:        "Weighing goes beyond impact size: compare magnitude, probability, timeframe, reversibility, and certainty. Turn opposing arguments, absorb their concerns, and identify the thresholds at which impacts tip.",
		Exercise:       "For the motion \"This house would ban private healthcare,\" create a comprehensive weighing analysis comparing healthcare accessibility vs. economic efficiency. Use at least 4 different weighing mechanisms.",
		Difficulty:     "advanced",
		EstimatedTime:  40,
		PointsPossible: 70,
	},
	{
		ID:             "debate_advanced_3",
		Title:          "Strategic Debate Psychology",
		Level:          "advanced",
		Description:    "Understanding psychology, game theory, and strategic thinking in debate",
		Content:        "Elite debaters manage judge attention and memory, frame evaluations through anchoring, and adapt strategy to opponent moves the way game theory prescribes: weigh safe versus risky choices given the expected response.",
		Exercise:       "Design a strategic approach for a debate where you have weaker evidence but stronger logical framework. Explain how you would use psychological principles to maximize your chances of success.",
		Difficulty:     "advanced",
		EstimatedTime:  45,
		PointsPossible: 80,
	},
}

// LookupLesson returns the lesson with the given ID, or nil.
func LookupLesson(id string) *models.Lesson {
	for i := range lessonCatalog {
		if lessonCatalog[i].ID == id {
			return &lessonCatalog[i]
		}
	}
	return nil
}

// LessonsForLevel filters the catalog by level.
func LessonsForLevel(level string) []models.Lesson {
	var out []models.Lesson
	for _, l := range lessonCatalog {
		if l.Level == level {
			out = append(out, l)
		}
	}
	return out
}

// AllLessons returns the full catalog.
func AllLessons() []models.Lesson {
	out := make([]models.Lesson, len(lessonCatalog))
	copy(out, lessonCatalog)
	return out
}
