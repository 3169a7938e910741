package ai

import (
	"fmt"
	"strings"

	"github.com/Dosada05/debate-arena/models"
)

func buildDebaterPrompt(sc SpeechContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI debater arguing the %s side of the motion: %q.\n", sc.Position, sc.Motion)
	fmt.Fprintf(&b, "Deliver a %s speech at %s difficulty.\n", sc.SpeechType, sc.Difficulty)

	if len(sc.PreviousSpeeches) > 0 {
		b.WriteString("\nPrevious speeches in this debate:\n")
		for _, sp := range sc.PreviousSpeeches {
			fmt.Fprintf(&b, "[%s, %s]: %s\n", sp.Speaker, sp.Type, truncate(sp.Content, 500))
		}
		b.WriteString("\nEngage directly with the arguments above.\n")
	}

	b.WriteString("\nRespond with the speech text only, no preamble and no markdown formatting.")
	return b.String()
}

func buildEvaluationPrompt(speechText string, ec EvaluationContext) string {
	var b strings.Builder
	b.WriteString("You are an experienced debate adjudicator scoring on the WUDC 50-100 scale.\n")
	fmt.Fprintf(&b, "Motion: %q\nSpeaker position: %s\nSpeech type: %s\nSpeaker level: %s\n\n",
		ec.Motion, ec.SpeakerPosition, ec.SpeechType, ec.SpeakerLevel)
	fmt.Fprintf(&b, "Speech:\n%s\n\n", speechText)
	b.WriteString(`Respond with a single JSON object, no other text:
{
  "argument_quality": <1-10>,
  "logical_coherence": <1-10>,
  "rhetorical_techniques": <1-10>,
  "response_to_opposition": <1-10>,
  "structure_and_timing": <1-10>,
  "delivery_and_presentation": <1-10>,
  "overall_score": <50-100>,
  "detailed_feedback": "<2-3 sentences>",
  "strengths": ["..."],
  "areas_for_improvement": ["..."],
  "points_awarded": <int>
}`)
	return b.String()
}

func buildPOIPrompt(poiText string, pc POIContext) string {
	var b strings.Builder
	b.WriteString("You are an AI debater. A Point of Information has been offered to you.\n\n")
	fmt.Fprintf(&b, "POI: %q\nMotion: %s\nYour position: %s\nYour current argument: %s\n\n",
		poiText, pc.Motion, pc.AIPosition, pc.CurrentArgument)
	b.WriteString(`ACCEPT only if the POI challenges your argument in a way you can strongly rebut,
or asks for clarification you can provide confidently. DECLINE if it supports the
opposing side, is irrelevant, or would weaken your case.

Response format (be very clear):
DECISION: [ACCEPT/DECLINE]
RESPONSE: [if ACCEPT, a strong rebuttal; if DECLINE, a polite decline]`)
	return b.String()
}

func buildLessonPrompt(lesson models.Lesson, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a debate coach grading a %s-level exercise worth up to %d points.\n",
		lesson.Difficulty, lesson.PointsPossible)
	fmt.Fprintf(&b, "Lesson: %s\nExercise: %s\n\nStudent answer:\n%s\n\n", lesson.Title, lesson.Exercise, answer)
	b.WriteString(`Respond with a single JSON object, no other text:
{
  "correctness": <1-10>,
  "explanation_quality": <1-10>,
  "suggestions": ["..."],
  "points": <0-` + fmt.Sprint(lesson.PointsPossible) + `>,
  "next_steps": "<one sentence>"
}`)
	return b.String()
}
