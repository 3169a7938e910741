package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/debate-arena/ai"
	"github.com/Dosada05/debate-arena/brackets"
	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
)

const (
	// autoStartSize starts the bracket without waiting for a full house.
	autoStartSize = 4

	defaultMaxParticipants = 8
	maxParticipantsLimit   = 64

	// judgmentFeedCap bounds the recent-judgments feed.
	judgmentFeedCap = 20

	judgeTimeout = 30 * time.Second
)

// TournamentService owns tournament lifecycle: registration, bracket
// construction, match judging, and progression. All mutation happens
// under the tournament's registry lock; AI judging runs outside it.
type TournamentService struct {
	reg    *registry.Registry
	judge  ai.Collaborator
	hub    *brackets.Hub
	logger *slog.Logger

	judgmentsMu sync.Mutex
	judgments   []models.Judgment
}

func NewTournamentService(reg *registry.Registry, judge ai.Collaborator, hub *brackets.Hub, logger *slog.Logger) *TournamentService {
	return &TournamentService{
		reg:    reg,
		judge:  judge,
		hub:    hub,
		logger: logger,
	}
}

// CreateTournamentInput is the validated creation request.
type CreateTournamentInput struct {
	Name            string
	Format          string
	BracketKind     string
	Description     string
	SkillLevel      string
	MaxParticipants int
	PrizePool       int
}

// CreateTournament registers a new tournament in the registration state
// and returns a snapshot of it.
func (s *TournamentService) CreateTournament(in CreateTournamentInput) (*models.Tournament, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tournament name is required", ErrValidation)
	}
	maxP := in.MaxParticipants
	if maxP <= 0 {
		maxP = defaultMaxParticipants
	}
	if maxP < 2 || maxP > maxParticipantsLimit {
		return nil, fmt.Errorf("%w: max_participants must be between 2 and %d", ErrValidation, maxParticipantsLimit)
	}

	kind := models.BracketKind(in.BracketKind)
	switch kind {
	case models.BracketSingleElimination, models.BracketDoubleElimination, models.BracketRoundRobin:
	case "":
		kind = models.BracketSingleElimination
	default:
		return nil, fmt.Errorf("%w: unknown tournament type %q", ErrValidation, in.BracketKind)
	}

	t := &models.Tournament{
		ID:              s.reg.NewTournamentCode(),
		Name:            name,
		Format:          LookupFormat(in.Format).Key,
		BracketKind:     kind,
		Description:     strings.TrimSpace(in.Description),
		SkillLevel:      in.SkillLevel,
		MaxParticipants: maxP,
		PrizePool:       in.PrizePool,
		Status:          models.TournamentRegistration,
		Participants:    []*models.Participant{},
		CreatedAt:       time.Now(),
	}
	if err := s.reg.Tournaments.Create(t.ID, t); err != nil {
		return nil, fmt.Errorf("create tournament: %w", err)
	}

	s.logger.Info("tournament created",
		slog.String("tournament_id", t.ID),
		slog.String("name", t.Name),
		slog.String("type", string(kind)))
	return registry.DeepCopy(t), nil
}

// JoinTournament adds a participant during registration. Reaching either
// capacity or the auto-start size starts the tournament in the same
// critical section, so there is no window where a full tournament still
// accepts entrants.
func (s *TournamentService) JoinTournament(tournamentID, participantName, skillLevel string) (*models.Tournament, error) {
	participantName = strings.TrimSpace(participantName)
	if participantName == "" {
		return nil, fmt.Errorf("%w: participant name is required", ErrValidation)
	}
	if strings.EqualFold(participantName, models.Bye) {
		return nil, fmt.Errorf("%w: %q is a reserved name", ErrValidation, participantName)
	}

	var snapshot *models.Tournament
	var started bool
	err := s.reg.Tournaments.With(tournamentID, func(t *models.Tournament) error {
		if t.Status != models.TournamentRegistration {
			return ErrRegistrationClosed
		}
		if t.FindParticipant(participantName) != nil {
			return ErrNameTaken
		}
		if len(t.Participants) >= t.MaxParticipants {
			return ErrTournamentFull
		}

		t.Participants = append(t.Participants, &models.Participant{
			Name:       participantName,
			SkillLevel: skillLevel,
			JoinedAt:   time.Now(),
		})

		if len(t.Participants) >= t.MaxParticipants || len(t.Participants) >= autoStartSize {
			s.startLocked(t)
			started = true
		}
		snapshot = registry.DeepCopy(t)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.hub.Publish(tournamentID, brackets.EventBracketUpdated, snapshot)
	if started {
		s.logger.Info("tournament started",
			slog.String("tournament_id", tournamentID),
			slog.Int("participants", len(snapshot.Participants)))
	}
	return snapshot, nil
}

// StartTournament force-starts a tournament that is still registering.
// At least two participants are required.
func (s *TournamentService) StartTournament(tournamentID string) (*models.Tournament, error) {
	var snapshot *models.Tournament
	err := s.reg.Tournaments.With(tournamentID, func(t *models.Tournament) error {
		if t.Status != models.TournamentRegistration {
			return ErrRegistrationClosed
		}
		if len(t.Participants) < 2 {
			return ErrBracketNotReady
		}
		s.startLocked(t)
		snapshot = registry.DeepCopy(t)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.hub.Publish(tournamentID, brackets.EventBracketUpdated, snapshot)
	return snapshot, nil
}

// startLocked builds the bracket and flips the tournament active.
// Caller holds the tournament lock.
func (s *TournamentService) startLocked(t *models.Tournament) {
	names := make([]string, 0, len(t.Participants))
	for _, p := range t.Participants {
		names = append(names, p.Name)
	}
	t.Bracket = brackets.Build(t.BracketKind, names)
	t.TotalMatches = brackets.CountableMatches(t.Bracket)
	t.CompletedMatches = 0
	t.CurrentRound = 1
	t.Status = models.TournamentActive
}

// SubmitResultInput records a match outcome directly, without AI judging.
type SubmitResultInput struct {
	MatchID       string
	Winner        string
	Scores        map[string]int
	Motion        string
	JudgeFeedback string
	Override      bool
}

// SubmitMatchResult settles a match with a caller-provided winner and
// advances the bracket.
func (s *TournamentService) SubmitMatchResult(tournamentID string, in SubmitResultInput) (*models.Tournament, error) {
	if in.MatchID == "" || in.Winner == "" {
		return nil, fmt.Errorf("%w: match_id and winner are required", ErrValidation)
	}

	var snapshot *models.Tournament
	err := s.reg.Tournaments.With(tournamentID, func(t *models.Tournament) error {
		if t.Status != models.TournamentActive {
			return ErrMatchCompleted
		}
		if err := brackets.RecordMatchResult(t, brackets.MatchResult{
			MatchID:       in.MatchID,
			Winner:        in.Winner,
			Scores:        in.Scores,
			Motion:        in.Motion,
			JudgeFeedback: in.JudgeFeedback,
			Override:      in.Override,
		}); err != nil {
			return err
		}
		snapshot = registry.DeepCopy(t)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.publishProgress(tournamentID, snapshot, in.MatchID)
	return snapshot, nil
}

// JudgeMatchInput carries both sides' transcripts for AI adjudication.
type JudgeMatchInput struct {
	MatchID string
	Speech1 string // participant1's case
	Speech2 string // participant2's case
}

// JudgeMatch adjudicates a match from the two submitted speeches: the AI
// judge scores both independently, the higher overall score wins, and a
// tie goes to participant1. The evaluation runs outside the tournament
// lock; the state is revalidated when the result is recorded.
func (s *TournamentService) JudgeMatch(ctx context.Context, tournamentID string, in JudgeMatchInput) (*models.Tournament, error) {
	if in.MatchID == "" {
		return nil, fmt.Errorf("%w: match_id is required", ErrValidation)
	}

	// Snapshot what the judge needs.
	var (
		p1, p2, motion, tName, skill string
	)
	err := s.reg.Tournaments.View(tournamentID, func(t *models.Tournament) error {
		if t.Status != models.TournamentActive {
			return ErrMatchCompleted
		}
		m, _ := t.Bracket.FindMatch(in.MatchID)
		if m == nil {
			return ErrMatchNotFound
		}
		if m.Participant1 == "" || m.Participant2 == "" {
			return brackets.ErrMatchNotReady
		}
		if m.Status == models.MatchCompleted {
			return ErrMatchCompleted
		}
		p1, p2, motion = m.Participant1, m.Participant2, m.Motion
		tName, skill = t.Name, t.SkillLevel
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	if motion == "" {
		motion = s.motionFor(ctx, "", skill)
	}

	eval1, eval2 := s.judgeSpeeches(ctx, motion, skill, in.Speech1, in.Speech2)

	winner := p1
	if eval2.OverallScore > eval1.OverallScore {
		winner = p2
	}
	feedback := fmt.Sprintf("%s: %s\n\n%s: %s", p1, eval1.DetailedFeedback, p2, eval2.DetailedFeedback)

	var snapshot *models.Tournament
	err = s.reg.Tournaments.With(tournamentID, func(t *models.Tournament) error {
		if err := brackets.RecordMatchResult(t, brackets.MatchResult{
			MatchID: in.MatchID,
			Winner:  winner,
			Scores: map[string]int{
				p1: eval1.OverallScore,
				p2: eval2.OverallScore,
			},
			Motion:        motion,
			JudgeFeedback: feedback,
		}); err != nil {
			return err
		}
		snapshot = registry.DeepCopy(t)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.recordJudgment(models.Judgment{
		ID:             uuid.NewString(),
		TournamentID:   tournamentID,
		TournamentName: tName,
		MatchID:        in.MatchID,
		JudgeName:      "AI Judge",
		Participant1:   p1,
		Participant2:   p2,
		Winner:         winner,
		Score:          fmt.Sprintf("%d - %d", eval1.OverallScore, eval2.OverallScore),
		Timestamp:      time.Now(),
	})
	s.publishProgress(tournamentID, snapshot, in.MatchID)
	return snapshot, nil
}

// judgeSpeeches scores both transcripts concurrently. A failed
// evaluation degrades to the deterministic default so a judge outage
// never strands a bracket.
func (s *TournamentService) judgeSpeeches(ctx context.Context, motion, skill, speech1, speech2 string) (ai.Evaluation, ai.Evaluation) {
	ctx, cancel := context.WithTimeout(ctx, judgeTimeout)
	defer cancel()

	var eval1, eval2 ai.Evaluation
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		eval1 = s.evaluateOne(gctx, motion, skill, "government", speech1)
		return nil
	})
	g.Go(func() error {
		eval2 = s.evaluateOne(gctx, motion, skill, "opposition", speech2)
		return nil
	})
	g.Wait()
	return eval1, eval2
}

func (s *TournamentService) evaluateOne(ctx context.Context, motion, skill, position, speech string) ai.Evaluation {
	if strings.TrimSpace(speech) == "" {
		ev := ai.DefaultEvaluation()
		ev.OverallScore = 50
		ev.DetailedFeedback = "No speech was submitted."
		return ev
	}
	ev, err := s.judge.Evaluate(ctx, speech, ai.EvaluationContext{
		Motion:          motion,
		SpeakerPosition: position,
		SpeechType:      models.SpeechConstructive,
		SpeakerLevel:    skill,
	})
	if err != nil {
		s.logger.Warn("match evaluation failed, using default",
			slog.String("position", position),
			slog.Any("error", err))
		return ai.DefaultEvaluation()
	}
	return ev
}

func (s *TournamentService) motionFor(ctx context.Context, format, skill string) string {
	ctx, cancel := context.WithTimeout(ctx, judgeTimeout)
	defer cancel()
	motion, err := s.judge.GenerateMotion(ctx, format, skill)
	if err != nil || strings.TrimSpace(motion) == "" {
		s.logger.Warn("motion generation failed, using fallback", slog.Any("error", err))
		return "This house believes that technology does more good than harm"
	}
	return strings.TrimSpace(motion)
}

func (s *TournamentService) publishProgress(tournamentID string, snapshot *models.Tournament, matchID string) {
	s.hub.Publish(tournamentID, brackets.EventMatchCompleted, map[string]any{
		"match_id":   matchID,
		"tournament": snapshot,
	})
	s.hub.Publish(tournamentID, brackets.EventBracketUpdated, snapshot)
	if snapshot.Status == models.TournamentCompleted {
		s.hub.Publish(tournamentID, brackets.EventTournamentDone, map[string]any{
			"tournament_id": tournamentID,
			"winner":        snapshot.Winner,
		})
		s.logger.Info("tournament completed",
			slog.String("tournament_id", tournamentID),
			slog.String("winner", snapshot.Winner))
	}
}

// recordJudgment prepends to the feed and trims it to the cap.
func (s *TournamentService) recordJudgment(j models.Judgment) {
	s.judgmentsMu.Lock()
	defer s.judgmentsMu.Unlock()
	s.judgments = append([]models.Judgment{j}, s.judgments...)
	if len(s.judgments) > judgmentFeedCap {
		s.judgments = s.judgments[:judgmentFeedCap]
	}
}

// RecentJudgments returns the latest AI adjudications, newest first.
func (s *TournamentService) RecentJudgments() []models.Judgment {
	s.judgmentsMu.Lock()
	defer s.judgmentsMu.Unlock()
	out := make([]models.Judgment, len(s.judgments))
	copy(out, s.judgments)
	return out
}

// GetTournament returns a snapshot by ID.
func (s *TournamentService) GetTournament(tournamentID string) (*models.Tournament, error) {
	var snapshot *models.Tournament
	err := s.reg.Tournaments.View(tournamentID, func(t *models.Tournament) error {
		snapshot = registry.DeepCopy(t)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return snapshot, nil
}

// ListTournaments returns snapshots of every tournament, newest first.
func (s *TournamentService) ListTournaments() []*models.Tournament {
	var out []*models.Tournament
	s.reg.Tournaments.ForEach(func(_ string, t *models.Tournament) {
		out = append(out, registry.DeepCopy(t))
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Stats aggregates the platform-wide tournament rollup.
func (s *TournamentService) Stats() models.TournamentStats {
	var stats models.TournamentStats
	s.reg.Tournaments.ForEach(func(_ string, t *models.Tournament) {
		if t.Status == models.TournamentActive {
			stats.ActiveTournaments++
		}
		stats.TotalParticipants += len(t.Participants)
		stats.CompletedMatches += t.CompletedMatches
		stats.TotalPrizes += t.PrizePool
	})
	return stats
}

// mapStoreErr translates registry misses into the service sentinel.
func (s *TournamentService) mapStoreErr(err error) error {
	if err == registry.ErrKeyNotFound {
		return ErrTournamentNotFound
	}
	return err
}
