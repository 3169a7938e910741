package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/debate-arena/ai"
	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
)

const (
	speechTimeout  = 30 * time.Second
	verdictTimeout = 60 * time.Second

	// scoreOffset recenters the WUDC 50-100 judge scale before averaging.
	scoreOffset = 15
	// pointsFactor converts the adjusted average into profile points.
	pointsFactor = 0.5
)

// DebateService runs one-on-one practice debates against the AI. The
// turn counter is the number of speeches appended so far; the session
// completes exactly when it reaches the format's speech order length.
//
// AI calls never run under a session lock. Each submission snapshots the
// session, releases the lock for generation, and re-acquires it to
// commit. A per-session in-flight guard keeps concurrent submissions
// from interleaving their read-generate-commit windows.
type DebateService struct {
	reg    *registry.Registry
	collab ai.Collaborator
	logger *slog.Logger

	inflightMu sync.Mutex
	inflight   map[string]bool
}

func NewDebateService(reg *registry.Registry, collab ai.Collaborator, logger *slog.Logger) *DebateService {
	return &DebateService{
		reg:      reg,
		collab:   collab,
		logger:   logger,
		inflight: make(map[string]bool),
	}
}

func (s *DebateService) acquire(sessionID string) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	if s.inflight[sessionID] {
		return false
	}
	s.inflight[sessionID] = true
	return true
}

func (s *DebateService) release(sessionID string) {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	delete(s.inflight, sessionID)
}

// StartDebateInput is the validated session request.
type StartDebateInput struct {
	Motion       string
	Format       string
	Difficulty   string
	UserPosition string // government or opposition
}

// StartDebate creates a session. When the format's first speaker is the
// AI's side, the opening speech is generated before the session is
// returned, so the user always sees whose turn it is.
func (s *DebateService) StartDebate(ctx context.Context, in StartDebateInput) (*models.DebateSession, error) {
	format := LookupFormat(in.Format)

	userPos := strings.ToLower(strings.TrimSpace(in.UserPosition))
	if userPos != "government" && userPos != "opposition" {
		userPos = "government"
	}
	aiPos := "opposition"
	if userPos == "opposition" {
		aiPos = "government"
	}

	motion := strings.TrimSpace(in.Motion)
	if motion == "" {
		motion = s.generateMotion(ctx, format.Key, in.Difficulty)
	}

	session := &models.DebateSession{
		ID:             uuid.NewString(),
		Motion:         motion,
		Format:         format.Key,
		Difficulty:     in.Difficulty,
		UserPosition:   userPos,
		AIPosition:     aiPos,
		CurrentSpeaker: models.SpeakerUser,
		Round:          0,
		Speeches:       []models.Speech{},
		POIs:           []models.POIRecord{},
		Status:         models.DebateInProgress,
		SpeechOrder:    format.SpeechOrder,
		TimeLimits:     format.TimeLimits,
		StartTime:      time.Now(),
	}

	aiOpens := format.FirstSpeaker == aiPos
	if aiOpens {
		session.CurrentSpeaker = models.SpeakerAI
	}

	if err := s.reg.Debates.Create(session.ID, session); err != nil {
		return nil, fmt.Errorf("create debate session: %w", err)
	}
	s.logger.Info("debate started",
		slog.String("session_id", session.ID),
		slog.String("format", format.Key),
		slog.String("user_position", userPos))

	if aiOpens {
		opening := s.generateSpeech(ctx, session, models.SpeechConstructive)
		err := s.reg.Debates.With(session.ID, func(d *models.DebateSession) error {
			appendSpeech(d, models.SpeakerAI, models.SpeechConstructive, opening)
			return nil
		})
		if err != nil {
			return nil, s.mapStoreErr(err)
		}
	}

	return s.GetSession(session.ID)
}

// appendSpeech commits one speech: the turn counter advances, the floor
// passes to the other side, and reaching the end of the speech order
// completes the session. Caller holds the session lock.
func appendSpeech(d *models.DebateSession, speaker models.Speaker, kind models.SpeechType, content string) {
	d.Speeches = append(d.Speeches, models.Speech{
		Speaker:   speaker,
		Type:      kind,
		Content:   content,
		Timestamp: time.Now(),
	})
	d.Round = len(d.Speeches)

	if d.Round >= len(d.SpeechOrder) {
		d.Status = models.DebateCompleted
		d.EndTime = time.Now()
		return
	}
	if speaker == models.SpeakerUser {
		d.CurrentSpeaker = models.SpeakerAI
	} else {
		d.CurrentSpeaker = models.SpeakerUser
	}
}

// speechTypeFor picks the speech kind from the turn counter: the first
// two speeches of each side are constructive, everything after is
// rebuttal, and the last two slots of reply-format orders are replies.
func speechTypeFor(d *models.DebateSession) models.SpeechType {
	if d.Round >= len(d.SpeechOrder)-2 && hasReplySlot(d.SpeechOrder) {
		return models.SpeechReply
	}
	if d.Round > 2 {
		return models.SpeechRebuttal
	}
	return models.SpeechConstructive
}

func hasReplySlot(order []string) bool {
	for _, slot := range order {
		if strings.Contains(strings.ToLower(slot), "reply") {
			return true
		}
	}
	return false
}

// SpeechResult pairs the updated session with the judge's feedback on
// the speech just submitted.
type SpeechResult struct {
	Session  *models.DebateSession `json:"session"`
	Feedback ai.Evaluation         `json:"feedback"`
}

// SubmitSpeech appends the user's speech and, while turns remain, the
// AI's reply. The submitted speech is evaluated and the feedback
// returned with the result. Submissions against a completed session
// fail with ErrDebateCompleted; concurrent submissions to the same
// session fail with ErrDebateBusy rather than queueing.
func (s *DebateService) SubmitSpeech(ctx context.Context, sessionID, content string) (*SpeechResult, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: speech content is required", ErrValidation)
	}
	if !s.acquire(sessionID) {
		return nil, ErrDebateBusy
	}
	defer s.release(sessionID)

	// Commit the user's speech and snapshot for generation.
	var snapshot *models.DebateSession
	err := s.reg.Debates.With(sessionID, func(d *models.DebateSession) error {
		if d.Status == models.DebateCompleted {
			return ErrDebateCompleted
		}
		appendSpeech(d, models.SpeakerUser, speechTypeFor(d), content)
		snapshot = registry.DeepCopy(d)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	// Feedback on the submission and, while turns remain, the AI's reply.
	// Both calls run concurrently and outside the session lock.
	userSpeech := snapshot.Speeches[len(snapshot.Speeches)-1]
	replyKind := speechTypeFor(snapshot)
	var (
		feedback ai.Evaluation
		reply    string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		feedback = s.evaluateSpeech(gctx, snapshot, userSpeech)
		return nil
	})
	if snapshot.Status == models.DebateInProgress {
		g.Go(func() error {
			reply = s.generateSpeech(gctx, snapshot, replyKind)
			return nil
		})
	}
	g.Wait()

	if snapshot.Status == models.DebateInProgress {
		err = s.reg.Debates.With(sessionID, func(d *models.DebateSession) error {
			appendSpeech(d, models.SpeakerAI, replyKind, reply)
			return nil
		})
		if err != nil {
			return nil, s.mapStoreErr(err)
		}
	}

	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return &SpeechResult{Session: session, Feedback: feedback}, nil
}

// evaluateSpeech scores one user speech, falling back to the default
// evaluation when the collaborator is unavailable.
func (s *DebateService) evaluateSpeech(ctx context.Context, d *models.DebateSession, sp models.Speech) ai.Evaluation {
	callCtx, cancel := context.WithTimeout(ctx, speechTimeout)
	defer cancel()
	ev, err := s.collab.Evaluate(callCtx, sp.Content, ai.EvaluationContext{
		Motion:          d.Motion,
		SpeakerPosition: d.UserPosition,
		SpeechType:      sp.Type,
		SpeakerLevel:    d.Difficulty,
	})
	if err != nil {
		s.logger.Warn("speech feedback failed, using default", slog.Any("error", err))
		return ai.DefaultEvaluation()
	}
	return ev
}

// SubmitPOI offers a Point of Information to the AI speaker. The ruling
// is appended to the session's POI log; it never advances the turn
// counter. Formats without POIs reject the offer.
func (s *DebateService) SubmitPOI(ctx context.Context, sessionID, poiText string) (*models.POIRecord, error) {
	poiText = strings.TrimSpace(poiText)
	if poiText == "" {
		return nil, fmt.Errorf("%w: poi text is required", ErrValidation)
	}

	var (
		motion, aiPos, lastAI string
		formatKey             string
	)
	err := s.reg.Debates.View(sessionID, func(d *models.DebateSession) error {
		if d.Status == models.DebateCompleted {
			return ErrDebateCompleted
		}
		motion, aiPos, lastAI = d.Motion, d.AIPosition, d.LastAISpeech()
		formatKey = d.Format
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	if !LookupFormat(formatKey).POIAllowed {
		return nil, fmt.Errorf("%w: this format does not allow points of information", ErrValidation)
	}

	callCtx, cancel := context.WithTimeout(ctx, speechTimeout)
	defer cancel()
	ruling, err := s.collab.JudgePOI(callCtx, poiText, ai.POIContext{
		Motion:          motion,
		AIPosition:      aiPos,
		CurrentArgument: lastAI,
	})
	if err != nil {
		s.logger.Warn("poi ruling failed, declining", slog.Any("error", err))
		ruling = ai.DeclinedPOI()
	}

	record := models.POIRecord{
		UserPOI:    poiText,
		AIDecision: ruling.Decision,
		AIResponse: ruling.Response,
		Timestamp:  time.Now(),
	}
	err = s.reg.Debates.With(sessionID, func(d *models.DebateSession) error {
		if d.Status == models.DebateCompleted {
			return ErrDebateCompleted
		}
		d.POIs = append(d.POIs, record)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return &record, nil
}

// EndResult is what EndSession hands back: the verdict plus anything the
// finished debate unlocked.
type EndResult struct {
	Verdict              models.FinalVerdict  `json:"verdict"`
	UnlockedAchievements []models.Achievement `json:"unlocked_achievements,omitempty"`
}

// EndSession scores the debate and retires the session. Every human
// speech is evaluated; the verdict's overall score is the average of the
// per-speech scores after recentering, and the points awarded are half
// of that average. A session ended before the user spoke yields a zero
// verdict flagged NothingToScore. The session is removed from the
// registry either way; scored debates live on as profile summaries,
// unscored ones leave no trace.
func (s *DebateService) EndSession(ctx context.Context, sessionID, userID string) (*EndResult, error) {
	if !s.acquire(sessionID) {
		return nil, ErrDebateBusy
	}
	defer s.release(sessionID)

	var snapshot *models.DebateSession
	err := s.reg.Debates.With(sessionID, func(d *models.DebateSession) error {
		if d.Status != models.DebateCompleted {
			d.Status = models.DebateCompleted
			d.EndTime = time.Now()
		}
		snapshot = registry.DeepCopy(d)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	verdict := s.scoreSession(ctx, snapshot)
	s.reg.Debates.Delete(sessionID)

	unlocked := s.creditProfile(userID, snapshot, verdict)

	s.logger.Info("debate ended",
		slog.String("session_id", sessionID),
		slog.Float64("overall_score", verdict.OverallScore),
		slog.Int("points", verdict.Points))
	return &EndResult{Verdict: verdict, UnlockedAchievements: unlocked}, nil
}

// scoreSession evaluates every user speech concurrently and folds the
// results into the final verdict.
func (s *DebateService) scoreSession(ctx context.Context, d *models.DebateSession) models.FinalVerdict {
	userSpeeches := d.UserSpeeches()
	duration := int(math.Round(d.EndTime.Sub(d.StartTime).Minutes()))

	if len(userSpeeches) == 0 {
		return models.FinalVerdict{
			DetailedFeedback: "The debate ended before any of your speeches; there is nothing to score.",
			SpeechCount:      0,
			POICount:         len(d.POIs),
			DurationMinutes:  duration,
			NothingToScore:   true,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, verdictTimeout)
	defer cancel()

	evals := make([]ai.Evaluation, len(userSpeeches))
	g, gctx := errgroup.WithContext(ctx)
	for i, sp := range userSpeeches {
		i, sp := i, sp
		g.Go(func() error {
			ev, err := s.collab.Evaluate(gctx, sp.Content, ai.EvaluationContext{
				Motion:          d.Motion,
				SpeakerPosition: d.UserPosition,
				SpeechType:      sp.Type,
				SpeakerLevel:    d.Difficulty,
			})
			if err != nil {
				s.logger.Warn("speech evaluation failed, using default",
					slog.Int("speech_index", i),
					slog.Any("error", err))
				ev = ai.DefaultEvaluation()
			}
			evals[i] = ev
			return nil
		})
	}
	g.Wait()

	var total float64
	var feedback []string
	for i, ev := range evals {
		total += float64(ev.OverallScore - scoreOffset)
		feedback = append(feedback, fmt.Sprintf("Speech %d: %s", i+1, ev.DetailedFeedback))
	}
	avg := total / float64(len(evals))

	return models.FinalVerdict{
		OverallScore:     math.Round(avg*10) / 10,
		DetailedFeedback: strings.Join(feedback, "\n\n"),
		Points:           int(avg * pointsFactor),
		SpeechCount:      len(userSpeeches),
		POICount:         len(d.POIs),
		DurationMinutes:  duration,
	}
}

// creditProfile appends the debate summary, banks the points, and
// unlocks any achievements the updated history now qualifies for.
func (s *DebateService) creditProfile(userID string, d *models.DebateSession, verdict models.FinalVerdict) []models.Achievement {
	if userID == "" || verdict.NothingToScore {
		return nil
	}
	profile := s.ensureProfile(userID)

	var unlocked []models.Achievement
	err := s.reg.Profiles.With(profile, func(p *models.UserProfile) error {
		p.DebateHistory = append(p.DebateHistory, models.DebateSummary{
			DebateID:     d.ID,
			Motion:       d.Motion,
			Format:       d.Format,
			UserPosition: d.UserPosition,
			Result:       verdict,
			POICount:     len(d.POIs),
			CompletedAt:  time.Now(),
		})
		p.Points += verdict.Points

		unlocked = EvaluateAchievements(p)
		for _, a := range unlocked {
			p.Achievements = append(p.Achievements, a)
			p.Points += a.Points
		}
		p.Level = levelForPoints(p.Points)
		return nil
	})
	if err != nil {
		s.logger.Error("failed to credit profile", slog.String("user_id", userID), slog.Any("error", err))
		return nil
	}
	return unlocked
}

// ensureProfile creates the profile on first touch and returns the key.
func (s *DebateService) ensureProfile(userID string) string {
	if !s.reg.Profiles.Has(userID) {
		_ = s.reg.Profiles.Create(userID, &models.UserProfile{
			UserID:    userID,
			Level:     "beginner",
			CreatedAt: time.Now(),
		})
	}
	return userID
}

// GetSession returns a snapshot by ID.
func (s *DebateService) GetSession(sessionID string) (*models.DebateSession, error) {
	var snapshot *models.DebateSession
	err := s.reg.Debates.View(sessionID, func(d *models.DebateSession) error {
		snapshot = registry.DeepCopy(d)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return snapshot, nil
}

func (s *DebateService) generateSpeech(ctx context.Context, d *models.DebateSession, kind models.SpeechType) string {
	callCtx, cancel := context.WithTimeout(ctx, speechTimeout)
	defer cancel()
	text, err := s.collab.GenerateSpeech(callCtx, ai.SpeechContext{
		Motion:           d.Motion,
		Position:         d.AIPosition,
		SpeechType:       kind,
		Difficulty:       d.Difficulty,
		PreviousSpeeches: d.Speeches,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		s.logger.Warn("speech generation failed, using fallback", slog.Any("error", err))
		return ai.FallbackSpeech
	}
	return text
}

func (s *DebateService) generateMotion(ctx context.Context, format, difficulty string) string {
	callCtx, cancel := context.WithTimeout(ctx, speechTimeout)
	defer cancel()
	motion, err := s.collab.GenerateMotion(callCtx, format, difficulty)
	if err != nil || strings.TrimSpace(motion) == "" {
		s.logger.Warn("motion generation failed, using fallback", slog.Any("error", err))
		return "This house believes that social media does more harm than good"
	}
	return strings.TrimSpace(motion)
}

func (s *DebateService) mapStoreErr(err error) error {
	if err == registry.ErrKeyNotFound {
		return ErrDebateNotFound
	}
	return err
}
