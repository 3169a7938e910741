package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Dosada05/debate-arena/ai"
	"github.com/Dosada05/debate-arena/brackets"
	"github.com/Dosada05/debate-arena/models"
	"github.com/Dosada05/debate-arena/registry"
)

const (
	defaultRoomSize = 4
	maxRoomSize     = 16

	// RoomTTL is how long an idle room stays listed before the cleanup
	// worker reclaims it.
	RoomTTL = 4 * time.Hour

	motionTimeout = 20 * time.Second
)

// RoomService manages multi-user practice rooms: membership, chat, the
// shared speech timer, and kicking off a room debate.
type RoomService struct {
	reg    *registry.Registry
	collab ai.Collaborator
	hub    *brackets.Hub
	logger *slog.Logger
}

func NewRoomService(reg *registry.Registry, collab ai.Collaborator, hub *brackets.Hub, logger *slog.Logger) *RoomService {
	return &RoomService{reg: reg, collab: collab, hub: hub, logger: logger}
}

// CreateRoomInput is the validated creation request.
type CreateRoomInput struct {
	Name            string
	Format          string
	SkillLevel      string
	MaxParticipants int
	Creator         string
}

// CreateRoom opens a room with the creator as host and returns it.
func (s *RoomService) CreateRoom(in CreateRoomInput) (*models.Room, error) {
	creator := strings.TrimSpace(in.Creator)
	if creator == "" {
		return nil, fmt.Errorf("%w: creator name is required", ErrValidation)
	}
	size := in.MaxParticipants
	if size <= 0 {
		size = defaultRoomSize
	}
	if size < 2 || size > maxRoomSize {
		return nil, fmt.Errorf("%w: max_participants must be between 2 and %d", ErrValidation, maxRoomSize)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = creator + "'s Room"
	}

	room := &models.Room{
		Code:            s.reg.NewRoomCode(),
		Name:            name,
		Format:          LookupFormat(in.Format).Key,
		SkillLevel:      in.SkillLevel,
		MaxParticipants: size,
		Creator:         creator,
		Participants: []models.RoomMember{
			{Name: creator, Role: "host", JoinedAt: time.Now()},
		},
		Status:       models.RoomWaiting,
		ChatMessages: []models.ChatMessage{},
		CreatedAt:    time.Now(),
	}
	if err := s.reg.Rooms.Create(room.Code, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room created",
		slog.String("code", room.Code),
		slog.String("creator", creator))
	return registry.DeepCopy(room), nil
}

// JoinRoom adds a member by room code. Rejoining under the same name is
// idempotent rather than an error, so a reconnecting client lands back
// in its seat.
func (s *RoomService) JoinRoom(code, memberName string) (*models.Room, error) {
	memberName = strings.TrimSpace(memberName)
	if memberName == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	var snapshot *models.Room
	err := s.reg.Rooms.With(code, func(r *models.Room) error {
		if !r.HasMember(memberName) {
			if len(r.Participants) >= r.MaxParticipants {
				return ErrRoomFull
			}
			r.Participants = append(r.Participants, models.RoomMember{
				Name: memberName, Role: "participant", JoinedAt: time.Now(),
			})
			r.RefreshStatus()
		}
		snapshot = registry.DeepCopy(r)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.hub.Publish(code, brackets.EventRoomUpdated, snapshot)
	return snapshot, nil
}

// LeaveRoom removes a member. The room is deleted once it empties; if
// the host leaves a non-empty room, the oldest remaining member becomes
// host.
func (s *RoomService) LeaveRoom(code, memberName string) error {
	var (
		snapshot *models.Room
		emptied  bool
	)
	err := s.reg.Rooms.With(code, func(r *models.Room) error {
		kept := r.Participants[:0]
		for _, m := range r.Participants {
			if !strings.EqualFold(m.Name, memberName) {
				kept = append(kept, m)
			}
		}
		r.Participants = kept
		if len(r.Participants) == 0 {
			emptied = true
			return nil
		}
		if strings.EqualFold(r.Creator, memberName) {
			r.Creator = r.Participants[0].Name
			r.Participants[0].Role = "host"
		}
		r.RefreshStatus()
		snapshot = registry.DeepCopy(r)
		return nil
	})
	if err != nil {
		return s.mapStoreErr(err)
	}

	if emptied {
		s.reg.Rooms.Delete(code)
		s.logger.Info("room closed", slog.String("code", code))
		return nil
	}
	s.hub.Publish(code, brackets.EventRoomUpdated, snapshot)
	return nil
}

// PostChatMessage appends to the room chat and fans it out.
func (s *RoomService) PostChatMessage(code, sender, message string) (*models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}

	msg := models.ChatMessage{Sender: sender, Message: message, Timestamp: time.Now()}
	err := s.reg.Rooms.With(code, func(r *models.Room) error {
		if !r.HasMember(sender) {
			return fmt.Errorf("%w: %q is not in this room", ErrValidation, sender)
		}
		r.ChatMessages = append(r.ChatMessages, msg)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.hub.Publish(code, brackets.EventChatMessage, msg)
	return &msg, nil
}

// TimerInput drives the shared speech timer.
type TimerInput struct {
	Action         string // start, pause, reset, tick
	CurrentSpeaker string
	TimeRemaining  int
}

// UpdateTimer applies a timer action and broadcasts the new state.
func (s *RoomService) UpdateTimer(code string, in TimerInput) (*models.TimerState, error) {
	var state models.TimerState
	err := s.reg.Rooms.With(code, func(r *models.Room) error {
		switch in.Action {
		case "start":
			r.Timer.IsRunning = true
			if in.CurrentSpeaker != "" {
				r.Timer.CurrentSpeaker = in.CurrentSpeaker
			}
			if in.TimeRemaining > 0 {
				r.Timer.TimeRemaining = in.TimeRemaining
			}
		case "pause":
			r.Timer.IsRunning = false
		case "reset":
			r.Timer = models.TimerState{}
		case "tick":
			r.Timer.TimeRemaining = in.TimeRemaining
			if r.Timer.TimeRemaining <= 0 {
				r.Timer.TimeRemaining = 0
				r.Timer.IsRunning = false
			}
		default:
			return fmt.Errorf("%w: unknown timer action %q", ErrValidation, in.Action)
		}
		state = r.Timer
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.hub.Publish(code, brackets.EventTimerUpdated, state)
	return &state, nil
}

// StartRoomDebate flips the room in progress with a motion, generating
// one when the host did not supply it. Starting twice fails.
func (s *RoomService) StartRoomDebate(ctx context.Context, code, motion string) (*models.Room, error) {
	motion = strings.TrimSpace(motion)

	var formatKey, skill string
	err := s.reg.Rooms.View(code, func(r *models.Room) error {
		if r.DebateStarted {
			return ErrDebateAlreadyActive
		}
		formatKey, skill = r.Format, r.SkillLevel
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	if motion == "" {
		callCtx, cancel := context.WithTimeout(ctx, motionTimeout)
		motionText, genErr := s.collab.GenerateMotion(callCtx, formatKey, skill)
		cancel()
		if genErr != nil || strings.TrimSpace(motionText) == "" {
			s.logger.Warn("room motion generation failed, using fallback", slog.Any("error", genErr))
			motionText = "This house would make voting compulsory"
		}
		motion = strings.TrimSpace(motionText)
	}

	var snapshot *models.Room
	err = s.reg.Rooms.With(code, func(r *models.Room) error {
		if r.DebateStarted {
			return ErrDebateAlreadyActive
		}
		r.DebateStarted = true
		r.CurrentMotion = motion
		r.Timer = models.TimerState{}
		r.RefreshStatus()
		snapshot = registry.DeepCopy(r)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}

	s.hub.Publish(code, brackets.EventRoomUpdated, snapshot)
	s.logger.Info("room debate started", slog.String("code", code))
	return snapshot, nil
}

// GetRoom returns a snapshot by code.
func (s *RoomService) GetRoom(code string) (*models.Room, error) {
	var snapshot *models.Room
	err := s.reg.Rooms.View(code, func(r *models.Room) error {
		snapshot = registry.DeepCopy(r)
		return nil
	})
	if err != nil {
		return nil, s.mapStoreErr(err)
	}
	return snapshot, nil
}

// ListActiveRooms returns rooms younger than the TTL, newest first.
func (s *RoomService) ListActiveRooms() []*models.Room {
	cutoff := time.Now().Add(-RoomTTL)
	var out []*models.Room
	s.reg.Rooms.ForEach(func(_ string, r *models.Room) {
		if r.CreatedAt.After(cutoff) {
			out = append(out, registry.DeepCopy(r))
		}
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SweepExpiredRooms deletes rooms past the TTL and reports how many.
// Called by the cleanup worker.
func (s *RoomService) SweepExpiredRooms() int {
	cutoff := time.Now().Add(-RoomTTL)
	var expired []string
	s.reg.Rooms.ForEach(func(code string, r *models.Room) {
		if !r.CreatedAt.After(cutoff) {
			expired = append(expired, code)
		}
	})
	for _, code := range expired {
		s.reg.Rooms.Delete(code)
	}
	if len(expired) > 0 {
		s.logger.Info("expired rooms swept", slog.Int("count", len(expired)))
	}
	return len(expired)
}

func (s *RoomService) mapStoreErr(err error) error {
	if err == registry.ErrKeyNotFound {
		return ErrRoomNotFound
	}
	return err
}
