package services

import "errors"

// Shared sentinel errors, mapped to HTTP statuses in handlers.
var (
	// Not found
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrRoomNotFound       = errors.New("room not found")
	ErrDebateNotFound     = errors.New("debate session not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrFormatNotFound     = errors.New("debate format not found")
	ErrProfileNotFound    = errors.New("profile not found")

	// State conflicts
	ErrRegistrationClosed  = errors.New("tournament registration is closed")
	ErrNameTaken           = errors.New("name already taken")
	ErrDebateCompleted     = errors.New("debate session is already completed")
	ErrMatchCompleted      = errors.New("match result already recorded")
	ErrDebateBusy          = errors.New("another speech is already being processed for this session")
	ErrDebateAlreadyActive = errors.New("a debate is already running in this room")
	ErrBracketNotReady     = errors.New("not enough participants to build a bracket")

	// Capacity
	ErrTournamentFull = errors.New("tournament is full")
	ErrRoomFull       = errors.New("room is full")

	// Validation
	ErrValidation = errors.New("validation failed")

	// External collaborator; always recovered with a deterministic
	// fallback, logged rather than surfaced.
	ErrExternalService = errors.New("external generation service failed")
)
