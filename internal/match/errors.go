package match

import "errors"

var (
	ErrInvalidConfig    = errors.New("invalid match config")
	ErrNoPlayers        = errors.New("at least one player is required")
	ErrDuplicatePlayer  = errors.New("player listed twice")
	ErrInvalidOrder     = errors.New("invalid starting order")
	ErrAlreadyStarted   = errors.New("match already started")
	ErrNotInProgress    = errors.New("match is not in progress")
	ErrInvalidScore     = errors.New("invalid score")
	ErrAwaitingInput    = errors.New("waiting for dart count")
	ErrNoPendingInput   = errors.New("no dart count requested")
	ErrInvalidDartCount = errors.New("invalid dart count")
	ErrNothingToUndo    = errors.New("nothing to undo")
	ErrNotComplete      = errors.New("match is not complete")
	ErrPersistInFlight  = errors.New("match result is being saved")
	ErrAlreadyPersisted = errors.New("match result already saved")
)
