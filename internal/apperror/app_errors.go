package apperror

import "errors"

// validation errors
var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrNotAPlayer     = errors.New("user is not a player of this room")
	ErrGameNotActive  = errors.New("game is not active")
	ErrGameInProgress = errors.New("game is still in progress")
	ErrForbidden      = errors.New("only the room creator can do this")
)

// resource errors
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomNotAvailable  = errors.New("room is not available")
	ErrRoomFull          = errors.New("room is full")
	ErrRoomCodeExhausted = errors.New("could not generate a unique room code")
	ErrRoomCodeTaken     = errors.New("room code is taken")
	ErrSessionNotFound   = errors.New("session not found")
)

var (
	ErrConflict    = errors.New("room was changed concurrently")
	ErrNoLegalMove = errors.New("no legal move")
)

// IsValidation reports whether err is a caller mistake or a stale-state race.
func IsValidation(err error) bool {
	for _, target := range []error{
		ErrIllegalMove, ErrCellOccupied, ErrNotYourTurn, ErrNotAPlayer,
		ErrGameNotActive, ErrGameInProgress,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
