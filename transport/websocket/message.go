package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const (
	ActionSnapshot = "room:snapshot"
	ActionError    = "error"

	ActionJoin  = "room:join"
	ActionMove  = "room:move"
	ActionReset = "room:reset"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action" validate:"required"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Cell *int `json:"cell" validate:"required"`
}

type ErrorPayload struct {
	Action string `json:"action"`
	Error  string `json:"error"`
}

func newMessage(action string, payload any) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{Action: action, Payload: raw}, nil
}

func snapshotMessage(room *entity.Room) (Message, error) {
	return newMessage(ActionSnapshot, room)
}

var publicErrors = []error{
	apperror.ErrIllegalMove,
	apperror.ErrCellOccupied,
	apperror.ErrNotYourTurn,
	apperror.ErrNotAPlayer,
	apperror.ErrGameNotActive,
	apperror.ErrGameInProgress,
	apperror.ErrForbidden,
	apperror.ErrRoomNotFound,
	apperror.ErrRoomNotAvailable,
	apperror.ErrRoomFull,
	apperror.ErrConflict,
	errBadMessage,
	errUnknownAction,
}

// errorText is what the client sees for err. Unexpected failures are not described.
func errorText(err error) string {
	for _, target := range publicErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return "internal error"
}
