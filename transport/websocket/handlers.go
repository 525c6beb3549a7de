package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/validator"
	"github.com/rocketscienceinc/tictactoe-rooms/transport/retry"
)

func (that *Server) handleJoin(ctx context.Context, conn *connection, _ *Message) (*entity.Room, error) {
	return retry.OnConflict(ctx, func(ctx context.Context) (*entity.Room, error) {
		return that.rooms.JoinRoom(ctx, conn.code, conn.userID)
	})
}

func (that *Server) handleMove(ctx context.Context, conn *connection, msg *Message) (*entity.Room, error) {
	var payload MovePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadMessage, err)
	}

	if err := validator.Struct(&payload); err != nil {
		return nil, fmt.Errorf("%w: %w", errBadMessage, err)
	}

	return retry.OnConflict(ctx, func(ctx context.Context) (*entity.Room, error) {
		return that.rooms.SubmitMove(ctx, conn.code, conn.userID, *payload.Cell)
	})
}

func (that *Server) handleReset(ctx context.Context, conn *connection, _ *Message) (*entity.Room, error) {
	return retry.OnConflict(ctx, func(ctx context.Context) (*entity.Room, error) {
		return that.rooms.ResetRoom(ctx, conn.code, conn.userID)
	})
}
