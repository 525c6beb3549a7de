package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/transport/retry"
)

// probeRoomCode is looked up by the ping handler.
const probeRoomCode = "000000"

type roomService interface {
	CreateRoom(ctx context.Context, creatorID string) (*entity.Room, error)
	JoinRoom(ctx context.Context, code, userID string) (*entity.Room, error)
	SubmitMove(ctx context.Context, code, userID string, cell int) (*entity.Room, error)
	ResetRoom(ctx context.Context, code, userID string) (*entity.Room, error)
	GetRoom(ctx context.Context, code string) (*entity.Room, error)
}

type roomHandler struct {
	logger *slog.Logger
	rooms  roomService
}

type moveRequest struct {
	Cell *int `json:"cell" validate:"required"`
}

func (that *roomHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	log := that.logger.With("method", "CreateRoom", "user_id", userID)

	room, err := that.rooms.CreateRoom(r.Context(), userID)
	if errors.Is(err, apperror.ErrRoomCodeExhausted) {
		log.Warn("room codes exhausted, retrying once")
		room, err = that.rooms.CreateRoom(r.Context(), userID)
	}
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

func (that *roomHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	log := that.logger.With("method", "GetRoom", "room_code", code)

	room, err := that.rooms.GetRoom(r.Context(), code)
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

func (that *roomHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	userID := UserIDFromContext(r.Context())
	log := that.logger.With("method", "JoinRoom", "room_code", code, "user_id", userID)

	room, err := retry.OnConflict(r.Context(), func(ctx context.Context) (*entity.Room, error) {
		return that.rooms.JoinRoom(ctx, code, userID)
	})
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

func (that *roomHandler) Move(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	userID := UserIDFromContext(r.Context())
	log := that.logger.With("method", "SubmitMove", "room_code", code, "user_id", userID)

	var req moveRequest
	if err := decode(r, &req); err != nil {
		fail(w, log, err)
		return
	}

	room, err := retry.OnConflict(r.Context(), func(ctx context.Context) (*entity.Room, error) {
		return that.rooms.SubmitMove(ctx, code, userID, *req.Cell)
	})
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}

func (that *roomHandler) Reset(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	userID := UserIDFromContext(r.Context())
	log := that.logger.With("method", "ResetRoom", "room_code", code, "user_id", userID)

	room, err := retry.OnConflict(r.Context(), func(ctx context.Context) (*entity.Room, error) {
		return that.rooms.ResetRoom(ctx, code, userID)
	})
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, room)
}
