package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type soloService interface {
	StartSession(ctx context.Context, userID string, difficulty entity.Difficulty) (*entity.SoloSession, error)
	GetSession(ctx context.Context, userID, sessionID string) (*entity.SoloSession, error)
	PlayerMove(ctx context.Context, userID, sessionID string, cell int) (*entity.SoloSession, error)
	NewRound(ctx context.Context, userID, sessionID string) (*entity.SoloSession, error)
	EndSession(ctx context.Context, userID, sessionID string) error
}

type soloHandler struct {
	logger *slog.Logger
	solo   soloService
}

type startSoloRequest struct {
	Difficulty string `json:"difficulty" validate:"required"`
}

func (that *soloHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	log := that.logger.With("method", "StartSession", "user_id", userID)

	var req startSoloRequest
	if err := decode(r, &req); err != nil {
		fail(w, log, err)
		return
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		fail(w, log, err)
		return
	}

	session, err := that.solo.StartSession(r.Context(), userID, difficulty)
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (that *soloHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	log := that.logger.With("method", "GetSession", "session_id", sessionID)

	session, err := that.solo.GetSession(r.Context(), UserIDFromContext(r.Context()), sessionID)
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (that *soloHandler) Move(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	log := that.logger.With("method", "PlayerMove", "session_id", sessionID)

	var req moveRequest
	if err := decode(r, &req); err != nil {
		fail(w, log, err)
		return
	}

	session, err := that.solo.PlayerMove(r.Context(), UserIDFromContext(r.Context()), sessionID, *req.Cell)
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (that *soloHandler) NewRound(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	log := that.logger.With("method", "NewRound", "session_id", sessionID)

	session, err := that.solo.NewRound(r.Context(), UserIDFromContext(r.Context()), sessionID)
	if err != nil {
		fail(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (that *soloHandler) End(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	log := that.logger.With("method", "EndSession", "session_id", sessionID)

	if err := that.solo.EndSession(r.Context(), UserIDFromContext(r.Context()), sessionID); err != nil {
		fail(w, log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
