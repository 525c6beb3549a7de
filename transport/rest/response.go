package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/validator"
)

const maxBodyBytes = 1 << 10

var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decode reads a JSON body into dst and validates it. Both failures wrap errBadRequest.
func decode(r *http.Request, dst any) error {
	body := io.LimitReader(r.Body, maxBodyBytes)

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	if err := validator.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperror.ErrRoomNotFound) || errors.Is(err, apperror.ErrSessionNotFound)
}

// statusFor maps core errors to HTTP statuses. Anything unknown is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, entity.ErrUnknownDifficulty), apperror.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrForbidden):
		return http.StatusForbidden
	case isNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict),
		errors.Is(err, apperror.ErrRoomFull),
		errors.Is(err, apperror.ErrRoomNotAvailable):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrRoomCodeExhausted):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err to the client. Internal errors are logged and hidden.
func fail(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
		writeError(w, status, "Internal Server Error")
		return
	}

	log.Debug("request rejected", "status", status, "error", err)
	writeError(w, status, err.Error())
}
