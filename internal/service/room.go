package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/tictactoe"
)

// RoomService owns the lifecycle of multiplayer rooms. Every mutation is a single
// compare-and-swap on the stored room; a lost race is reported as apperror.ErrConflict.
type RoomService interface {
	CreateRoom(ctx context.Context, creatorID string) (*entity.Room, error)
	JoinRoom(ctx context.Context, code, userID string) (*entity.Room, error)
	SubmitMove(ctx context.Context, code, userID string, cell int) (*entity.Room, error)
	ResetRoom(ctx context.Context, code, userID string) (*entity.Room, error)
	GetRoom(ctx context.Context, code string) (*entity.Room, error)
}

type roomRepo interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByCode(ctx context.Context, code string) (*entity.Room, error)
	CompareAndSwap(ctx context.Context, expectedVersion int64, room *entity.Room) error
}

type roomRecorder interface {
	RecordRoom(ctx context.Context, room *entity.Room) (*entity.GameRecord, error)
}

type RoomOptions struct {
	TTL          time.Duration
	CodeAttempts int
}

type roomService struct {
	logger   *slog.Logger
	roomRepo roomRepo
	recorder roomRecorder
	metrics  *metrics

	ttl          time.Duration
	codeAttempts int

	now          func() time.Time
	generateCode func() (string, error)
}

func NewRoomService(logger *slog.Logger, roomRepo roomRepo, recorder roomRecorder, opts RoomOptions) RoomService {
	return &roomService{
		logger:       logger,
		roomRepo:     roomRepo,
		recorder:     recorder,
		metrics:      newMetrics(),
		ttl:          opts.TTL,
		codeAttempts: opts.CodeAttempts,
		now:          time.Now,
		generateCode: GenerateRoomCode,
	}
}

// GenerateRoomCode draws a code from entity.RoomCodeAlphabet.
func GenerateRoomCode() (string, error) {
	alphabetSize := big.NewInt(int64(len(entity.RoomCodeAlphabet)))

	code := make([]byte, entity.RoomCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate room code: %w", err)
		}

		code[i] = entity.RoomCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}

func (that *roomService) CreateRoom(ctx context.Context, creatorID string) (*entity.Room, error) {
	log := that.logger.With("method", "CreateRoom", "creator_id", creatorID)

	ctx, span := tracer.Start(ctx, "room.CreateRoom")
	defer span.End()

	for attempt := 1; attempt <= that.codeAttempts; attempt++ {
		code, err := that.generateCode()
		if err != nil {
			return nil, fail(span, err)
		}

		room := entity.NewRoom(code, creatorID, that.now(), that.ttl)

		err = that.roomRepo.Create(ctx, room)
		switch {
		case err == nil:
			span.SetAttributes(attribute.String("room.code", code), attribute.Int("attempts", attempt))
			log.Info("room created", "room_code", code)

			return room, nil
		case errors.Is(err, apperror.ErrRoomCodeTaken):
			log.Debug("room code collision", "room_code", code, "attempt", attempt)
		default:
			return nil, fail(span, fmt.Errorf("failed to create room: %w", err))
		}
	}

	log.Warn("room codes exhausted", "attempts", that.codeAttempts)

	return nil, fail(span, apperror.ErrRoomCodeExhausted)
}

// JoinRoom takes the second seat and starts the game right away.
func (that *roomService) JoinRoom(ctx context.Context, code, userID string) (*entity.Room, error) {
	code = entity.NormalizeRoomCode(code)
	log := that.logger.With("method", "JoinRoom", "room_code", code, "user_id", userID)

	ctx, span := startRoomSpan(ctx, "room.JoinRoom", code)
	defer span.End()

	room, err := that.getLiveRoom(ctx, code)
	if err != nil {
		return nil, fail(span, err)
	}

	// rejoining is a no-op
	if room.IsCreator(userID) || (room.Player2ID != "" && room.Player2ID == userID) {
		return room, nil
	}

	if room.Player2ID != "" {
		return nil, fail(span, apperror.ErrRoomFull)
	}

	if room.Status != entity.StatusWaiting {
		return nil, fail(span, apperror.ErrRoomNotAvailable)
	}

	next := room.Clone()
	next.Player2ID = userID
	next.Status = entity.StatusPlaying
	next.Board = entity.EmptyBoard()
	next.CurrentPlayer = entity.X

	if err = that.roomRepo.CompareAndSwap(ctx, room.Version, next); err != nil {
		return nil, fail(span, fmt.Errorf("failed to join room: %w", err))
	}

	log.Info("player joined, game started")

	return next, nil
}

func (that *roomService) SubmitMove(ctx context.Context, code, userID string, cell int) (*entity.Room, error) {
	code = entity.NormalizeRoomCode(code)
	log := that.logger.With("method", "SubmitMove", "room_code", code, "user_id", userID)

	ctx, span := startRoomSpan(ctx, "room.SubmitMove", code)
	defer span.End()

	room, err := that.getLiveRoom(ctx, code)
	if err != nil {
		return nil, fail(span, err)
	}

	mark, ok := room.MarkOf(userID)
	if !ok {
		return nil, fail(span, apperror.ErrNotAPlayer)
	}

	verdict, err := tictactoe.Arbitrate(tictactoe.RoomTurn(room), mark, cell)
	if err != nil {
		return nil, fail(span, err)
	}

	next := room.Clone()
	next.Board = verdict.Board
	next.CurrentPlayer = verdict.NextPlayer

	if verdict.Outcome.IsTerminal() {
		next.Status = entity.StatusCompleted
		next.WinnerID = room.PlayerIDOf(verdict.Outcome.Winner)
	}

	if err = that.roomRepo.CompareAndSwap(ctx, room.Version, next); err != nil {
		return nil, fail(span, fmt.Errorf("failed to commit move: %w", err))
	}

	that.metrics.moves.Add(ctx, 1, modeAttr(entity.ModeMultiplayer))

	if verdict.Outcome.IsTerminal() {
		log.Info("game finished", "outcome", verdict.Outcome.Kind, "winner_id", next.WinnerID)
		that.metrics.games.Add(ctx, 1, modeAttr(entity.ModeMultiplayer))

		if _, err = that.recorder.RecordRoom(ctx, next); err != nil {
			span.RecordError(err)
			log.Error("failed to record game", "error", err)
		}
	}

	return next, nil
}

func (that *roomService) ResetRoom(ctx context.Context, code, userID string) (*entity.Room, error) {
	code = entity.NormalizeRoomCode(code)
	log := that.logger.With("method", "ResetRoom", "room_code", code, "user_id", userID)

	ctx, span := startRoomSpan(ctx, "room.ResetRoom", code)
	defer span.End()

	room, err := that.getLiveRoom(ctx, code)
	if err != nil {
		return nil, fail(span, err)
	}

	if !room.IsCreator(userID) {
		return nil, fail(span, apperror.ErrForbidden)
	}

	if !room.IsCompleted() {
		return nil, fail(span, apperror.ErrGameInProgress)
	}

	next := room.Clone()
	next.Board = entity.EmptyBoard()
	next.CurrentPlayer = entity.X
	next.Status = entity.StatusPlaying
	next.WinnerID = ""

	if err = that.roomRepo.CompareAndSwap(ctx, room.Version, next); err != nil {
		return nil, fail(span, fmt.Errorf("failed to reset room: %w", err))
	}

	log.Info("room reset")

	return next, nil
}

func (that *roomService) GetRoom(ctx context.Context, code string) (*entity.Room, error) {
	return that.getLiveRoom(ctx, entity.NormalizeRoomCode(code))
}

func (that *roomService) getLiveRoom(ctx context.Context, code string) (*entity.Room, error) {
	if !entity.IsValidRoomCode(code) {
		return nil, apperror.ErrRoomNotFound
	}

	room, err := that.roomRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if room.IsExpired(that.now()) {
		return nil, apperror.ErrRoomNotFound
	}

	return room, nil
}

func startRoomSpan(ctx context.Context, name, code string) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attribute.String("room.code", code)))
}
