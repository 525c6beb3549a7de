package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/bot"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/tictactoe"
)

// SoloService runs single-player games against the bot. The human is X and the bot answers as O
// after a short think delay. Only one move per session is processed at a time.
type SoloService interface {
	StartSession(ctx context.Context, userID string, difficulty entity.Difficulty) (*entity.SoloSession, error)
	GetSession(ctx context.Context, userID, sessionID string) (*entity.SoloSession, error)
	PlayerMove(ctx context.Context, userID, sessionID string, cell int) (*entity.SoloSession, error)
	NewRound(ctx context.Context, userID, sessionID string) (*entity.SoloSession, error)
	EndSession(ctx context.Context, userID, sessionID string) error
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.SoloSession) error
	GetByID(ctx context.Context, id string) (*entity.SoloSession, error)
	DeleteByID(ctx context.Context, id string) error
}

type soloRecorder interface {
	RecordSolo(ctx context.Context, session *entity.SoloSession) (*entity.GameRecord, error)
}

type soloService struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	recorder    soloRecorder
	metrics     *metrics
	locks       *keyedMutex

	moveDelay  time.Duration
	now        func() time.Time
	chooseMove func(board entity.Board, difficulty entity.Difficulty, mark entity.Mark) (int, error)
}

func NewSoloService(logger *slog.Logger, sessionRepo sessionRepo, recorder soloRecorder, moveDelay time.Duration) SoloService {
	return &soloService{
		logger:      logger,
		sessionRepo: sessionRepo,
		recorder:    recorder,
		metrics:     newMetrics(),
		locks:       newKeyedMutex(),
		moveDelay:   moveDelay,
		now:         time.Now,
		chooseMove:  bot.ChooseMove,
	}
}

func (that *soloService) StartSession(ctx context.Context, userID string, difficulty entity.Difficulty) (*entity.SoloSession, error) {
	log := that.logger.With("method", "StartSession", "user_id", userID)

	session := entity.NewSoloSession(uuid.NewString(), userID, difficulty, that.now())

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("solo session started", "session_id", session.ID, "difficulty", difficulty)

	return session, nil
}

func (that *soloService) GetSession(ctx context.Context, userID, sessionID string) (*entity.SoloSession, error) {
	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// other users' sessions do not exist for the caller
	if session.UserID != userID {
		return nil, apperror.ErrSessionNotFound
	}

	return session, nil
}

// PlayerMove applies the human move and, if the game goes on, the bot's answer. Nothing is stored
// until both moves are done, so a cancelled request leaves the session as it was.
func (that *soloService) PlayerMove(ctx context.Context, userID, sessionID string, cell int) (*entity.SoloSession, error) {
	log := that.logger.With("method", "PlayerMove", "session_id", sessionID)

	ctx, span := tracer.Start(ctx, "solo.PlayerMove", trace.WithAttributes(attribute.String("session.id", sessionID)))
	defer span.End()

	unlock, ok := that.locks.TryLock(sessionID)
	if !ok {
		// the bot is still thinking about the previous move
		return nil, fail(span, apperror.ErrNotYourTurn)
	}
	defer unlock()

	session, err := that.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, fail(span, err)
	}

	if err = that.play(session, entity.HumanMark, cell); err != nil {
		return nil, fail(span, err)
	}

	if session.IsActive() {
		if err = that.think(ctx); err != nil {
			return nil, fail(span, err)
		}

		botCell, err := that.chooseMove(session.Board, session.Difficulty, entity.BotMark)
		if err != nil {
			return nil, fail(span, fmt.Errorf("bot failed to choose a move: %w", err))
		}

		if err = that.play(session, entity.BotMark, botCell); err != nil {
			return nil, fail(span, fmt.Errorf("bot failed to make turn: %w", err))
		}
	}

	finished := !session.IsActive()
	if finished {
		that.finish(ctx, log, session)
	}

	session.UpdatedAt = that.now()

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fail(span, fmt.Errorf("failed to save session: %w", err))
	}

	// only a stored finished board is recorded
	if finished {
		if _, err = that.recorder.RecordSolo(ctx, session); err != nil {
			log.Error("failed to record game", "error", err)
		}
	}

	return session, nil
}

// play goes through the same arbiter as room moves.
func (that *soloService) play(session *entity.SoloSession, mark entity.Mark, cell int) error {
	verdict, err := tictactoe.Arbitrate(tictactoe.SessionTurn(session), mark, cell)
	if err != nil {
		return err
	}

	session.Board = verdict.Board
	session.CurrentPlayer = verdict.NextPlayer
	session.Outcome = verdict.Outcome

	return nil
}

func (that *soloService) think(ctx context.Context) error {
	if that.moveDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(that.moveDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("bot move cancelled: %w", ctx.Err())
	}
}

func (that *soloService) finish(ctx context.Context, log *slog.Logger, session *entity.SoloSession) {
	result := entity.ClassifyResult(session.Outcome, entity.HumanMark)
	session.Stats.Add(result)

	mode := entity.AIMode(session.Difficulty)
	that.metrics.games.Add(ctx, 1, modeAttr(mode))
	log.Info("solo game finished", "result", result, "difficulty", session.Difficulty)
}

// NewRound starts over with an empty board and keeps the session stats.
func (that *soloService) NewRound(ctx context.Context, userID, sessionID string) (*entity.SoloSession, error) {
	unlock, ok := that.locks.TryLock(sessionID)
	if !ok {
		return nil, apperror.ErrNotYourTurn
	}
	defer unlock()

	session, err := that.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	session.NewRound(that.now())

	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

func (that *soloService) EndSession(ctx context.Context, userID, sessionID string) error {
	if _, err := that.GetSession(ctx, userID, sessionID); err != nil {
		return err
	}

	if err := that.sessionRepo.DeleteByID(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return nil
}
