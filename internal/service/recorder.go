package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

var ErrGameNotFinished = errors.New("game is not finished")

// Recorder turns finished games into game records.
//
// Single-player games are only stored on the hard tier. Easy and medium results
// are classified but never persisted, so wins against a beatable bot do not reach the leaderboard.
type Recorder interface {
	RecordRoom(ctx context.Context, room *entity.Room) (*entity.GameRecord, error)
	RecordSolo(ctx context.Context, session *entity.SoloSession) (*entity.GameRecord, error)
}

type recordRepo interface {
	Save(ctx context.Context, record *entity.GameRecord) error
}

type recorder struct {
	logger     *slog.Logger
	recordRepo recordRepo
	now        func() time.Time
}

func NewRecorder(logger *slog.Logger, recordRepo recordRepo) Recorder {
	return &recorder{
		logger:     logger,
		recordRepo: recordRepo,
		now:        time.Now,
	}
}

// RecordRoom stores one record from the creator's side.
func (that *recorder) RecordRoom(ctx context.Context, room *entity.Room) (*entity.GameRecord, error) {
	outcome := room.Outcome()
	if outcome.IsOngoing() {
		return nil, fmt.Errorf("%w: room %s", ErrGameNotFinished, room.Code)
	}

	result := entity.ClassifyResult(outcome, entity.X)

	record := &entity.GameRecord{
		ID:         uuid.NewString(),
		Player1ID:  room.CreatorID,
		Player2ID:  room.Player2ID,
		Mode:       entity.ModeMultiplayer,
		Board:      room.Board,
		Result:     result,
		WinnerID:   room.PlayerIDOf(outcome.Winner),
		ScoreDelta: result.ScoreDelta(),
		CreatedAt:  that.now().UTC(),
	}

	if err := that.recordRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save room record: %w", err)
	}

	return record, nil
}

// RecordSolo classifies the round from the human's side. It returns nil without saving below the hard tier.
func (that *recorder) RecordSolo(ctx context.Context, session *entity.SoloSession) (*entity.GameRecord, error) {
	log := that.logger.With("method", "RecordSolo", "session_id", session.ID)

	outcome := entity.Evaluate(session.Board)
	if outcome.IsOngoing() {
		return nil, fmt.Errorf("%w: session %s", ErrGameNotFinished, session.ID)
	}

	result := entity.ClassifyResult(outcome, entity.HumanMark)

	if session.Difficulty != entity.Hard {
		log.Debug("skipping record below hard difficulty", "difficulty", session.Difficulty, "result", result)
		return nil, nil
	}

	var winnerID string
	if result == entity.ResultWin {
		winnerID = session.UserID
	}

	record := &entity.GameRecord{
		ID:         uuid.NewString(),
		Player1ID:  session.UserID,
		Mode:       entity.AIMode(session.Difficulty),
		Board:      session.Board,
		Result:     result,
		WinnerID:   winnerID,
		ScoreDelta: result.ScoreDelta(),
		CreatedAt:  that.now().UTC(),
	}

	if err := that.recordRepo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save solo record: %w", err)
	}

	return record, nil
}
