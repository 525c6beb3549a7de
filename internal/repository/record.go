package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// RecordRepository appends finished games to SQLite.
type RecordRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
}

type dbRecord struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) RecordRepository {
	return &dbRecord{
		db: db,
	}
}

type recordRow struct {
	ID         string         `db:"id"`
	Player1ID  string         `db:"player1_id"`
	Player2ID  sql.NullString `db:"player2_id"`
	Mode       string         `db:"mode"`
	Board      string         `db:"board"`
	Result     string         `db:"result"`
	WinnerID   sql.NullString `db:"winner_id"`
	ScoreDelta int            `db:"score_delta"`
	CreatedAt  int64          `db:"created_at"`
}

func nullable(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func (that *dbRecord) Save(ctx context.Context, record *entity.GameRecord) error {
	board, err := json.Marshal(record.Board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	row := recordRow{
		ID:         record.ID,
		Player1ID:  record.Player1ID,
		Player2ID:  nullable(record.Player2ID),
		Mode:       record.Mode,
		Board:      string(board),
		Result:     string(record.Result),
		WinnerID:   nullable(record.WinnerID),
		ScoreDelta: record.ScoreDelta,
		CreatedAt:  record.CreatedAt.UnixMilli(),
	}

	const query = `INSERT INTO game_records (id, player1_id, player2_id, mode, board, result, winner_id, score_delta, created_at)
VALUES (:id, :player1_id, :player2_id, :mode, :board, :result, :winner_id, :score_delta, :created_at)`

	if _, err = that.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}

	return nil
}
