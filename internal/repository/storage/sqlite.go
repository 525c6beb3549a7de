package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	// registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS game_records (
	id          TEXT PRIMARY KEY,
	player1_id  TEXT NOT NULL,
	player2_id  TEXT,
	mode        TEXT NOT NULL,
	board       TEXT NOT NULL,
	result      TEXT NOT NULL,
	winner_id   TEXT,
	score_delta INTEGER NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_game_records_player1 ON game_records(player1_id);
CREATE INDEX IF NOT EXISTS idx_game_records_player2 ON game_records(player2_id);
`

type SQLiteStorage struct {
	Connection *sqlx.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)", path)

	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	// single writer
	conn.SetMaxOpenConns(1)

	if err = conn.Ping(); err != nil {
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStorage{Connection: conn}, nil
}

func (that *SQLiteStorage) Init(ctx context.Context) error {
	if _, err := that.Connection.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("can't create tables: %w", err)
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	return that.Connection.Close()
}
