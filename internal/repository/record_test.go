package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/testing/suite"
)

func TestRecordRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("Saves a multiplayer record", func(t *testing.T) {
		// Given: an empty record store
		st := suite.NewSQLite(t)
		recordRepo := NewRecordRepository(st.Connection)

		createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		record := &entity.GameRecord{
			ID:         "r1",
			Player1ID:  "alice",
			Player2ID:  "bob",
			Mode:       entity.ModeMultiplayer,
			Board:      entity.Board{entity.X, entity.X, entity.X, entity.O, entity.O},
			Result:     entity.ResultWin,
			WinnerID:   "alice",
			ScoreDelta: 2,
			CreatedAt:  createdAt,
		}

		// When: Save is called
		err := recordRepo.Save(ctx, record)

		// Then: the row holds every column
		require.NoError(t, err)

		var row recordRow
		err = st.Connection.GetContext(ctx, &row, `SELECT * FROM game_records WHERE id = ?`, record.ID)
		require.NoError(t, err)

		assert.Equal(t, "alice", row.Player1ID)
		assert.Equal(t, "bob", row.Player2ID.String)
		assert.Equal(t, entity.ModeMultiplayer, row.Mode)
		assert.JSONEq(t, `["X","X","X","O","O","","","",""]`, row.Board)
		assert.Equal(t, string(entity.ResultWin), row.Result)
		assert.Equal(t, "alice", row.WinnerID.String)
		assert.Equal(t, 2, row.ScoreDelta)
		assert.Equal(t, createdAt.UnixMilli(), row.CreatedAt)
	})

	t.Run("Stores missing ids as NULL", func(t *testing.T) {
		// Given: an AI game lost by the human
		st := suite.NewSQLite(t)
		recordRepo := NewRecordRepository(st.Connection)

		record := &entity.GameRecord{
			ID:         "r2",
			Player1ID:  "alice",
			Mode:       entity.AIMode(entity.Hard),
			Result:     entity.ResultLoss,
			ScoreDelta: -1,
			CreatedAt:  time.Now(),
		}

		// When: Save is called
		require.NoError(t, recordRepo.Save(ctx, record))

		// Then: the optional columns are NULL
		var nulls int
		err := st.Connection.GetContext(ctx, &nulls,
			`SELECT COUNT(*) FROM game_records WHERE player2_id IS NULL AND winner_id IS NULL`)
		require.NoError(t, err)
		assert.Equal(t, 1, nulls)
	})

	t.Run("Duplicate id fails", func(t *testing.T) {
		st := suite.NewSQLite(t)
		recordRepo := NewRecordRepository(st.Connection)

		record := &entity.GameRecord{ID: "r3", Player1ID: "alice", Mode: entity.ModeMultiplayer, Result: entity.ResultDraw}
		require.NoError(t, recordRepo.Save(ctx, record))

		err := recordRepo.Save(ctx, record)

		require.Error(t, err)
	})
}
