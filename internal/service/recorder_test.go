package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-rooms/mocks/service"
	"github.com/rocketscienceinc/tictactoe-rooms/testing/suite"
)

var errRecordStoreDown = errors.New("record store is down")

func finishedRoom(xs, os []int) *entity.Room {
	room := entity.NewRoom("ABC123", creatorID, time.Now(), time.Hour)
	room.Player2ID = guestID
	room.Status = entity.StatusCompleted

	for _, cell := range xs {
		room.Board[cell] = entity.X
	}
	for _, cell := range os {
		room.Board[cell] = entity.O
	}

	return room
}

func TestRecorder_RecordRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordRoom_CreatorWins", func(t *testing.T) {
		// Given: a room the creator won
		mockRecordRepo := mockedService.NewMockrecordRepo(t)
		recorder := NewRecorder(suite.NewLogger(), mockRecordRepo)

		mockRecordRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.GameRecord")).Return(nil).Once()

		// When: the room is recorded
		record, err := recorder.RecordRoom(ctx, finishedRoom([]int{0, 1, 2}, []int{3, 4}))

		// Then: it is a win for the creator
		require.NoError(t, err)
		assert.NotEmpty(t, record.ID)
		assert.Equal(t, creatorID, record.Player1ID)
		assert.Equal(t, guestID, record.Player2ID)
		assert.Equal(t, entity.ModeMultiplayer, record.Mode)
		assert.Equal(t, entity.ResultWin, record.Result)
		assert.Equal(t, creatorID, record.WinnerID)
		assert.Equal(t, 2, record.ScoreDelta)
	})

	t.Run("RecordRoom_GuestWins", func(t *testing.T) {
		// Given: a room the second player won
		mockRecordRepo := mockedService.NewMockrecordRepo(t)
		recorder := NewRecorder(suite.NewLogger(), mockRecordRepo)

		mockRecordRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.GameRecord")).Return(nil).Once()

		// When: the room is recorded
		record, err := recorder.RecordRoom(ctx, finishedRoom([]int{0, 1, 8}, []int{2, 4, 6}))

		// Then: it is a loss from the creator's side
		require.NoError(t, err)
		assert.Equal(t, entity.ResultLoss, record.Result)
		assert.Equal(t, guestID, record.WinnerID)
		assert.Equal(t, -1, record.ScoreDelta)
	})

	t.Run("RecordRoom_NotFinished", func(t *testing.T) {
		// Given: a room mid-game
		recorder := NewRecorder(suite.NewLogger(), mockedService.NewMockrecordRepo(t))

		// When: it is recorded
		_, err := recorder.RecordRoom(ctx, finishedRoom([]int{0}, []int{4}))

		// Then: nothing is saved
		require.ErrorIs(t, err, ErrGameNotFinished)
	})

	t.Run("RecordRoom_SaveFails", func(t *testing.T) {
		// Given: a failing record store
		mockRecordRepo := mockedService.NewMockrecordRepo(t)
		recorder := NewRecorder(suite.NewLogger(), mockRecordRepo)

		mockRecordRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(errRecordStoreDown).Once()

		// When: a finished room is recorded
		_, err := recorder.RecordRoom(ctx, finishedRoom([]int{0, 1, 2}, []int{3, 4}))

		// Then: the store error is returned
		require.ErrorIs(t, err, errRecordStoreDown)
	})
}

func TestRecorder_RecordSolo(t *testing.T) {
	ctx := context.Background()

	t.Run("RecordSolo_HardDraw", func(t *testing.T) {
		// Given: a drawn hard round
		mockRecordRepo := mockedService.NewMockrecordRepo(t)
		recorder := NewRecorder(suite.NewLogger(), mockRecordRepo)

		mockRecordRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(record *entity.GameRecord) bool {
				return record.Mode == "ai:hard" && record.Result == entity.ResultDraw
			})).
			Return(nil).
			Once()

		// When: the round is recorded
		record, err := recorder.RecordSolo(ctx, sessionWith(entity.Hard, []int{0, 2, 3, 7, 8}, []int{1, 4, 5, 6}))

		// Then: a draw without a winner is stored
		require.NoError(t, err)
		assert.Equal(t, userID, record.Player1ID)
		assert.Empty(t, record.Player2ID)
		assert.Empty(t, record.WinnerID)
		assert.Equal(t, 1, record.ScoreDelta)
	})

	t.Run("RecordSolo_HardWin", func(t *testing.T) {
		// Given: a hard round the human won
		mockRecordRepo := mockedService.NewMockrecordRepo(t)
		recorder := NewRecorder(suite.NewLogger(), mockRecordRepo)

		mockRecordRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.GameRecord")).Return(nil).Once()

		// When: the round is recorded
		record, err := recorder.RecordSolo(ctx, sessionWith(entity.Hard, []int{0, 4, 8}, []int{1, 2}))

		// Then: the human is the winner
		require.NoError(t, err)
		assert.Equal(t, entity.ResultWin, record.Result)
		assert.Equal(t, userID, record.WinnerID)
	})

	t.Run("RecordSolo_BelowHardIsSkipped", func(t *testing.T) {
		for _, difficulty := range []entity.Difficulty{entity.Easy, entity.Medium} {
			// Given: a finished round on a lower tier
			recorder := NewRecorder(suite.NewLogger(), mockedService.NewMockrecordRepo(t))

			// When: the round is recorded
			record, err := recorder.RecordSolo(ctx, sessionWith(difficulty, []int{0, 4, 8}, []int{1, 2}))

			// Then: nothing is saved
			require.NoError(t, err)
			assert.Nil(t, record)
		}
	})
}
