package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/repository"
	mockedService "github.com/rocketscienceinc/tictactoe-rooms/mocks/service"
	"github.com/rocketscienceinc/tictactoe-rooms/testing/suite"
)

const (
	creatorID = "creator"
	guestID   = "guest"
)

func newTestRoomService(t *testing.T, repo roomRepo) (*roomService, *mockedService.MockroomRecorder) {
	t.Helper()

	mockRecorder := mockedService.NewMockroomRecorder(t)
	service := NewRoomService(suite.NewLogger(), repo, mockRecorder, RoomOptions{
		TTL:          2 * time.Hour,
		CodeAttempts: 10,
	}).(*roomService)

	return service, mockRecorder
}

func startGame(ctx context.Context, t *testing.T, service RoomService) *entity.Room {
	t.Helper()

	room, err := service.CreateRoom(ctx, creatorID)
	require.NoError(t, err)

	room, err = service.JoinRoom(ctx, room.Code, guestID)
	require.NoError(t, err)

	return room
}

func TestRoomService_CreateRoom(t *testing.T) {
	t.Run("CreateRoom_Success", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		// When: a user creates a room
		room, err := service.CreateRoom(ctx, creatorID)

		// Then: the room waits for an opponent under a fresh code
		require.NoError(t, err)
		assert.True(t, entity.IsValidRoomCode(room.Code))
		assert.Equal(t, entity.StatusWaiting, room.Status)
		assert.Equal(t, creatorID, room.CreatorID)
		assert.Empty(t, room.Player2ID)
		assert.Equal(t, entity.EmptyBoard(), room.Board)
		assert.Equal(t, entity.X, room.CurrentPlayer)
	})

	t.Run("CreateRoom_RetriesCollision", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		// Given: a live room holds the first generated code
		codes := []string{"AAAAAA", "AAAAAA", "BBBBBB"}
		service.generateCode = func() (string, error) {
			code := codes[0]
			codes = codes[1:]
			return code, nil
		}

		_, err := service.CreateRoom(ctx, creatorID)
		require.NoError(t, err)

		// When: the next room draws the taken code first
		room, err := service.CreateRoom(ctx, "other")

		// Then: it gets the next free one
		require.NoError(t, err)
		assert.Equal(t, "BBBBBB", room.Code)
	})

	t.Run("CreateRoom_CodesExhausted", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		// Given: the generator keeps returning a taken code
		service.generateCode = func() (string, error) { return "AAAAAA", nil }

		_, err := service.CreateRoom(ctx, creatorID)
		require.NoError(t, err)

		// When: another room is created
		_, err = service.CreateRoom(ctx, "other")

		// Then: the attempts run out
		require.ErrorIs(t, err, apperror.ErrRoomCodeExhausted)
	})
}

func TestRoomService_JoinRoom(t *testing.T) {
	t.Run("JoinRoom_StartsGame", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room, err := service.CreateRoom(ctx, creatorID)
		require.NoError(t, err)

		// When: a second user joins with a lower-case code
		joined, err := service.JoinRoom(ctx, " "+strings.ToLower(room.Code), guestID)

		// Then: the game starts with X to move
		require.NoError(t, err)
		assert.Equal(t, guestID, joined.Player2ID)
		assert.Equal(t, entity.StatusPlaying, joined.Status)
		assert.Equal(t, entity.X, joined.CurrentPlayer)
		assert.Equal(t, room.Version+1, joined.Version)
	})

	t.Run("JoinRoom_ThirdUserIsRejected", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		// Given: a room with two players
		room := startGame(ctx, t, service)

		// When: a third user joins
		_, err := service.JoinRoom(ctx, room.Code, "third")

		// Then: the room is full
		require.ErrorIs(t, err, apperror.ErrRoomFull)
	})

	t.Run("JoinRoom_RejoinIsNoop", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room, err := service.CreateRoom(ctx, creatorID)
		require.NoError(t, err)

		// When: the creator joins their own room
		same, err := service.JoinRoom(ctx, room.Code, creatorID)

		// Then: nothing changes
		require.NoError(t, err)
		assert.Equal(t, room.Version, same.Version)
		assert.Equal(t, entity.StatusWaiting, same.Status)
		assert.Empty(t, same.Player2ID)
	})

	t.Run("JoinRoom_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		for _, code := range []string{"ZZZZZZ", "bad", ""} {
			// When: joining a code that does not exist
			_, err := service.JoinRoom(ctx, code, guestID)

			// Then: the room is not found
			require.ErrorIs(t, err, apperror.ErrRoomNotFound, code)
		}
	})

	t.Run("JoinRoom_Expired", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room, err := service.CreateRoom(ctx, creatorID)
		require.NoError(t, err)

		// Given: the clock is past the room's expiry
		service.now = func() time.Time { return room.ExpiresAt }

		// When: someone joins
		_, err = service.JoinRoom(ctx, room.Code, guestID)

		// Then: the room is gone for them
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("JoinRoom_CompletedRoomIsNotAvailable", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := repository.NewRoomRepository(st.Storage)
		service, _ := newTestRoomService(t, repo)

		// Given: a room that left the waiting state without a second player
		room, err := service.CreateRoom(ctx, creatorID)
		require.NoError(t, err)

		next := room.Clone()
		next.Status = entity.StatusCompleted
		require.NoError(t, repo.CompareAndSwap(ctx, room.Version, next))

		// When: a user joins
		_, err = service.JoinRoom(ctx, room.Code, guestID)

		// Then: the room is not available
		require.ErrorIs(t, err, apperror.ErrRoomNotAvailable)
	})
}

func TestRoomService_SubmitMove(t *testing.T) {
	t.Run("SubmitMove_CreatorWins", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, mockRecorder := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room := startGame(ctx, t, service)

		mockRecorder.EXPECT().
			RecordRoom(mock.Anything, mock.AnythingOfType("*entity.Room")).
			Return(&entity.GameRecord{}, nil).
			Once()

		// When: X plays the top row while O plays the middle
		moves := []struct {
			userID string
			cell   int
		}{
			{creatorID, 0}, {guestID, 3}, {creatorID, 1}, {guestID, 4}, {creatorID, 2},
		}

		var err error
		for _, move := range moves {
			room, err = service.SubmitMove(ctx, room.Code, move.userID, move.cell)
			require.NoError(t, err)
		}

		// Then: the room completes with the creator as winner
		assert.Equal(t, entity.StatusCompleted, room.Status)
		assert.Equal(t, creatorID, room.WinnerID)
		assert.Equal(t, []int{0, 1, 2}, room.Outcome().Line)

		// And: later moves are rejected
		_, err = service.SubmitMove(ctx, room.Code, guestID, 8)
		require.ErrorIs(t, err, apperror.ErrGameNotActive)
	})

	t.Run("SubmitMove_Draw", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, mockRecorder := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room := startGame(ctx, t, service)

		mockRecorder.EXPECT().
			RecordRoom(mock.Anything, mock.AnythingOfType("*entity.Room")).
			Return(nil, errors.New("record store is down")).
			Once()

		// When: the board fills up without a line
		var err error
		for i, cell := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
			userID := creatorID
			if i%2 == 1 {
				userID = guestID
			}

			room, err = service.SubmitMove(ctx, room.Code, userID, cell)
			require.NoError(t, err)
		}

		// Then: the game is a draw and a failing recorder does not undo it
		assert.Equal(t, entity.StatusCompleted, room.Status)
		assert.Empty(t, room.WinnerID)
		assert.Equal(t, entity.OutcomeDraw, room.Outcome().Kind)
	})

	t.Run("SubmitMove_RejectedMovesKeepState", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := repository.NewRoomRepository(st.Storage)
		service, _ := newTestRoomService(t, repo)

		room := startGame(ctx, t, service)
		room, err := service.SubmitMove(ctx, room.Code, creatorID, 4)
		require.NoError(t, err)

		cases := []struct {
			name   string
			userID string
			cell   int
			target error
		}{
			{"not your turn", creatorID, 0, apperror.ErrNotYourTurn},
			{"occupied", guestID, 4, apperror.ErrCellOccupied},
			{"out of range", guestID, 9, apperror.ErrIllegalMove},
			{"negative", guestID, -1, apperror.ErrIllegalMove},
			{"stranger", "stranger", 0, apperror.ErrNotAPlayer},
		}

		for _, tc := range cases {
			// When: an invalid move is submitted
			_, err = service.SubmitMove(ctx, room.Code, tc.userID, tc.cell)

			// Then: it is rejected
			require.ErrorIs(t, err, tc.target, tc.name)
		}

		// And: the stored room is untouched
		stored, err := repo.GetByCode(ctx, room.Code)
		require.NoError(t, err)
		assert.Equal(t, room.Version, stored.Version)
		assert.Equal(t, room.Board, stored.Board)
		assert.Equal(t, entity.O, stored.CurrentPlayer)
	})

	t.Run("SubmitMove_WaitingRoomIsNotActive", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room, err := service.CreateRoom(ctx, creatorID)
		require.NoError(t, err)

		// When: the creator moves before anyone joined
		_, err = service.SubmitMove(ctx, room.Code, creatorID, 0)

		// Then: the game is not active
		require.ErrorIs(t, err, apperror.ErrGameNotActive)
	})

	t.Run("SubmitMove_ConcurrentMovesOneWins", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := &barrierRoomRepo{RoomRepository: repository.NewRoomRepository(st.Storage)}
		service, _ := newTestRoomService(t, repo)

		room := startGame(ctx, t, service)

		// Given: both requests read the room before either commits
		repo.arm(2)

		// When: X submits two different cells at once
		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, cell := range []int{0, 8} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = service.SubmitMove(ctx, room.Code, creatorID, cell)
			}()
		}
		wg.Wait()

		// Then: exactly one commits and the other conflicts
		var succeeded, conflicted int
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, apperror.ErrConflict):
				conflicted++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, conflicted)

		stored, err := service.GetRoom(ctx, room.Code)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Board.Count(entity.X))
		assert.Equal(t, room.Version+1, stored.Version)
	})
}

func TestRoomService_ResetRoom(t *testing.T) {
	playToWin := func(ctx context.Context, t *testing.T, service RoomService, mockRecorder *mockedService.MockroomRecorder) *entity.Room {
		t.Helper()

		mockRecorder.EXPECT().
			RecordRoom(mock.Anything, mock.Anything).
			Return(&entity.GameRecord{}, nil).
			Once()

		room := startGame(ctx, t, service)
		for i, cell := range []int{0, 3, 1, 4, 2} {
			userID := creatorID
			if i%2 == 1 {
				userID = guestID
			}

			var err error
			room, err = service.SubmitMove(ctx, room.Code, userID, cell)
			require.NoError(t, err)
		}

		return room
	}

	t.Run("ResetRoom_Success", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, mockRecorder := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room := playToWin(ctx, t, service, mockRecorder)

		// When: the creator resets the finished room
		reset, err := service.ResetRoom(ctx, room.Code, creatorID)

		// Then: a new game starts with the same players
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPlaying, reset.Status)
		assert.Equal(t, entity.EmptyBoard(), reset.Board)
		assert.Equal(t, entity.X, reset.CurrentPlayer)
		assert.Empty(t, reset.WinnerID)
		assert.Equal(t, guestID, reset.Player2ID)
		assert.Equal(t, room.Version+1, reset.Version)
	})

	t.Run("ResetRoom_Forbidden", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, mockRecorder := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room := playToWin(ctx, t, service, mockRecorder)

		// When: the second player resets
		_, err := service.ResetRoom(ctx, room.Code, guestID)

		// Then: only the creator may
		require.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("ResetRoom_GameInProgress", func(t *testing.T) {
		ctx, st := suite.New(t)
		service, _ := newTestRoomService(t, repository.NewRoomRepository(st.Storage))

		room := startGame(ctx, t, service)

		// When: the creator resets mid-game
		_, err := service.ResetRoom(ctx, room.Code, creatorID)

		// Then: the game must finish first
		require.ErrorIs(t, err, apperror.ErrGameInProgress)
	})
}

// barrierRoomRepo holds every armed reader until all of them have read the room.
type barrierRoomRepo struct {
	repository.RoomRepository

	mu      sync.Mutex
	waiting int
	release chan struct{}
}

func (that *barrierRoomRepo) arm(readers int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.waiting = readers
	that.release = make(chan struct{})
}

func (that *barrierRoomRepo) GetByCode(ctx context.Context, code string) (*entity.Room, error) {
	room, err := that.RoomRepository.GetByCode(ctx, code)

	that.mu.Lock()
	release := that.release
	if release != nil {
		that.waiting--
		if that.waiting == 0 {
			close(release)
			that.release = nil
		}
	}
	that.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
		}
	}

	return room, err
}
