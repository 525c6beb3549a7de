package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/realtime"
	"github.com/rocketscienceinc/tictactoe-rooms/testing/suite"
)

func newTestRoom(code string) *entity.Room {
	return entity.NewRoom(code, "creator", time.Now(), 2*time.Hour)
}

func TestRoomRepository_Create(t *testing.T) {
	t.Run("Create_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: a new room
		room := newTestRoom("ABC123")

		// When: Create is called
		err := roomRepo.Create(ctx, room)

		// Then: the room is stored with a TTL close to its lifetime
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, "room:ABC123").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Hour+59*time.Minute)
	})

	t.Run("Create_CodeTaken", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: a live room with the code
		require.NoError(t, roomRepo.Create(ctx, newTestRoom("ABC123")))

		// When: another room with the same code is created
		err := roomRepo.Create(ctx, newTestRoom("ABC123"))

		// Then: the code is reported as taken and the first room survives
		require.ErrorIs(t, err, apperror.ErrRoomCodeTaken)

		stored, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, "creator", stored.CreatorID)
	})
}

func TestRoomRepository_GetByCode(t *testing.T) {
	t.Run("GetByCode_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// Given: a stored room
		room := newTestRoom("QWE789")
		require.NoError(t, roomRepo.Create(ctx, room))

		// When: GetByCode is called
		stored, err := roomRepo.GetByCode(ctx, "QWE789")

		// Then: the stored room matches
		require.NoError(t, err)
		assert.Equal(t, room.Code, stored.Code)
		assert.Equal(t, room.Status, stored.Status)
		assert.Equal(t, room.Board, stored.Board)
		assert.Equal(t, entity.X, stored.CurrentPlayer)
	})

	t.Run("GetByCode_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		// When: GetByCode is called with an unknown code
		room, err := roomRepo.GetByCode(ctx, "NOPE00")

		// Then: ErrRoomNotFound is returned
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
		assert.Nil(t, room)
	})
}

func TestRoomRepository_CompareAndSwap(t *testing.T) {
	t.Run("CompareAndSwap_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)
		require.NoError(t, roomRepo.Create(ctx, newTestRoom("ABC123")))

		// Given: a subscriber on the room channel and a loaded room
		pubsub := st.Storage.Subscribe(ctx, realtime.ChannelFor("ABC123"))
		defer pubsub.Close()
		_, err := pubsub.Receive(ctx)
		require.NoError(t, err)

		room, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)

		room.Player2ID = "guest"
		room.Status = entity.StatusPlaying

		// When: the room is written against the loaded version
		err = roomRepo.CompareAndSwap(ctx, room.Version, room)

		// Then: the version grows and the full snapshot is published
		require.NoError(t, err)
		assert.Equal(t, int64(1), room.Version)

		msg, err := pubsub.ReceiveMessage(ctx)
		require.NoError(t, err)

		snapshot, err := realtime.DecodeSnapshot([]byte(msg.Payload))
		require.NoError(t, err)
		assert.Equal(t, "guest", snapshot.Player2ID)
		assert.Equal(t, int64(1), snapshot.Version)

		ttl, err := st.Storage.TTL(ctx, "room:ABC123").Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("CompareAndSwap_StaleVersion", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)
		require.NoError(t, roomRepo.Create(ctx, newTestRoom("ABC123")))

		// Given: a room that was already written once
		room, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)
		require.NoError(t, roomRepo.CompareAndSwap(ctx, 0, room.Clone()))

		// When: a write is attempted from the old version
		room.Status = entity.StatusCompleted
		err = roomRepo.CompareAndSwap(ctx, 0, room)

		// Then: it is a conflict and nothing changed
		require.ErrorIs(t, err, apperror.ErrConflict)

		stored, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWaiting, stored.Status)
		assert.Equal(t, int64(1), stored.Version)
	})

	t.Run("CompareAndSwap_MissingRoom", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)

		err := roomRepo.CompareAndSwap(ctx, 0, newTestRoom("GONE00"))

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("CompareAndSwap_ConcurrentWritersFromSameVersion", func(t *testing.T) {
		ctx, st := suite.New(t)

		roomRepo := NewRoomRepository(st.Storage)
		require.NoError(t, roomRepo.Create(ctx, newTestRoom("ABC123")))

		// Given: two writers holding the same loaded version
		loaded, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)

		const writers = 2
		var wg sync.WaitGroup
		errs := make(chan error, writers)

		// When: both write at the same time
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()

				room := loaded.Clone()
				room.Board[i] = entity.X
				errs <- roomRepo.CompareAndSwap(ctx, loaded.Version, room)
			}()
		}

		wg.Wait()
		close(errs)

		// Then: exactly one write wins and the other is a conflict
		var succeeded, conflicted int
		for err := range errs {
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, apperror.ErrConflict):
				conflicted++
			}
		}

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, conflicted)

		stored, err := roomRepo.GetByCode(ctx, "ABC123")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Board.Count(entity.X))
	})
}

func TestRoomRepository_KeyExpires(t *testing.T) {
	ctx, st := suite.New(t)

	roomRepo := NewRoomRepository(st.Storage)

	// Given: a room that lives for one second
	now := time.Now()
	room := entity.NewRoom("SHORT1", "creator", now, time.Second)
	require.NoError(t, roomRepo.Create(ctx, room))

	// When: the lifetime has passed
	require.Eventually(t, func() bool {
		_, err := st.Storage.Get(ctx, "room:SHORT1").Result()
		return errors.Is(err, redis.Nil)
	}, 5*time.Second, 100*time.Millisecond)

	// Then: the code is free again
	require.NoError(t, roomRepo.Create(ctx, entity.NewRoom("SHORT1", "other", time.Now(), time.Hour)))
}
