package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/testing/suite"
)

func TestSessionRepository_CreateOrUpdate(t *testing.T) {
	ctx, st := suite.New(t)

	sessionRepo := NewSessionRepository(st.Storage, time.Hour)

	// Given: a new single-player session
	session := entity.NewSoloSession("s1", "u1", entity.Hard, time.Now())

	// When: CreateOrUpdate is called twice
	require.NoError(t, sessionRepo.CreateOrUpdate(ctx, session))

	session.Board[4] = entity.X
	err := sessionRepo.CreateOrUpdate(ctx, session)

	// Then: the last write is stored
	require.NoError(t, err)

	stored, err := sessionRepo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.X, stored.Board[4])
	assert.Equal(t, entity.Hard, stored.Difficulty)
}

func TestSessionRepository_GetByID(t *testing.T) {
	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Hour)

		// When: GetByID is called with an unknown id
		session, err := sessionRepo.GetByID(ctx, "missing")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, session)
	})
}

func TestSessionRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Hour)

		// Given: a stored session
		require.NoError(t, sessionRepo.CreateOrUpdate(ctx, entity.NewSoloSession("s1", "u1", entity.Easy, time.Now())))

		// When: DeleteByID is called
		err := sessionRepo.DeleteByID(ctx, "s1")

		// Then: the session is gone
		require.NoError(t, err)

		_, err = sessionRepo.GetByID(ctx, "s1")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		sessionRepo := NewSessionRepository(st.Storage, time.Hour)

		err := sessionRepo.DeleteByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}
