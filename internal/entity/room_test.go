package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRoom(t *testing.T) {
	// Given: a creation time
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	// When: creating a room
	room := NewRoom("ABC123", "creator", now, 2*time.Hour)

	// Then: it waits for a second player with an empty board and X to move
	assert.Equal(t, StatusWaiting, room.Status)
	assert.Equal(t, EmptyBoard(), room.Board)
	assert.Equal(t, X, room.CurrentPlayer)
	assert.Equal(t, now.Add(2*time.Hour), room.ExpiresAt)
	assert.Empty(t, room.Player2ID)
}

func TestRoom_MarkOf(t *testing.T) {
	room := &Room{CreatorID: "alice", Player2ID: "bob"}

	t.Run("Creator plays X", func(t *testing.T) {
		mark, ok := room.MarkOf("alice")
		assert.True(t, ok)
		assert.Equal(t, X, mark)
	})

	t.Run("Second player plays O", func(t *testing.T) {
		mark, ok := room.MarkOf("bob")
		assert.True(t, ok)
		assert.Equal(t, O, mark)
	})

	t.Run("Strangers and empty ids have no mark", func(t *testing.T) {
		_, ok := room.MarkOf("eve")
		assert.False(t, ok)

		// Given: a room without a second player
		waiting := &Room{CreatorID: "alice"}

		// When: resolving an empty user id
		_, ok = waiting.MarkOf("")

		// Then: it must not match the empty player2 slot
		assert.False(t, ok)
	})

	t.Run("Winner id follows the mark", func(t *testing.T) {
		assert.Equal(t, "alice", room.PlayerIDOf(X))
		assert.Equal(t, "bob", room.PlayerIDOf(O))
		assert.Empty(t, room.PlayerIDOf(Empty))
	})
}

func TestRoom_IsExpired(t *testing.T) {
	now := time.Now()
	room := &Room{ExpiresAt: now}

	assert.True(t, room.IsExpired(now))
	assert.True(t, room.IsExpired(now.Add(time.Second)))
	assert.False(t, room.IsExpired(now.Add(-time.Second)))
}

func TestRoomCode(t *testing.T) {
	assert.Equal(t, "AB12CD", NormalizeRoomCode(" ab12cd "))
	assert.True(t, IsValidRoomCode("AB12CD"))
	assert.False(t, IsValidRoomCode("ab12cd"))
	assert.False(t, IsValidRoomCode("AB12C"))
	assert.False(t, IsValidRoomCode("AB-2CD"))
}

func TestGameResult(t *testing.T) {
	t.Run("Score deltas", func(t *testing.T) {
		assert.Equal(t, 2, ResultWin.ScoreDelta())
		assert.Equal(t, 1, ResultDraw.ScoreDelta())
		assert.Equal(t, -1, ResultLoss.ScoreDelta())
	})

	t.Run("Classification from one side", func(t *testing.T) {
		xWins := Outcome{Kind: OutcomeWin, Winner: X, Line: []int{0, 1, 2}}

		assert.Equal(t, ResultWin, ClassifyResult(xWins, X))
		assert.Equal(t, ResultLoss, ClassifyResult(xWins, O))
		assert.Equal(t, ResultDraw, ClassifyResult(Outcome{Kind: OutcomeDraw}, X))
	})

	t.Run("AI mode tag", func(t *testing.T) {
		assert.Equal(t, "ai:hard", AIMode(Hard))
	})
}

func TestSessionStats_Add(t *testing.T) {
	// Given: fresh stats
	stats := SessionStats{}

	// When: the player wins twice, loses, then draws
	stats.Add(ResultWin)
	stats.Add(ResultWin)
	assert.Equal(t, 2, stats.CurrentStreak)

	stats.Add(ResultLoss)
	stats.Add(ResultDraw)

	// Then: every counter is updated and the streak is broken
	assert.Equal(t, SessionStats{
		PlayerWins:    2,
		AIWins:        1,
		Draws:         1,
		CurrentStreak: 0,
		LastResult:    ResultDraw,
	}, stats)
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("HARD")
	assert.NoError(t, err)
	assert.Equal(t, Hard, d)

	_, err = ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}
