package realtime

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// Mirror is a client's disposable copy of a room. Every snapshot replaces it whole,
// including any board the client predicted locally.
type Mirror struct {
	mu        sync.RWMutex
	room      *entity.Room
	predicted *entity.Board
}

func NewMirror() *Mirror {
	return &Mirror{}
}

// Adopt replaces the local copy with room. Snapshots older than the current one are ignored.
func (that *Mirror) Adopt(room *entity.Room) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.room != nil && room.Version < that.room.Version {
		return false
	}

	that.room = room.Clone()
	that.predicted = nil

	return true
}

func (that *Mirror) AdoptPayload(payload []byte) (bool, error) {
	room, err := DecodeSnapshot(payload)
	if err != nil {
		return false, err
	}

	return that.Adopt(room), nil
}

// Predict shows a move before the server confirms it. The next snapshot discards it.
func (that *Mirror) Predict(cell int, mark entity.Mark) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	board, err := entity.ApplyMove(that.boardLocked(), cell, mark)
	if err != nil {
		return err
	}

	that.predicted = &board

	return nil
}

func (that *Mirror) boardLocked() entity.Board {
	switch {
	case that.predicted != nil:
		return *that.predicted
	case that.room != nil:
		return that.room.Board
	default:
		return entity.EmptyBoard()
	}
}

func (that *Mirror) Board() entity.Board {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.boardLocked()
}

func (that *Mirror) Outcome() entity.Outcome {
	return entity.Evaluate(that.Board())
}

// Room returns a copy of the last adopted snapshot, or nil.
func (that *Mirror) Room() *entity.Room {
	that.mu.RLock()
	defer that.mu.RUnlock()

	if that.room == nil {
		return nil
	}

	return that.room.Clone()
}
