// Package tictactoe authorizes a move against the turn and occupancy state before it is committed.
// Rooms and single-player sessions both go through Arbitrate.
package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

type Turn struct {
	Board         entity.Board
	CurrentPlayer entity.Mark
	Active        bool
}

type Verdict struct {
	Board      entity.Board
	Outcome    entity.Outcome
	NextPlayer entity.Mark
}

func RoomTurn(room *entity.Room) Turn {
	return Turn{
		Board:         room.Board,
		CurrentPlayer: room.CurrentPlayer,
		Active:        room.IsPlaying(),
	}
}

func SessionTurn(session *entity.SoloSession) Turn {
	return Turn{
		Board:         session.Board,
		CurrentPlayer: session.CurrentPlayer,
		Active:        session.IsActive(),
	}
}

// Arbitrate validates that mark may play cell and returns the resulting state.
// The current player stays frozen once the game is over, so late duplicates fail the turn check.
func Arbitrate(turn Turn, mark entity.Mark, cell int) (Verdict, error) {
	if !turn.Active {
		return Verdict{}, apperror.ErrGameNotActive
	}

	if mark != turn.CurrentPlayer {
		return Verdict{}, apperror.ErrNotYourTurn
	}

	if cell >= 0 && cell < entity.BoardSize && turn.Board[cell] != entity.Empty {
		return Verdict{}, fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	board, err := entity.ApplyMove(turn.Board, cell, mark)
	if err != nil {
		return Verdict{}, fmt.Errorf("invalid turn: %w", err)
	}

	outcome := entity.Evaluate(board)

	next := turn.CurrentPlayer
	if outcome.IsOngoing() {
		next = mark.Opponent()
	}

	return Verdict{
		Board:      board,
		Outcome:    outcome,
		NextPlayer: next,
	}, nil
}
