package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
)

type Mark string

const (
	Empty Mark = ""
	X     Mark = "X"
	O     Mark = "O"
)

// Opponent returns the other player symbol.
func (that Mark) Opponent() Mark {
	if that == X {
		return O
	}
	return X
}

const BoardSize = 9

// WinCombos is checked in this order: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major 3x3 grid. It is a value type: every move returns a new Board.
type Board [BoardSize]Mark

func EmptyBoard() Board {
	return Board{}
}

// ApplyMove places mark at index. Turn ownership is not checked here.
func ApplyMove(board Board, index int, mark Mark) (Board, error) {
	if index < 0 || index >= BoardSize {
		return board, fmt.Errorf("%w: cell %d is out of range", apperror.ErrIllegalMove, index)
	}

	if board[index] != Empty {
		return board, fmt.Errorf("%w: cell %d is occupied", apperror.ErrIllegalMove, index)
	}

	board[index] = mark

	return board, nil
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}
	return count
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

func (that Board) IsFull() bool {
	return that.Count(Empty) == 0
}

type OutcomeKind string

const (
	OutcomeOngoing OutcomeKind = "ongoing"
	OutcomeWin     OutcomeKind = "win"
	OutcomeDraw    OutcomeKind = "draw"
)

// Outcome is computed from a Board, never stored on its own.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Mark        `json:"winner,omitempty"`
	Line   []int       `json:"line,omitempty"`
}

func (that Outcome) IsOngoing() bool {
	return that.Kind == OutcomeOngoing
}

func (that Outcome) IsTerminal() bool {
	return that.Kind != OutcomeOngoing
}

func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Outcome{Kind: OutcomeWin, Winner: a, Line: []int{combo[0], combo[1], combo[2]}}
		}
	}

	// a full board without a line
	if board.IsFull() {
		return Outcome{Kind: OutcomeDraw}
	}

	return Outcome{Kind: OutcomeOngoing}
}
