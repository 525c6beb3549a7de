// Package bot picks moves for the computer opponent. Every call is a pure function of the board it gets.
package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

var (
	corners = []int{0, 2, 6, 8}
	edges   = []int{1, 3, 5, 7}
)

const center = 4

// intn is swapped in tests.
var intn = rand.IntN

// ChooseMove returns an empty cell for mark to play. The caller must make sure the game is still ongoing.
func ChooseMove(board entity.Board, difficulty entity.Difficulty, mark entity.Mark) (int, error) {
	available := board.EmptyCells()
	if len(available) == 0 {
		return -1, apperror.ErrNoLegalMove
	}

	switch difficulty {
	case entity.Easy:
		return available[intn(len(available))], nil
	case entity.Medium:
		return mediumMove(board, mark), nil
	case entity.Hard:
		return hardMove(board, mark), nil
	default:
		return -1, fmt.Errorf("%w: %q", entity.ErrUnknownDifficulty, difficulty)
	}
}

// mediumMove looks one ply ahead: win, block, center, corner, edge.
func mediumMove(board entity.Board, mark entity.Mark) int {
	if cell, ok := findWinningMove(board, mark); ok {
		return cell
	}

	if cell, ok := findWinningMove(board, mark.Opponent()); ok {
		return cell
	}

	if board[center] == entity.Empty {
		return center
	}

	for _, group := range [][]int{corners, edges} {
		for _, cell := range group {
			if board[cell] == entity.Empty {
				return cell
			}
		}
	}

	return -1
}

// findWinningMove returns the lowest empty cell that completes a line for mark.
func findWinningMove(board entity.Board, mark entity.Mark) (int, bool) {
	for _, cell := range board.EmptyCells() {
		next, err := entity.ApplyMove(board, cell, mark)
		if err != nil {
			continue
		}

		if outcome := entity.Evaluate(next); outcome.Kind == entity.OutcomeWin && outcome.Winner == mark {
			return cell, true
		}
	}

	return -1, false
}

const (
	scoreWin  = 1
	scoreDraw = 0
	scoreLoss = -1
)

// hardMove runs a full minimax. Among equally good moves the lowest index wins.
func hardMove(board entity.Board, mark entity.Mark) int {
	bestCell, bestScore := -1, scoreLoss-1

	for _, cell := range board.EmptyCells() {
		next, err := entity.ApplyMove(board, cell, mark)
		if err != nil {
			continue
		}

		score := minimax(next, mark, mark.Opponent(), scoreLoss-1, scoreWin+1)
		if score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell
}

// minimax scores board for ai with turn to move. Every root child is searched with the
// full window, so the scores hardMove compares are exact.
func minimax(board entity.Board, ai, turn entity.Mark, alpha, beta int) int {
	outcome := entity.Evaluate(board)
	switch outcome.Kind {
	case entity.OutcomeWin:
		if outcome.Winner == ai {
			return scoreWin
		}
		return scoreLoss
	case entity.OutcomeDraw:
		return scoreDraw
	case entity.OutcomeOngoing:
	}

	maximizing := turn == ai
	best := scoreWin + 1
	if maximizing {
		best = scoreLoss - 1
	}

	for _, cell := range board.EmptyCells() {
		next, err := entity.ApplyMove(board, cell, turn)
		if err != nil {
			continue
		}

		score := minimax(next, ai, turn.Opponent(), alpha, beta)
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, score)
		} else {
			best = min(best, score)
			beta = min(beta, score)
		}

		if alpha >= beta {
			break
		}
	}

	return best
}
