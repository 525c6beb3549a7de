package entity

import "time"

type GameResult string

const (
	ResultWin  GameResult = "win"
	ResultDraw GameResult = "draw"
	ResultLoss GameResult = "loss"
)

const ModeMultiplayer = "multiplayer"

func AIMode(difficulty Difficulty) string {
	return "ai:" + string(difficulty)
}

// ScoreDelta is the score effect consumed by the leaderboard.
func (that GameResult) ScoreDelta() int {
	switch that {
	case ResultWin:
		return 2
	case ResultDraw:
		return 1
	case ResultLoss:
		return -1
	default:
		return 0
	}
}

// ClassifyResult returns the result of a finished game from the point of view of perspective.
func ClassifyResult(outcome Outcome, perspective Mark) GameResult {
	switch {
	case outcome.Kind == OutcomeDraw:
		return ResultDraw
	case outcome.Kind == OutcomeWin && outcome.Winner == perspective:
		return ResultWin
	default:
		return ResultLoss
	}
}

// GameRecord is one completed game. Player1 is the creator of a room or the human in an AI game.
type GameRecord struct {
	ID         string
	Player1ID  string
	Player2ID  string
	Mode       string
	Board      Board
	Result     GameResult
	WinnerID   string
	ScoreDelta int
	CreatedAt  time.Time
}
