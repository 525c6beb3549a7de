package entity

import "time"

// SessionStats are kept across rounds of one single-player session.
type SessionStats struct {
	PlayerWins    int        `json:"player_wins"`
	AIWins        int        `json:"ai_wins"`
	Draws         int        `json:"draws"`
	CurrentStreak int        `json:"current_streak"`
	LastResult    GameResult `json:"last_result,omitempty"`
}

// Add counts a finished round. The streak only grows on consecutive wins.
func (that *SessionStats) Add(result GameResult) {
	switch result {
	case ResultWin:
		that.PlayerWins++
		if that.LastResult == ResultWin {
			that.CurrentStreak++
		} else {
			that.CurrentStreak = 1
		}
	case ResultLoss:
		that.AIWins++
		that.CurrentStreak = 0
	case ResultDraw:
		that.Draws++
		that.CurrentStreak = 0
	}

	that.LastResult = result
}

// SoloSession is a single-player game against the bot. The human always plays X and moves first.
type SoloSession struct {
	ID            string       `json:"id"`
	UserID        string       `json:"user_id"`
	Difficulty    Difficulty   `json:"difficulty"`
	Board         Board        `json:"board"`
	CurrentPlayer Mark         `json:"current_player"`
	Outcome       Outcome      `json:"outcome"`
	Stats         SessionStats `json:"stats"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

const (
	HumanMark = X
	BotMark   = O
)

func NewSoloSession(id, userID string, difficulty Difficulty, now time.Time) *SoloSession {
	session := &SoloSession{
		ID:         id,
		UserID:     userID,
		Difficulty: difficulty,
	}
	session.NewRound(now)

	return session
}

// NewRound clears the board and keeps the stats.
func (that *SoloSession) NewRound(now time.Time) {
	that.Board = EmptyBoard()
	that.CurrentPlayer = HumanMark
	that.Outcome = Evaluate(that.Board)
	that.UpdatedAt = now
}

func (that *SoloSession) IsActive() bool {
	return that.Outcome.IsOngoing()
}
