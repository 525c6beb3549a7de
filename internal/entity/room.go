package entity

import (
	"strings"
	"time"
)

type RoomStatus string

const (
	StatusWaiting   RoomStatus = "waiting"
	StatusPlaying   RoomStatus = "playing"
	StatusCompleted RoomStatus = "completed"
)

const (
	RoomCodeLength   = 6
	RoomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Room is the authoritative state of one multiplayer match. Version grows by one on every committed write.
type Room struct {
	Code          string     `json:"room_code"`
	CreatorID     string     `json:"creator_id"`
	Player2ID     string     `json:"player2_id,omitempty"`
	Status        RoomStatus `json:"status"`
	Board         Board      `json:"board"`
	CurrentPlayer Mark       `json:"current_player"`
	WinnerID      string     `json:"winner_id,omitempty"`
	Version       int64      `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
}

func NewRoom(code, creatorID string, now time.Time, ttl time.Duration) *Room {
	return &Room{
		Code:          code,
		CreatorID:     creatorID,
		Status:        StatusWaiting,
		Board:         EmptyBoard(),
		CurrentPlayer: X,
		CreatedAt:     now,
		ExpiresAt:     now.Add(ttl),
	}
}

// NormalizeRoomCode makes lookups case-insensitive.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func IsValidRoomCode(code string) bool {
	if len(code) != RoomCodeLength {
		return false
	}

	for _, r := range code {
		if !strings.ContainsRune(RoomCodeAlphabet, r) {
			return false
		}
	}

	return true
}

// MarkOf resolves the creator to X and the second player to O.
func (that *Room) MarkOf(userID string) (Mark, bool) {
	switch {
	case userID == "":
		return Empty, false
	case userID == that.CreatorID:
		return X, true
	case userID == that.Player2ID:
		return O, true
	default:
		return Empty, false
	}
}

func (that *Room) PlayerIDOf(mark Mark) string {
	switch mark {
	case X:
		return that.CreatorID
	case O:
		return that.Player2ID
	default:
		return ""
	}
}

func (that *Room) IsCreator(userID string) bool {
	return userID != "" && userID == that.CreatorID
}

func (that *Room) IsExpired(now time.Time) bool {
	return !now.Before(that.ExpiresAt)
}

func (that *Room) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Room) IsCompleted() bool {
	return that.Status == StatusCompleted
}

func (that *Room) Outcome() Outcome {
	return Evaluate(that.Board)
}

func (that *Room) Clone() *Room {
	clone := *that
	return &clone
}
