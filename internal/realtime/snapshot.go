package realtime

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const channelPrefix = "channel:room:"

// ChannelPattern matches the channels of every room.
const ChannelPattern = channelPrefix + "*"

func ChannelFor(code string) string {
	return channelPrefix + code
}

// CodeFromChannel returns the room code a channel belongs to.
func CodeFromChannel(channel string) (string, bool) {
	code, ok := strings.CutPrefix(channel, channelPrefix)
	return code, ok && code != ""
}

// EncodeSnapshot serializes the whole room. Snapshots are never diffs.
func EncodeSnapshot(room *entity.Room) ([]byte, error) {
	payload, err := json.Marshal(room)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal room snapshot: %w", err)
	}

	return payload, nil
}

func DecodeSnapshot(payload []byte) (*entity.Room, error) {
	var room entity.Room
	if err := json.Unmarshal(payload, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room snapshot: %w", err)
	}

	return &room, nil
}
