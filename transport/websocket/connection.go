package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/realtime"
)

// connection is one participant's socket. Only writePump writes to ws.
type connection struct {
	logger *slog.Logger
	ws     *websocket.Conn
	userID string
	code   string
	sub    *realtime.Subscription
	outbox chan Message

	// cancel is called by writePump on exit, nothing drains outbox after that.
	cancel context.CancelFunc
}

func (that *connection) sendError(ctx context.Context, action string, err error) {
	msg, marshalErr := newMessage(ActionError, ErrorPayload{Action: action, Error: errorText(err)})
	if marshalErr != nil {
		that.logger.Error("failed to marshal error", "error", marshalErr)
		return
	}

	select {
	case that.outbox <- msg:
	case <-ctx.Done():
	}
}

// writePump sends snapshots, replies and pings until ctx is done or the subscription closes.
// On the way out it cancels the connection and closes the socket, so the reader returns
// whether it is blocked on the socket or on a full outbox.
func (that *connection) writePump(ctx context.Context) {
	log := that.logger.With("method", "writePump")

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		that.cancel()
		_ = that.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		_ = that.ws.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case room, ok := <-that.sub.Updates():
			if !ok {
				return
			}

			msg, err := snapshotMessage(room)
			if err != nil {
				log.Error("failed to marshal snapshot", "error", err)
				continue
			}

			if err = that.write(msg); err != nil {
				log.Debug("failed to send snapshot", "error", err)
				return
			}
		case msg := <-that.outbox:
			if err := that.write(msg); err != nil {
				log.Debug("failed to send message", "error", err)
				return
			}
		case <-ticker.C:
			if err := that.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Debug("failed to ping", "error", err)
				return
			}
		}
	}
}

func (that *connection) write(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if err = that.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	if err = that.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
