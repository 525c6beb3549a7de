package realtime

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

// Subscription holds at most one pending snapshot. A newer snapshot replaces one that was not read yet,
// so a slow reader skips intermediate states but always ends on the latest one.
type Subscription struct {
	code    string
	updates chan *entity.Room

	mu          sync.Mutex
	closed      bool
	lastVersion int64
	delivered   bool

	unsubscribe func(*Subscription)
	closeOnce   sync.Once
}

func newSubscription(code string, unsubscribe func(*Subscription)) *Subscription {
	return &Subscription{
		code:        code,
		updates:     make(chan *entity.Room, 1),
		unsubscribe: unsubscribe,
	}
}

func (that *Subscription) Code() string {
	return that.code
}

// Updates is closed after Close.
func (that *Subscription) Updates() <-chan *entity.Room {
	return that.updates
}

// Offer queues room unless the same or a newer version was already offered.
func (that *Subscription) Offer(room *entity.Room) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || (that.delivered && room.Version <= that.lastVersion) {
		return
	}

	that.lastVersion = room.Version
	that.delivered = true

	select {
	case that.updates <- room:
	default:
		// drop the unread snapshot, the new one supersedes it
		select {
		case <-that.updates:
		default:
		}
		that.updates <- room
	}
}

func (that *Subscription) Close() {
	that.closeOnce.Do(func() {
		if that.unsubscribe != nil {
			that.unsubscribe(that)
		}

		that.mu.Lock()
		that.closed = true
		close(that.updates)
		that.mu.Unlock()
	})
}
