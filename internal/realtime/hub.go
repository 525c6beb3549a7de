// Package realtime delivers committed room snapshots to every connected participant.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

var tracer = otel.Tracer("realtime")

type roomSource interface {
	GetByCode(ctx context.Context, code string) (*entity.Room, error)
}

// Hub listens to every room channel once and fans snapshots out to local subscribers.
// The participant who caused a change receives it like everybody else.
type Hub struct {
	logger *slog.Logger
	client *redis.Client
	rooms  roomSource

	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}

	ready     chan struct{}
	readyOnce sync.Once
}

// NewHub builds a hub. rooms is read back after a Pub/Sub reconnect and may be nil when there is no client.
func NewHub(logger *slog.Logger, client *redis.Client, rooms roomSource) *Hub {
	return &Hub{
		logger: logger,
		client: client,
		rooms:  rooms,
		subs:   make(map[string]map[*Subscription]struct{}),
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the hub receives messages.
func (that *Hub) Ready() <-chan struct{} {
	return that.ready
}

func (that *Hub) Subscribe(code string) *Subscription {
	sub := newSubscription(code, that.remove)

	that.mu.Lock()
	defer that.mu.Unlock()

	set := that.subs[code]
	if set == nil {
		set = make(map[*Subscription]struct{})
		that.subs[code] = set
	}
	set[sub] = struct{}{}

	return sub
}

func (that *Hub) remove(sub *Subscription) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if set, ok := that.subs[sub.code]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(that.subs, sub.code)
		}
	}
}

// Run blocks until ctx is done.
func (that *Hub) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	pubsub := that.client.PSubscribe(ctx, ChannelPattern)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to room channels: %w", err)
	}

	that.readyOnce.Do(func() { close(that.ready) })
	log.Info("listening for room updates", "pattern", ChannelPattern)

	messages := pubsub.ChannelWithSubscriptions()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			that.handle(ctx, msg)
		}
	}
}

func (that *Hub) handle(ctx context.Context, msg any) {
	switch msg := msg.(type) {
	case *redis.Message:
		that.dispatch(ctx, msg)
	case *redis.Subscription:
		// the pattern was subscribed again after a reconnect, snapshots published meanwhile are lost
		that.logger.With("method", "handle").Info("resubscribed to room channels", "kind", msg.Kind)
		that.resync(ctx)
	}
}

// resync delivers the stored state of every room that has local subscribers.
func (that *Hub) resync(ctx context.Context) int {
	log := that.logger.With("method", "resync")

	if that.rooms == nil {
		return 0
	}

	ctx, span := tracer.Start(ctx, "realtime.resync")
	defer span.End()

	that.mu.RLock()
	codes := make([]string, 0, len(that.subs))
	for code := range that.subs {
		codes = append(codes, code)
	}
	that.mu.RUnlock()

	delivered := 0
	for _, code := range codes {
		room, err := that.rooms.GetByCode(ctx, code)
		if errors.Is(err, apperror.ErrRoomNotFound) {
			continue
		}

		if err != nil {
			span.RecordError(err)
			log.Error("failed to reload room", "room_code", code, "error", err)
			continue
		}

		delivered += that.Deliver(room)
	}

	span.SetAttributes(attribute.Int("rooms", len(codes)), attribute.Int("subscribers", delivered))

	return delivered
}

func (that *Hub) dispatch(ctx context.Context, msg *redis.Message) {
	log := that.logger.With("method", "dispatch", "channel", msg.Channel)

	code, ok := CodeFromChannel(msg.Channel)
	if !ok {
		log.Warn("unexpected channel")
		return
	}

	_, span := tracer.Start(ctx, "realtime.dispatch", trace.WithAttributes(attribute.String("room.code", code)))
	defer span.End()

	room, err := DecodeSnapshot([]byte(msg.Payload))
	if err != nil {
		span.RecordError(err)
		log.Error("failed to decode snapshot", "error", err)
		return
	}

	span.SetAttributes(attribute.Int("subscribers", that.Deliver(room)))
}

// Deliver offers room to every subscriber of its code and returns how many there were.
func (that *Hub) Deliver(room *entity.Room) int {
	that.mu.RLock()
	subs := make([]*Subscription, 0, len(that.subs[room.Code]))
	for sub := range that.subs[room.Code] {
		subs = append(subs, sub)
	}
	that.mu.RUnlock()

	for _, sub := range subs {
		sub.Offer(room.Clone())
	}

	return len(subs)
}
