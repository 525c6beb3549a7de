package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/realtime"
)

var ErrRoomExpired = errors.New("room is already expired")

// RoomRepository stores rooms in Redis. Every write publishes the full snapshot on the room channel.
type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	GetByCode(ctx context.Context, code string) (*entity.Room, error)
	CompareAndSwap(ctx context.Context, expectedVersion int64, room *entity.Room) error
}

type dbRoom struct {
	client *redis.Client
}

func NewRoomRepository(client *redis.Client) RoomRepository {
	return &dbRoom{
		client: client,
	}
}

func roomKey(code string) string {
	return "room:" + code
}

// Create stores a new room only if its code is not used by a live room.
// The key expires together with the room, which frees the code.
func (that *dbRoom) Create(ctx context.Context, room *entity.Room) error {
	ttl := room.ExpiresAt.Sub(room.CreatedAt)
	if ttl <= 0 {
		return fmt.Errorf("%w: %s", ErrRoomExpired, room.Code)
	}

	payload, err := realtime.EncodeSnapshot(room)
	if err != nil {
		return err
	}

	created, err := that.client.SetNX(ctx, roomKey(room.Code), payload, ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	if !created {
		return fmt.Errorf("%w: %s", apperror.ErrRoomCodeTaken, room.Code)
	}

	if err = that.client.Publish(ctx, realtime.ChannelFor(room.Code), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish room: %w", err)
	}

	return nil
}

func (that *dbRoom) GetByCode(ctx context.Context, code string) (*entity.Room, error) {
	response, err := that.client.Get(ctx, roomKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	var room entity.Room
	if err = json.Unmarshal(response, &room); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return &room, nil
}

// CompareAndSwap writes room only if the stored version still equals expectedVersion.
// On success room.Version is bumped and the snapshot is published in the same transaction.
func (that *dbRoom) CompareAndSwap(ctx context.Context, expectedVersion int64, room *entity.Room) error {
	key := roomKey(room.Code)

	next := room.Clone()
	next.Version = expectedVersion + 1

	payload, err := realtime.EncodeSnapshot(next)
	if err != nil {
		return err
	}

	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return apperror.ErrRoomNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}

		var stored entity.Room
		if err = json.Unmarshal(current, &stored); err != nil {
			return fmt.Errorf("failed to unmarshal room: %w", err)
		}

		if stored.Version != expectedVersion {
			return fmt.Errorf("%w: expected version %d, got %d", apperror.ErrConflict, expectedVersion, stored.Version)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, redis.KeepTTL)
			pipe.Publish(ctx, realtime.ChannelFor(room.Code), payload)
			return nil
		})

		return err
	}

	err = that.client.Watch(ctx, txf, key)
	switch {
	case errors.Is(err, redis.TxFailedErr):
		return fmt.Errorf("%w: room %s was modified", apperror.ErrConflict, room.Code)
	case errors.Is(err, apperror.ErrConflict), errors.Is(err, apperror.ErrRoomNotFound):
		return err
	case err != nil:
		return fmt.Errorf("failed to update room: %w", err)
	}

	room.Version = next.Version

	return nil
}
