package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisManager publishes room state-change hints over Redis Pub/Sub.
type RedisManager struct {
	client *redis.Client
}

// PubSubMessage is the payload published on a room channel.
type PubSubMessage struct {
	Type      string    `json:"type"`
	RoomCode  string    `json:"roomCode"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func NewRedisManager(ctx context.Context, redisAddr string, password string, db int) (*RedisManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisManager{client: rdb}, nil
}

func (rm *RedisManager) Close() error {
	return rm.client.Close()
}

func RoomChannel(roomCode string) string {
	return "room:" + roomCode
}

func buildMessage(roomCode, msgType string, content any, now time.Time) ([]byte, error) {
	payload, err := json.Marshal(PubSubMessage{
		Type:      msgType,
		RoomCode:  roomCode,
		Data:      content,
		Timestamp: now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal redis message: %w", err)
	}
	return payload, nil
}

func (rm *RedisManager) PublishMessage(ctx context.Context, roomCode string, msgType string, content any) error {
	payload, err := buildMessage(roomCode, msgType, content, time.Now().UTC())
	if err != nil {
		return err
	}

	channel := RoomChannel(roomCode)
	if err := rm.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to redis channel %s: %w", channel, err)
	}
	return nil
}
