package conversation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const redisLogKey = "salon:conversation_log"

// RedisLog keeps the conversation log in a Redis list so it survives
// restarts. Same append-only contract as MemoryLog; RPUSH serializes
// concurrent appends on the server side.
type RedisLog struct {
	redis  *redis.Client
	tracer trace.Tracer
}

// NewRedisLog returns a Redis-backed conversation log, or nil when no
// client is configured.
func NewRedisLog(client *redis.Client) *RedisLog {
	if client == nil {
		return nil
	}
	return &RedisLog{
		redis:  client,
		tracer: otel.Tracer("salon/conversation-redis-log"),
	}
}

// Record appends a turn to the Redis list.
func (l *RedisLog) Record(ctx context.Context, e Entry) error {
	stampEntry(&e)

	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("conversation: marshal log entry: %w", err)
	}

	ctx, span := l.tracer.Start(ctx, "conversation.log.record")
	defer span.End()

	if err := l.redis.RPush(ctx, redisLogKey, data).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("conversation: append log entry: %w", err)
	}
	return nil
}

// Snapshot reads the full list and computes the analytics view.
func (l *RedisLog) Snapshot(ctx context.Context) (Snapshot, error) {
	ctx, span := l.tracer.Start(ctx, "conversation.log.snapshot")
	defer span.End()

	raw, err := l.redis.LRange(ctx, redisLogKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		span.RecordError(err)
		return Snapshot{}, fmt.Errorf("conversation: read log: %w", err)
	}

	entries := make([]Entry, 0, len(raw))
	for _, item := range raw {
		var e Entry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			span.RecordError(err)
			continue
		}
		entries = append(entries, e)
	}
	return buildSnapshot(entries), nil
}
