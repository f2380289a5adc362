package conversation

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaronsalon/salon-ai-assistant/internal/emotion"
)

func newTestRedisLog(t *testing.T) *RedisLog {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisLog(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisLogRecordAndSnapshot(t *testing.T) {
	log := newTestRedisLog(t)
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, Entry{
		Phone:    "0501234567",
		Message:  "נמאס לי",
		Response: "תשובה",
		Emotion:  emotion.Frustrated,
	}))
	require.NoError(t, log.Record(ctx, Entry{
		Phone:    "0527654321",
		Message:  "תודה רבה",
		Response: "תשובה",
		Emotion:  emotion.Happy,
	}))

	snap, err := log.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, snap.TotalMessages)
	assert.Equal(t, 1, snap.EmotionStats[emotion.Frustrated])
	assert.Equal(t, 1, snap.EmotionStats[emotion.Happy])
	require.NotNil(t, snap.LastMessage)
	assert.Equal(t, "תודה רבה", snap.LastMessage.Message)
	assert.NotEmpty(t, snap.LastMessage.ID)
}

func TestRedisLogEmptySnapshot(t *testing.T) {
	log := newTestRedisLog(t)

	snap, err := log.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, snap.TotalMessages)
	assert.Nil(t, snap.LastMessage)
	assert.Empty(t, snap.Recent)
}

func TestRedisLogSkipsCorruptEntries(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	log := NewRedisLog(client)
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, Entry{Message: "הודעה", Emotion: emotion.Neutral}))
	require.NoError(t, client.RPush(ctx, redisLogKey, "not-json").Err())

	snap, err := log.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.TotalMessages)
}

func TestNewRedisLogNilClient(t *testing.T) {
	assert.Nil(t, NewRedisLog(nil))
}
