package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"

	appconfig "github.com/yaronsalon/salon-ai-assistant/internal/config"
	"github.com/yaronsalon/salon-ai-assistant/internal/conversation"
	"github.com/yaronsalon/salon-ai-assistant/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildRecorder wires the conversation log: Redis-backed when a client
// is available, in-memory otherwise.
func BuildRecorder(redisClient *redis.Client, logger *logging.Logger) conversation.Recorder {
	if logger == nil {
		logger = logging.Default()
	}
	if redisClient != nil {
		logger.Info("conversation log backed by redis")
		return conversation.NewRedisLog(redisClient)
	}
	logger.Info("conversation log kept in memory")
	return conversation.NewMemoryLog()
}
