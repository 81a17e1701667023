package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"auditapi/internal/config"
	"auditapi/internal/model"
)

const keyPrefix = "auditapi:userinfo:"

type redisUserInfoCache struct {
	client  *redis.Client
	log     *slog.Logger
	ttl     time.Duration
	timeout time.Duration
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(cfg config.RedisConfig, log *slog.Logger) (UserInfoCache, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newRedisCache(client, time.Duration(cfg.TTLSec)*time.Second, log), nil
}

func newRedisCache(client *redis.Client, ttl time.Duration, log *slog.Logger) *redisUserInfoCache {
	if log == nil {
		log = slog.Default()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisUserInfoCache{
		client:  client,
		log:     log.With("component", "cache"),
		ttl:     ttl,
		timeout: 250 * time.Millisecond,
	}
}

func (c *redisUserInfoCache) Get(ctx context.Context, userID string) (*model.UserInfo, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "redis get failed", "user_id", userID, "error", err)
		}
		return nil, false
	}
	info, err := decode(raw)
	if err != nil {
		c.log.WarnContext(ctx, "discarding corrupt cache entry", "user_id", userID, "error", err)
		return nil, false
	}
	return info, true
}

func (c *redisUserInfoCache) Set(ctx context.Context, info model.UserInfo) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := json.Marshal(info)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(info.UserID), raw, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "redis set failed", "user_id", info.UserID, "error", err)
	}
}

func (c *redisUserInfoCache) Close() error {
	return c.client.Close()
}

func key(userID string) string { return keyPrefix + userID }

func decode(raw []byte) (*model.UserInfo, error) {
	var info model.UserInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, err
	}
	if info.UserID == "" {
		return nil, errors.New("missing user_id")
	}
	return &info, nil
}
