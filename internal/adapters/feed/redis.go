package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"fairtix/internal/domain"
)

// DefaultKey is the Redis list that receives ledger entries.
const DefaultKey = "fairtix:ledger"

// RedisConfig holds connection settings for the ledger feed.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	MaxLen   int64
}

// RedisPublisher pushes every ledger entry as JSON onto a Redis list so that
// other processes can follow the marketplace. When MaxLen is set the list is
// trimmed to the newest MaxLen entries.
type RedisPublisher struct {
	client *redis.Client
	key    string
	maxLen int64
}

// NewRedisClient connects to Redis and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewRedisPublisher returns a LedgerSink writing to key on client.
func NewRedisPublisher(client *redis.Client, key string, maxLen int64) *RedisPublisher {
	if key == "" {
		key = DefaultKey
	}
	return &RedisPublisher{client: client, key: key, maxLen: maxLen}
}

func (p *RedisPublisher) Publish(ctx context.Context, entry domain.LedgerEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode ledger entry %d: %w", entry.Seq, err)
	}
	if err := p.client.RPush(ctx, p.key, string(payload)).Err(); err != nil {
		return fmt.Errorf("push ledger entry %d: %w", entry.Seq, err)
	}
	if p.maxLen > 0 {
		if err := p.client.LTrim(ctx, p.key, -p.maxLen, -1).Err(); err != nil {
			return fmt.Errorf("trim ledger feed: %w", err)
		}
	}
	return nil
}
