package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-movie-lists/internal/logger"
)

// SearchCacheRepository caches raw metadata search payloads in Redis
type SearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached payloads
}

// NewSearchCacheRepository creates a new repository instance with the given TTL
func NewSearchCacheRepository(client *redis.Client, expiration time.Duration) *SearchCacheRepository {
	return &SearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func searchKey(query string) string {
	return "search:" + strings.ToLower(strings.TrimSpace(query))
}

// Get returns the cached payload for query, or nil on a cache miss.
func (r *SearchCacheRepository) Get(ctx context.Context, query string) ([]byte, error) {
	key := searchKey(query)

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return val, nil
}

// Set caches payload for query with the repository expiration
func (r *SearchCacheRepository) Set(ctx context.Context, query string, payload []byte) error {
	key := searchKey(query)
	err := r.client.Set(ctx, key, payload, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"size", len(payload),
		"ttl", r.exp,
		"error", err,
	)

	return err
}
