package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

const challengeCatalogKey = "challenges:catalog"

// ChallengeCacheRepository caches the challenge catalog in Redis
type ChallengeCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached catalog
}

// NewChallengeCacheRepository creates a new cache repository with the given TTL
func NewChallengeCacheRepository(client *redis.Client, expiration time.Duration) *ChallengeCacheRepository {
	return &ChallengeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached catalog or ErrCacheMiss.
func (r *ChallengeCacheRepository) Get(ctx context.Context) ([]models.ChallengeDB, error) {
	val, err := r.client.Get(ctx, challengeCatalogKey).Bytes()
	if err != nil {
		logger.Log.Debugw("cache get", "key", challengeCatalogKey, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var challenges []models.ChallengeDB
	if err := json.Unmarshal(val, &challenges); err != nil {
		logger.Log.Warnw("cache value is corrupted", "key", challengeCatalogKey, "error", err)
		return nil, ErrCacheMiss
	}

	logger.Log.Debugw("cache hit", "key", challengeCatalogKey, "result", len(challenges))
	return challenges, nil
}

// Set stores the catalog with the configured expiration.
func (r *ChallengeCacheRepository) Set(ctx context.Context, challenges []models.ChallengeDB) error {
	data, err := json.Marshal(challenges)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, challengeCatalogKey, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", challengeCatalogKey, "result", len(challenges), "error", err)
	return err
}

// Invalidate drops the cached catalog.
func (r *ChallengeCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, challengeCatalogKey).Err()
	logger.Log.Debugw("cache invalidate", "key", challengeCatalogKey, "error", err)
	return err
}
