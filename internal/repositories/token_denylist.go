package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
)

// TokenDenylistRepository remembers revoked token ids until the tokens expire
type TokenDenylistRepository struct {
	client *redis.Client
}

func NewTokenDenylistRepository(client *redis.Client) *TokenDenylistRepository {
	return &TokenDenylistRepository{client: client}
}

func denylistKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

// Revoke marks the token id as revoked for ttl. Tokens that already expired are ignored.
func (r *TokenDenylistRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	key := denylistKey(tokenID)
	err := r.client.Set(ctx, key, 1, ttl).Err()
	logger.Log.Infow("token revoked", "key", key, "ttl", ttl, "error", err)
	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *TokenDenylistRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, denylistKey(tokenID)).Result()
	if err != nil {
		logger.Log.Errorw("failed to check token denylist", "token_id", tokenID, "error", err)
		return false, err
	}
	return n > 0, nil
}
