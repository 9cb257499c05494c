package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avasekar/transport-ledger/internal/logger"
	"github.com/avasekar/transport-ledger/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// BalanceCacheRepository caches computed balance snapshots in Redis so
// repeated balance reads do not refetch and recompute the full history.
// Entries are invalidated whenever a transaction of the account mutates.
type BalanceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached snapshots
}

// NewBalanceCacheRepository creates a new repository instance with a TTL
func NewBalanceCacheRepository(client *redis.Client, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func balanceKey(accountID uuid.UUID) string {
	return fmt.Sprintf("balance:%s", accountID)
}

// Get fetches a cached snapshot. A cache miss returns (nil, nil).
func (r *BalanceCacheRepository) Get(ctx context.Context, accountID uuid.UUID) (*models.BalanceSnapshot, error) {
	key := balanceKey(accountID)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow(
		"key", key,
		"result", val,
		"error", err,
	)

	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var snapshot models.BalanceSnapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// Set caches a snapshot with the repository's expiration.
func (r *BalanceCacheRepository) Set(ctx context.Context, accountID uuid.UUID, snapshot models.BalanceSnapshot) error {
	key := balanceKey(accountID)

	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached snapshot for an account.
func (r *BalanceCacheRepository) Invalidate(ctx context.Context, accountID uuid.UUID) error {
	key := balanceKey(accountID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
