package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nexuscare/nexuscare/internal/logger"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCacheRepository caches doctor slot lists in Redis so the
// booking form does not hit Postgres on every date change.
type AvailabilityCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached slot lists
}

// NewAvailabilityCacheRepository creates a cache repository with the given TTL.
func NewAvailabilityCacheRepository(client *redis.Client, expiration time.Duration) *AvailabilityCacheRepository {
	return &AvailabilityCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func availabilityKey(doctorID, date string) string {
	return fmt.Sprintf("availability:%s:%s", doctorID, date)
}

// GetAvailability fetches a cached slot list for a doctor and date.
func (r *AvailabilityCacheRepository) GetAvailability(ctx context.Context, doctorID, date string) ([]string, error) {
	key := availabilityKey(doctorID, date)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("availability not cached for %s on %s", doctorID, date)
		}
		return nil, err
	}

	var slots []string
	if err := json.Unmarshal([]byte(val), &slots); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", len(slots),
		"error", nil,
	)

	return slots, nil
}

// SetAvailability caches a slot list with the repository TTL.
func (r *AvailabilityCacheRepository) SetAvailability(ctx context.Context, doctorID, date string, slots []string) error {
	key := availabilityKey(doctorID, date)

	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, string(data), r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"slots", len(slots),
		"result", "ok",
		"error", err,
	)

	return err
}
