package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/freaksearch-chat/internal/logger"
)

// ErrIntentNotCached is returned when no prediction is cached for a message.
var ErrIntentNotCached = errors.New("intent not cached")

// IntentCacheRepository caches predicted intents per message text using Redis.
// Keys are scoped by the model version so replaced artifacts never read
// labels predicted by an older model.
type IntentCacheRepository struct {
	client  *redis.Client
	exp     time.Duration
	version string
}

// NewIntentCacheRepository creates a new repository; entries expire after expiration.
func NewIntentCacheRepository(client *redis.Client, expiration time.Duration, modelVersion string) *IntentCacheRepository {
	return &IntentCacheRepository{
		client:  client,
		exp:     expiration,
		version: modelVersion,
	}
}

// Get returns the cached intent label for message.
func (r *IntentCacheRepository) Get(ctx context.Context, message string) (string, error) {
	key := intentKey(r.version, message)

	val, err := r.client.Get(ctx, key).Result()
	logger.FromContext(ctx).Debugw("cache get",
		"key", key,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return "", ErrIntentNotCached
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set caches label as the intent of message.
func (r *IntentCacheRepository) Set(ctx context.Context, message, label string) error {
	key := intentKey(r.version, message)
	err := r.client.Set(ctx, key, label, r.exp).Err()

	logger.FromContext(ctx).Debugw("cache set",
		"key", key,
		"label", label,
		"error", err,
	)

	return err
}

func intentKey(version, message string) string {
	sum := sha256.Sum256([]byte(message))
	return "intent:" + version + ":" + hex.EncodeToString(sum[:])
}
