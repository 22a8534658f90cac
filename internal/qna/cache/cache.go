// Package cache is the read-through cache in front of the list endpoints.
// Callers recompute on miss and Set the result; every write path to a
// collection Invalidates the whole collection key rather than patching it.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is a backstop only; invalidation on write is what keeps the
// cache coherent with the store.
const DefaultTTL = 5 * time.Minute

const questionListKey = "questions:list"

// Cache is a key-value store for serialized list projections.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key for at most ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate drops the given keys. Missing keys are not an error.
	Invalidate(ctx context.Context, keys ...string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

// QuestionListKey is the cache key for the full question list.
func QuestionListKey() string { return questionListKey }

// AnswerListKey is the cache key for one question's answer list.
func AnswerListKey(questionID string) string {
	return "answers:list:" + questionID
}
