package utils

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLockBusy is returned when a provider's booking lock could not be
// acquired within the retry window.
var ErrLockBusy = errors.New("provider booking lock is held")

// releaseScript deletes the lock only when the stored token matches, so a
// slow holder cannot release a lock that has since expired and been re-taken.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// BookingLock serializes booking writes per provider. Creation re-checks
// availability and inserts while holding the lock, which closes the
// check-then-act window between two concurrent requests for the same provider.
type BookingLock struct {
	Client *redis.Client
	TTL    time.Duration // lock expiry, bounds the damage of a crashed holder
}

// NewBookingLock builds a lock manager with the given expiry.
func NewBookingLock(client *redis.Client, ttl time.Duration) *BookingLock {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &BookingLock{Client: client, TTL: ttl}
}

func lockKey(providerID string) string {
	return "booking-lock:" + providerID
}

// Acquire takes the provider's lock, polling briefly when it is contended.
// It returns an opaque token that must be passed to Release.
func (l *BookingLock) Acquire(ctx context.Context, providerID string) (string, error) {
	token := uuid.New().String()
	for attempt := 0; attempt < 20; attempt++ {
		ok, err := l.Client.SetNX(ctx, lockKey(providerID), token, l.TTL).Result()
		if err != nil {
			return "", err
		}
		if ok {
			return token, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return "", ErrLockBusy
}

// Release frees the provider's lock if it is still held with the given token.
func (l *BookingLock) Release(ctx context.Context, providerID, token string) error {
	return releaseScript.Run(ctx, l.Client, []string{lockKey(providerID)}, token).Err()
}
