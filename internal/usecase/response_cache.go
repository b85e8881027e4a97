package usecase

import (
	"context"
	"time"
)

// ResponseCache stores computed responses as JSON. Implementations degrade to
// a miss when the backing store is unavailable.
type ResponseCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
