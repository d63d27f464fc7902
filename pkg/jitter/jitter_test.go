package jitter

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff(t *testing.T) {
	assert.Equal(t, time.Second, Backoff(time.Second, 30*time.Second, 0))
	assert.Equal(t, 4*time.Second, Backoff(time.Second, 30*time.Second, 2))
	assert.Equal(t, 30*time.Second, Backoff(time.Second, 30*time.Second, 5))
	assert.Equal(t, 30*time.Second, Backoff(time.Second, 30*time.Second, 100))
}

func TestDurationBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		d := DurationWithRand(time.Second, DefaultJitter, rng)
		assert.GreaterOrEqual(t, d, time.Second)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}

	assert.Equal(t, time.Second, Duration(time.Second, 0))
	assert.Equal(t, time.Duration(0), Duration(0, DefaultJitter))
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}
