// Package jitter добавляет случайность в интервалы повторов,
// чтобы одновременно упавшие клиенты не приходили обратно одной волной.
package jitter

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter — стандартный коэффициент джиттера (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// Duration возвращает d с джиттером в диапазоне [d, d*(1+factor)].
func Duration(d time.Duration, factor float64) time.Duration {
	randMutex.Lock()
	f := globalRand.Float64()
	randMutex.Unlock()

	return withFraction(d, factor, f)
}

// DurationWithRand — то же, что Duration, но с переданным генератором (детерминированно в тестах).
func DurationWithRand(d time.Duration, factor float64, rng *rand.Rand) time.Duration {
	return withFraction(d, factor, rng.Float64())
}

func withFraction(d time.Duration, factor, f float64) time.Duration {
	if d <= 0 || factor <= 0 {
		return d
	}

	return d + time.Duration(f*factor*float64(d))
}

// Backoff возвращает экспоненциальную задержку base*2^attempt, ограниченную max, без джиттера.
func Backoff(base, max time.Duration, attempt int) time.Duration {
	backoff := base
	for i := 0; i < attempt; i++ {
		backoff *= 2
		if backoff >= max {
			return max
		}
	}

	return backoff
}

// ExponentialBackoff — Backoff с джиттером.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	return Duration(Backoff(base, max, attempt), factor)
}

// Sleep ждёт d или отмены контекста. Возвращает ctx.Err(), если ожидание прервано.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
