package shoecard

import "time"

// RecencyWindow — сколько товар считается новинкой после релиза.
const RecencyWindow = 30 * 24 * time.Hour

// IsNewRelease сообщает, попадает ли дата релиза в окно [now-RecencyWindow, now].
// Обе границы включительно. Будущие релизы и нулевая дата новинками не считаются.
func IsNewRelease(releaseDate, now time.Time) bool {
	if releaseDate.IsZero() || releaseDate.After(now) {
		return false
	}

	return !releaseDate.Before(now.Add(-RecencyWindow))
}
