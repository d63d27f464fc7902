package shoecard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsNewRelease(t *testing.T) {
	tests := []struct {
		name    string
		release time.Time
		want    bool
	}{
		{"right now", now, true},
		{"yesterday", now.Add(-24 * time.Hour), true},
		{"exactly one window ago", now.Add(-RecencyWindow), true},
		{"one second past the window", now.Add(-RecencyWindow - time.Second), false},
		{"one second in the future", now.Add(time.Second), false},
		{"two years ago", now.AddDate(-2, 0, 0), false},
		{"zero time", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNewRelease(tt.release, now))
		})
	}
}

func TestIsNewReleaseIgnoresLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	release := now.Add(-RecencyWindow).In(tokyo)

	assert.True(t, IsNewRelease(release, now))
}
