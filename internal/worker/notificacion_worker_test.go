package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeRetryBackoff(t *testing.T) {
	casos := []struct {
		retryCount int
		esperado   time.Duration
	}{
		{0, time.Minute}, // floor: treated as the first retry
		{1, time.Minute},
		{2, 2 * time.Minute},
		{3, 4 * time.Minute},
		{4, 8 * time.Minute},
		{5, 16 * time.Minute},
		{6, 30 * time.Minute}, // cap
		{20, 30 * time.Minute},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, computeRetryBackoff(c.retryCount), "retryCount=%d", c.retryCount)
	}
}
