// AngelaMos | 2026
// database_test.go

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJitteredDuration(t *testing.T) {
	for _, base := range []time.Duration{0, -time.Second, time.Nanosecond, 6 * time.Nanosecond} {
		assert.NotPanics(t, func() {
			assert.Equal(t, base, jitteredDuration(base))
		}, base.String())
	}

	for range 50 {
		got := jitteredDuration(time.Hour)
		assert.GreaterOrEqual(t, got, time.Hour)
		assert.Less(t, got, time.Hour+time.Hour/7)
	}
}
