package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

func Test_ToMilliseconds_RoundsToThreeDecimalPlaces(t *testing.T) {
	assert.Equal(t, 1.235, pricing.ToMilliseconds(1234567*time.Nanosecond))
	assert.Equal(t, 0.001, pricing.ToMilliseconds(999*time.Nanosecond))
	assert.Equal(t, 2.0, pricing.ToMilliseconds(2*time.Millisecond))
	assert.Equal(t, 0.0, pricing.ToMilliseconds(0))
}
