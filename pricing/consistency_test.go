package pricing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/pricing-calculators-go/pricing"
)

func Test_GetConsistencyLevel_DefaultsToStrong(t *testing.T) {
	assert.Equal(t, pricing.StrongConsistency, pricing.GetConsistencyLevel(context.Background()))
}

func Test_GetConsistencyLevel_ReturnsLevelFromContext(t *testing.T) {
	ctx := pricing.WithEventualConsistency(context.Background())
	assert.Equal(t, pricing.EventualConsistency, pricing.GetConsistencyLevel(ctx))

	ctx = pricing.WithStrongConsistency(ctx)
	assert.Equal(t, pricing.StrongConsistency, pricing.GetConsistencyLevel(ctx))
}

func Test_ConsistencyLevel_String(t *testing.T) {
	assert.Equal(t, "strong", pricing.StrongConsistency.String())
	assert.Equal(t, "eventual", pricing.EventualConsistency.String())
	assert.Equal(t, "unknown", pricing.ConsistencyLevel(42).String())
}
