package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Both collectors must satisfy the interface the booking flow depends on.
var (
	_ PaymentCollector = (*PayPalCollector)(nil)
	_ PaymentCollector = DisabledCollector{}
)

func TestDisabledCollectorAlwaysFails(t *testing.T) {
	c := DisabledCollector{}

	_, err := c.VerifyOneTime(context.Background(), "order-1")
	assert.Error(t, err)

	_, err = c.VerifySubscription(context.Background(), "sub-1")
	assert.Error(t, err)
}

func TestNewPayPalCollector(t *testing.T) {
	collector, err := NewPayPalCollector(zap.NewNop(), "client-id", "secret", false)
	require.NoError(t, err)
	assert.NotNil(t, collector)
}
