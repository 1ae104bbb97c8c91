package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceTable(t *testing.T) {
	tests := []struct {
		name      string
		service   ServiceType
		dogs      int
		frequency Frequency
		want      int
	}{
		{"one-time 1 dog", ServiceOneTime, 1, "", 150},
		{"one-time 2 dogs", ServiceOneTime, 2, "", 150},
		{"one-time 3 dogs", ServiceOneTime, 3, "", 150},
		{"one-time ignores frequency", ServiceOneTime, 2, FrequencyWeekly, 150},
		{"weekly 1 dog", ServiceRegular, 1, FrequencyWeekly, 80},
		{"weekly 2 dogs", ServiceRegular, 2, FrequencyWeekly, 100},
		{"weekly 3 dogs", ServiceRegular, 3, FrequencyWeekly, 120},
		{"twice-weekly 1 dog", ServiceRegular, 1, FrequencyTwiceWeekly, 100},
		{"twice-weekly 2 dogs", ServiceRegular, 2, FrequencyTwiceWeekly, 120},
		{"twice-weekly 3 dogs", ServiceRegular, 3, FrequencyTwiceWeekly, 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Price(tt.service, tt.dogs, tt.frequency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriceDeterministic(t *testing.T) {
	a, err := Price(ServiceRegular, 2, FrequencyTwiceWeekly)
	require.NoError(t, err)
	b, err := Price(ServiceRegular, 2, FrequencyTwiceWeekly)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPriceInvalidOffering(t *testing.T) {
	tests := []struct {
		name      string
		service   ServiceType
		dogs      int
		frequency Frequency
	}{
		{"zero dogs", ServiceRegular, 0, FrequencyWeekly},
		{"four dogs", ServiceRegular, 4, FrequencyWeekly},
		{"negative dogs", ServiceOneTime, -1, ""},
		{"regular without frequency", ServiceRegular, 2, ""},
		{"regular with bogus frequency", ServiceRegular, 2, "biweekly"},
		{"unknown service type", "premium", 1, FrequencyWeekly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Price(tt.service, tt.dogs, tt.frequency)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOffering), "want ErrInvalidOffering, got %v", err)
		})
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Twice Weekly Service (2 Dogs)", Summary(ServiceRegular, FrequencyTwiceWeekly, 2))
	assert.Equal(t, "Weekly Service (3 Dogs)", Summary(ServiceRegular, FrequencyWeekly, 3))
	assert.Equal(t, "One-Time Yard Clean-Up (1 Dog)", Summary(ServiceOneTime, "", 1))
}

func TestPriceLabel(t *testing.T) {
	assert.Equal(t, "$150", PriceLabel(ServiceOneTime, 150))
	assert.Equal(t, "$100/month", PriceLabel(ServiceRegular, 100))
}
