package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day returns a date known to fall on the given weekday.
// 2024-03-04 was a Monday.
func day(wd Weekday) time.Time {
	return time.Date(2024, 3, 3+int(wd), 0, 0, 0, 0, time.UTC)
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		selected  []time.Time
		want      []Weekday
		wantErr   error
	}{
		{
			name:      "weekly single day",
			frequency: FrequencyWeekly,
			selected:  []time.Time{day(Wednesday)},
			want:      []Weekday{Wednesday},
		},
		{
			name:      "twice-weekly two days sorted",
			frequency: FrequencyTwiceWeekly,
			selected:  []time.Time{day(Thursday), day(Tuesday)},
			want:      []Weekday{Tuesday, Thursday},
		},
		{
			name:      "weekly with two days",
			frequency: FrequencyWeekly,
			selected:  []time.Time{day(Monday), day(Wednesday)},
			wantErr:   ErrIncompleteSelection,
		},
		{
			name:      "twice-weekly with one day",
			frequency: FrequencyTwiceWeekly,
			selected:  []time.Time{day(Tuesday)},
			wantErr:   ErrIncompleteSelection,
		},
		{
			name:      "twice-weekly same day twice collapses",
			frequency: FrequencyTwiceWeekly,
			selected:  []time.Time{day(Tuesday), day(Tuesday)},
			wantErr:   ErrIncompleteSelection,
		},
		{
			name:      "empty selection",
			frequency: FrequencyWeekly,
			selected:  nil,
			wantErr:   ErrIncompleteSelection,
		},
		{
			name:      "saturday rejected",
			frequency: FrequencyWeekly,
			selected:  []time.Time{day(Saturday)},
			wantErr:   ErrInvalidServiceDay,
		},
		{
			name:      "sunday rejected",
			frequency: FrequencyTwiceWeekly,
			selected:  []time.Time{day(Tuesday), day(Sunday)},
			wantErr:   ErrInvalidServiceDay,
		},
		{
			name:      "unknown frequency",
			frequency: "monthly",
			selected:  []time.Time{day(Monday)},
			wantErr:   ErrInvalidOffering,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSelection(tt.frequency, tt.selected)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "want %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestISOWeekday(t *testing.T) {
	// 2024-03-10 was a Sunday.
	assert.Equal(t, Sunday, ISOWeekday(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Monday, ISOWeekday(time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Friday, ISOWeekday(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)))
}

type stubBooking struct {
	service ServiceType
	created time.Time
	days    []Weekday
}

func (s stubBooking) Service() ServiceType { return s.service }
func (s stubBooking) CreatedOn() time.Time { return s.created }
func (s stubBooking) Weekdays() []Weekday  { return s.days }

func TestScheduledOnRegular(t *testing.T) {
	b := stubBooking{service: ServiceRegular, days: []Weekday{Monday, Wednesday}}

	assert.True(t, ScheduledOn(b, day(Wednesday)))
	assert.True(t, ScheduledOn(b, day(Monday)))
	assert.False(t, ScheduledOn(b, day(Friday)))
	assert.False(t, ScheduledOn(b, day(Saturday)))
}

func TestScheduledOnOneTime(t *testing.T) {
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	b := stubBooking{service: ServiceOneTime, created: created}

	assert.True(t, ScheduledOn(b, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)))
	assert.False(t, ScheduledOn(b, time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)))
	assert.False(t, ScheduledOn(b, time.Date(2024, 3, 4, 8, 0, 0, 0, time.UTC)))
}

func TestDayNames(t *testing.T) {
	assert.Equal(t, "Tuesday, Thursday", DayNames([]Weekday{Tuesday, Thursday}))
	assert.Equal(t, "Monday", DayNames([]Weekday{Monday}))
	assert.Equal(t, "", DayNames(nil))
}
