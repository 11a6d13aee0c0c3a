package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMidnight(t *testing.T) {
	in := time.Date(2025, time.July, 14, 18, 45, 12, 999, time.UTC)
	assert.Equal(t, date(2025, time.July, 14), Midnight(in))

	// Already at midnight stays unchanged
	assert.Equal(t, date(2025, time.July, 14), Midnight(date(2025, time.July, 14)))
}

func TestAddCalendarMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "simple month",
			start:  date(2025, time.March, 15),
			months: 1,
			want:   date(2025, time.April, 15),
		},
		{
			name:   "clamps to short month",
			start:  date(2025, time.January, 31),
			months: 1,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "clamps to leap february",
			start:  date(2024, time.January, 31),
			months: 1,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "thirty day month",
			start:  date(2025, time.March, 31),
			months: 1,
			want:   date(2025, time.April, 30),
		},
		{
			name:   "crosses year boundary",
			start:  date(2025, time.November, 20),
			months: 3,
			want:   date(2026, time.February, 20),
		},
		{
			name:   "multiple months clamp once at target",
			start:  date(2025, time.December, 31),
			months: 2,
			want:   date(2026, time.February, 28),
		},
		{
			name:   "zero months normalizes to midnight only",
			start:  time.Date(2025, time.June, 10, 13, 30, 0, 0, time.UTC),
			months: 0,
			want:   date(2025, time.June, 10),
		},
		{
			name:   "negative months",
			start:  date(2025, time.March, 31),
			months: -1,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "negative months across year boundary",
			start:  date(2025, time.January, 15),
			months: -2,
			want:   date(2024, time.November, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddCalendarMonths(tt.start, tt.months))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 10, DaysBetween(date(2025, time.July, 1), date(2025, time.July, 11)))
	assert.Equal(t, 0, DaysBetween(date(2025, time.July, 1), date(2025, time.July, 1)))
	assert.Equal(t, -3, DaysBetween(date(2025, time.July, 4), date(2025, time.July, 1)))

	// Time of day is ignored
	a := time.Date(2025, time.July, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, time.July, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(a, b))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Minute, ParseDuration("30m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
	assert.Equal(t, 24*time.Hour, ParseDuration("", 24*time.Hour))
}
