package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"25:00", 0, true},
		{"12:60", 0, true},
		{"junk", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClock(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	at := time.Date(2026, 9, 7, 14, 35, 59, 0, time.Local)
	assert.Equal(t, 14*60+35, MinuteOfDay(at))
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2026, 9, 7, 14, 35, 0, 0, time.Local)
	start, end := DayBounds(at)

	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local), start)
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
