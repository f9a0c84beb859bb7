package domain

import (
	"math"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestComputeWorkWeek_AllWeekdays(t *testing.T) {
	// 2024-06-03 понедельник
	want := WorkWeek{
		date(2024, 6, 3), date(2024, 6, 4), date(2024, 6, 5), date(2024, 6, 6), date(2024, 6, 7),
	}

	tests := []struct {
		name string
		now  time.Time
		want WorkWeek
	}{
		{name: "monday", now: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), want: want},
		{name: "tuesday", now: time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC), want: want},
		{name: "wednesday", now: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC), want: want},
		{name: "thursday", now: time.Date(2024, 6, 6, 9, 0, 0, 0, time.UTC), want: want},
		{name: "friday", now: time.Date(2024, 6, 7, 23, 59, 0, 0, time.UTC), want: want},
		{name: "saturday", now: time.Date(2024, 6, 8, 9, 0, 0, 0, time.UTC), want: want},
		{name: "sunday belongs to previous week", now: time.Date(2024, 6, 9, 9, 0, 0, 0, time.UTC), want: want},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, err := ComputeWorkWeek(tt.now, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, week)
			assert.Equal(t, time.Monday, week.Start().In(time.UTC).Weekday())
			assert.Equal(t, time.Friday, week.End().In(time.UTC).Weekday())
		})
	}
}

func TestComputeWorkWeek_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		offset float64
		start  civil.Date
		end    civil.Date
	}{
		{
			name:  "month boundary",
			now:   time.Date(2024, 7, 31, 12, 0, 0, 0, time.UTC),
			start: date(2024, 7, 29),
			end:   date(2024, 8, 2),
		},
		{
			name:  "year boundary",
			now:   time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
			start: date(2024, 12, 30),
			end:   date(2025, 1, 3),
		},
		{
			name:  "leap day",
			now:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
			start: date(2024, 2, 26),
			end:   date(2024, 3, 1),
		},
		{
			// UTC понедельник 01:00, у пользователя UTC-5 еще воскресенье
			name:   "negative local shift",
			now:    time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC),
			offset: 300,
			start:  date(2024, 6, 3),
			end:    date(2024, 6, 7),
		},
		{
			// UTC воскресенье 22:00, в Москве (UTC+3) уже понедельник
			name:   "positive local shift",
			now:    time.Date(2024, 6, 9, 22, 0, 0, 0, time.UTC),
			offset: -180,
			start:  date(2024, 6, 10),
			end:    date(2024, 6, 14),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, err := ComputeWorkWeek(tt.now, tt.offset)
			require.NoError(t, err)
			assert.Equal(t, tt.start, week.Start())
			assert.Equal(t, tt.end, week.End())
			for i := 1; i < WorkWeekDays; i++ {
				assert.Equal(t, week[i-1].AddDays(1), week[i])
			}
		})
	}
}

func TestComputeWorkWeek_InvalidOffset(t *testing.T) {
	now := time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC)

	for _, offset := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1441, -100000} {
		_, err := ComputeWorkWeek(now, offset)
		assert.ErrorIs(t, err, ErrInvalidTZOffset, "offset %v", offset)
	}

	_, err := ComputeWorkWeek(now, 1440)
	assert.NoError(t, err)
}

func TestWorkWeek_Contains(t *testing.T) {
	week, err := ComputeWorkWeek(time.Date(2024, 6, 5, 12, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)

	assert.True(t, week.Contains(date(2024, 6, 3)))
	assert.True(t, week.Contains(date(2024, 6, 7)))
	assert.False(t, week.Contains(date(2024, 6, 2)))
	assert.False(t, week.Contains(date(2024, 6, 8)))
	assert.Equal(t, 2, week.IndexOf(date(2024, 6, 5)))
	assert.Equal(t, -1, week.IndexOf(date(2024, 6, 8)))
	assert.Equal(t, []string{"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06", "2024-06-07"}, week.Strings())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, date(2024, 6, 3), d)

	for _, s := range []string{"", "2024-6-3", "03.06.2024", "2024-02-30", "2024-06-03T00:00:00Z"} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}
