package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

func validSlot(startDay domain.DayOfWeek, startTime string, endDay domain.DayOfWeek, endTime string) domain.TimeSlot {
	return domain.TimeSlot{
		StartDay:   startDay,
		StartTime:  startTime,
		EndDay:     endDay,
		EndTime:    endTime,
		ShiftType:  domain.ShiftTypeDay,
		Preference: 5,
	}
}

func TestResolveSpanSameDay(t *testing.T) {
	span, err := ResolveSpan(validSlot(domain.Monday, "09:00", domain.Monday, "17:00"))
	require.NoError(t, err)
	require.Equal(t, 480, span.DurationMinutes)
	require.Equal(t, 1*minutesPerDay+9*60, span.AbsStart)
	require.Equal(t, 1*minutesPerDay+17*60, span.AbsEnd)
}

func TestResolveSpanOvernight(t *testing.T) {
	span, err := ResolveSpan(validSlot(domain.Friday, "22:00", domain.Saturday, "06:00"))
	require.NoError(t, err)
	require.Equal(t, 480, span.DurationMinutes)
}

func TestResolveSpanWrapsIntoNextWeek(t *testing.T) {
	// 周六深夜跨入下一周的周日凌晨
	span, err := ResolveSpan(validSlot(domain.Saturday, "23:00", domain.Sunday, "02:00"))
	require.NoError(t, err)
	require.Equal(t, 180, span.DurationMinutes)
	require.Greater(t, span.AbsEnd, minutesPerWeek)
}

func TestResolveSpanAlwaysPositiveDuration(t *testing.T) {
	cases := []domain.TimeSlot{
		validSlot(domain.Sunday, "00:00", domain.Sunday, "00:01"),
		validSlot(domain.Wednesday, "12:00", domain.Tuesday, "12:00"), // 几乎绕完整整一周
		validSlot(domain.Saturday, "23:59", domain.Sunday, "00:00"),
	}
	for _, slot := range cases {
		span, err := ResolveSpan(slot)
		require.NoError(t, err)
		require.Positive(t, span.DurationMinutes)
		require.Less(t, span.DurationMinutes, minutesPerWeek)
	}
}

func TestResolveSpanDegenerate(t *testing.T) {
	_, err := ResolveSpan(validSlot(domain.Monday, "09:00", domain.Monday, "09:00"))

	var degenerateErr *DegenerateSlotError
	require.ErrorAs(t, err, &degenerateErr)
	require.Equal(t, domain.Monday, degenerateErr.Day)
}

func TestResolveSpanMalformedTime(t *testing.T) {
	cases := []struct {
		name string
		slot domain.TimeSlot
	}{
		{"缺少前导零", validSlot(domain.Monday, "9:00", domain.Monday, "17:00")},
		{"小时越界", validSlot(domain.Monday, "09:00", domain.Monday, "24:00")},
		{"分钟越界", validSlot(domain.Monday, "09:61", domain.Monday, "17:00")},
		{"非时间字符串", validSlot(domain.Monday, "早上九点", domain.Monday, "17:00")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveSpan(tc.slot)

			var formatErr *FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestResolveSpanInvalidShiftType(t *testing.T) {
	slot := validSlot(domain.Monday, "09:00", domain.Monday, "17:00")
	slot.ShiftType = "graveyard"

	_, err := ResolveSpan(slot)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "shiftType", formatErr.Field)
}

func TestResolveSpanInvalidDay(t *testing.T) {
	slot := validSlot(domain.Monday, "09:00", domain.Monday, "17:00")
	slot.EndDay = 7

	_, err := ResolveSpan(slot)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "endDay", formatErr.Field)
}
