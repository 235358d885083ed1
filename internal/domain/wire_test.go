package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, time.August, 23)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2026-08-23"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.True(t, parsed.Equal(d.Time))
}

func TestDateUnmarshalRejectsBadFormat(t *testing.T) {
	var d Date
	require.Error(t, json.Unmarshal([]byte(`"23/08/2026"`), &d))
	require.Error(t, json.Unmarshal([]byte(`20260823`), &d))
}

func TestParseDayOfWeek(t *testing.T) {
	day, err := ParseDayOfWeek("wednesday")
	require.NoError(t, err)
	require.Equal(t, Wednesday, day)

	_, err = ParseDayOfWeek("周三")
	require.Error(t, err)
}

// 周计划的 JSON 必须以星期名作为键
func TestDayScheduleMapKeys(t *testing.T) {
	days := map[DayOfWeek]DaySchedule{
		Monday: {Available: true, Slots: []TimeSlot{}},
	}

	data, err := json.Marshal(days)
	require.NoError(t, err)
	require.JSONEq(t, `{"monday":{"available":true,"slots":[],"note":""}}`, string(data))

	var parsed map[DayOfWeek]DaySchedule
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.True(t, parsed[Monday].Available)
}

func TestDayOfWeekLabel(t *testing.T) {
	require.Equal(t, "周日", Sunday.Label())
	require.Equal(t, "周六", Saturday.Label())
}
