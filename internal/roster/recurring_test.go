package roster

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

func TestCloneWeek(t *testing.T) {
	source := newTestWeek(t)
	source.IsRecurring = true
	source.Note = "下午尽量不要排我"
	require.NoError(t, AddSlot(source, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "17:00")))
	require.NoError(t, AddSlot(source, domain.Friday, validSlot(domain.Friday, "22:00", domain.Saturday, "06:00")))

	target := weekStart.AddDays(7)
	clone, err := CloneWeek(source, target)
	require.NoError(t, err)

	require.Equal(t, target, clone.WeekStartDate)
	require.Equal(t, target.AddDays(6), clone.WeekEndDate)
	require.True(t, clone.IsRecurring)
	require.Equal(t, source.Note, clone.Note)

	// 每日安排序列化后应与原周逐字节一致
	sourceJSON, err := json.Marshal(source.Days)
	require.NoError(t, err)
	cloneJSON, err := json.Marshal(clone.Days)
	require.NoError(t, err)
	require.Equal(t, sourceJSON, cloneJSON)
}

func TestCloneWeekRejectsNonSundayTarget(t *testing.T) {
	source := newTestWeek(t)

	_, err := CloneWeek(source, domain.NewDate(2026, time.August, 31)) // 周一
	require.ErrorIs(t, err, ErrWeekStartNotSunday)
}

func TestCloneWeekIsDeepCopy(t *testing.T) {
	source := newTestWeek(t)
	require.NoError(t, AddSlot(source, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "17:00")))

	clone, err := CloneWeek(source, weekStart.AddDays(7))
	require.NoError(t, err)

	clone.Days[domain.Monday].Slots[0].StartTime = "10:00"
	require.Equal(t, "09:00", source.Days[domain.Monday].Slots[0].StartTime)
}

func TestStopRecurring(t *testing.T) {
	w := newTestWeek(t)
	w.IsRecurring = true

	StopRecurring(w)
	require.False(t, w.IsRecurring)

	// 幂等
	StopRecurring(w)
	require.False(t, w.IsRecurring)
}
