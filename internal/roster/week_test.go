package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

var (
	weekStart = domain.NewDate(2026, time.August, 23) // 周日
	beforeDDL = time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
)

func newTestWeek(t *testing.T) *domain.WeeklyAvailability {
	t.Helper()
	w, err := NewWeeklyAvailability(1, "acme", weekStart)
	require.NoError(t, err)
	return w
}

func TestNewWeeklyAvailabilityRejectsNonSunday(t *testing.T) {
	_, err := NewWeeklyAvailability(1, "acme", domain.NewDate(2026, time.August, 24))
	require.ErrorIs(t, err, ErrWeekStartNotSunday)
}

func TestNewWeeklyAvailabilityWeekBounds(t *testing.T) {
	w := newTestWeek(t)
	require.Equal(t, weekStart.AddDays(6), w.WeekEndDate)
	require.Len(t, w.Days, 7)
	for _, day := range domain.AllDays() {
		require.False(t, w.Days[day].Available)
		require.Empty(t, w.Days[day].Slots)
	}
}

func TestToggleDayAvailableSeedsDefaultSlot(t *testing.T) {
	w := newTestWeek(t)

	require.NoError(t, ToggleDayAvailable(w, domain.Monday))

	sched := w.Days[domain.Monday]
	require.True(t, sched.Available)
	require.Len(t, sched.Slots, 1)
	require.Equal(t, domain.Monday, sched.Slots[0].StartDay)
	require.Equal(t, domain.Monday, sched.Slots[0].EndDay)
}

func TestToggleDayAvailableOffClearsSlots(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, ToggleDayAvailable(w, domain.Monday))

	require.NoError(t, ToggleDayAvailable(w, domain.Monday))

	sched := w.Days[domain.Monday]
	require.False(t, sched.Available)
	require.Empty(t, sched.Slots)
}

func TestAddSlotMarksDayAvailable(t *testing.T) {
	w := newTestWeek(t)

	require.NoError(t, AddSlot(w, domain.Tuesday, validSlot(domain.Tuesday, "09:00", domain.Tuesday, "12:00")))

	sched := w.Days[domain.Tuesday]
	require.True(t, sched.Available)
	require.Len(t, sched.Slots, 1)
}

func TestAddSlotRejectsConflictWithoutMutation(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "13:00")))

	err := AddSlot(w, domain.Monday, validSlot(domain.Monday, "12:00", domain.Monday, "17:00"))

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	require.Len(t, w.Days[domain.Monday].Slots, 1)
}

func TestAddSlotRejectsCrossDayConflict(t *testing.T) {
	// 周五的跨夜时段与周六的时段冲突，起始日不同也要能拒绝
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Friday, validSlot(domain.Friday, "22:00", domain.Saturday, "06:00")))

	err := AddSlot(w, domain.Saturday, validSlot(domain.Saturday, "05:00", domain.Saturday, "09:00"))

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	require.Empty(t, w.Days[domain.Saturday].Slots)
}

func TestAddSlotRejectsBadPreference(t *testing.T) {
	w := newTestWeek(t)
	slot := validSlot(domain.Monday, "09:00", domain.Monday, "12:00")
	slot.Preference = 11

	err := AddSlot(w, domain.Monday, slot)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "preference", rangeErr.Field)
}

func TestUpdateSlot(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "12:00")))

	require.NoError(t, UpdateSlot(w, domain.Monday, 0, validSlot(domain.Monday, "10:00", domain.Monday, "14:00")))

	require.Equal(t, "10:00", w.Days[domain.Monday].Slots[0].StartTime)
}

func TestUpdateSlotOutOfRange(t *testing.T) {
	w := newTestWeek(t)

	err := UpdateSlot(w, domain.Monday, 0, validSlot(domain.Monday, "10:00", domain.Monday, "14:00"))
	require.Error(t, err)
}

func TestUpdateSlotDoesNotConflictWithItself(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "12:00")))

	// 更新后的时段与更新前的自己重叠，但不应视为冲突
	require.NoError(t, UpdateSlot(w, domain.Monday, 0, validSlot(domain.Monday, "09:30", domain.Monday, "12:30")))
}

func TestRemoveSlot(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "12:00")))
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "13:00", domain.Monday, "17:00")))

	require.NoError(t, RemoveSlot(w, domain.Monday, 0))

	require.Len(t, w.Days[domain.Monday].Slots, 1)
	require.Equal(t, "13:00", w.Days[domain.Monday].Slots[0].StartTime)
}

func TestRemoveLastSlotOfAvailableDay(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "12:00")))

	err := RemoveSlot(w, domain.Monday, 0)

	var minimumErr *MinimumSlotError
	require.ErrorAs(t, err, &minimumErr)
	require.Equal(t, domain.Monday, minimumErr.Day)
	require.Len(t, w.Days[domain.Monday].Slots, 1)
}

func TestTotalHours(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "17:00")))
	require.NoError(t, AddSlot(w, domain.Friday, validSlot(domain.Friday, "22:00", domain.Saturday, "06:00")))

	hours, err := TotalHours(w)
	require.NoError(t, err)
	require.InDelta(t, 16, hours, 1e-9)
}

func TestTotalHoursAllDayConvention(t *testing.T) {
	// 标记为空闲但没有任何时间段的一天按全天 24 小时计
	w := newTestWeek(t)
	w.Days[domain.Sunday] = domain.DaySchedule{Available: true, Slots: []domain.TimeSlot{}}

	hours, err := TotalHours(w)
	require.NoError(t, err)
	require.InDelta(t, 24, hours, 1e-9)
}

func TestValidateForSubmitBelowMinimumHours(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "09:00", domain.Monday, "17:00")))

	err := ValidateForSubmit(w, beforeDDL, endOfDay(weekStart.AddDays(-1)), DefaultMinimumWeeklyHours)

	var hoursErr *BelowMinimumHoursError
	require.ErrorAs(t, err, &hoursErr)
	require.InDelta(t, 8, hoursErr.Hours, 1e-9)
}

func TestValidateForSubmitExactMinimumHours(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "08:00", domain.Monday, "18:00")))

	err := ValidateForSubmit(w, beforeDDL, endOfDay(weekStart.AddDays(-1)), DefaultMinimumWeeklyHours)
	require.NoError(t, err)
}

func TestValidateForSubmitDeadlinePassed(t *testing.T) {
	w := newTestWeek(t)
	require.NoError(t, AddSlot(w, domain.Monday, validSlot(domain.Monday, "08:00", domain.Monday, "18:00")))

	deadline := endOfDay(weekStart.AddDays(-1))
	err := ValidateForSubmit(w, deadline.Add(time.Minute), deadline, DefaultMinimumWeeklyHours)

	var deadlineErr *DeadlinePassedError
	require.ErrorAs(t, err, &deadlineErr)
	require.Equal(t, deadline, deadlineErr.Deadline)
}

func TestValidateForSubmitRejectsNonSundayBeforeSlotChecks(t *testing.T) {
	w := newTestWeek(t)
	w.WeekStartDate = domain.NewDate(2026, time.August, 24)
	// 故意放一个非法时间段，确认周起始日期检查先于时间段检查
	w.Days[domain.Monday] = domain.DaySchedule{
		Available: true,
		Slots:     []domain.TimeSlot{validSlot(domain.Monday, "bad", domain.Monday, "17:00")},
	}

	err := ValidateForSubmit(w, beforeDDL, endOfDay(weekStart.AddDays(-1)), DefaultMinimumWeeklyHours)
	require.ErrorIs(t, err, ErrWeekStartNotSunday)
}

func TestValidateForSubmitDetectsOverlap(t *testing.T) {
	w := newTestWeek(t)
	// 绕过逐次变更校验，直接构造出互相重叠的一周
	w.Days[domain.Monday] = domain.DaySchedule{
		Available: true,
		Slots: []domain.TimeSlot{
			validSlot(domain.Monday, "09:00", domain.Monday, "13:00"),
			validSlot(domain.Monday, "12:00", domain.Monday, "23:00"),
		},
	}

	err := ValidateForSubmit(w, beforeDDL, endOfDay(weekStart.AddDays(-1)), DefaultMinimumWeeklyHours)

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
}

func TestCopyFromDefaultsShiftType(t *testing.T) {
	prev := newTestWeek(t)
	prev.Days[domain.Monday] = domain.DaySchedule{
		Available: true,
		Slots: []domain.TimeSlot{
			{StartDay: domain.Monday, StartTime: "09:00", EndDay: domain.Monday, EndTime: "17:00"},
		},
	}

	w := newTestWeek(t)
	CopyFrom(w, prev)

	require.Equal(t, domain.ShiftTypeDay, w.Days[domain.Monday].Slots[0].ShiftType)
	// 深拷贝，修改副本不影响原周
	w.Days[domain.Monday].Slots[0].StartTime = "10:00"
	require.Equal(t, "09:00", prev.Days[domain.Monday].Slots[0].StartTime)
}
