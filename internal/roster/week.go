package roster

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

const DefaultMinimumWeeklyHours = 10.0

// 切换某天为空闲时预置的时间段
var defaultSlot = domain.TimeSlot{
	StartTime:  "09:00",
	EndTime:    "17:00",
	ShiftType:  domain.ShiftTypeDay,
	Preference: 5,
}

// NewWeeklyAvailability 创建一周的空白提交，七天全部默认为不空闲。
// 周起始日期不是周日时直接拒绝，不做任何后续校验
func NewWeeklyAvailability(employeeID int64, companyID string, weekStart domain.Date) (*domain.WeeklyAvailability, error) {
	if weekStart.Weekday() != time.Sunday {
		return nil, ErrWeekStartNotSunday
	}

	days := make(map[domain.DayOfWeek]domain.DaySchedule, 7)
	for _, day := range domain.AllDays() {
		days[day] = domain.DaySchedule{Available: false, Slots: []domain.TimeSlot{}}
	}

	return &domain.WeeklyAvailability{
		EmployeeID:    employeeID,
		CompanyID:     companyID,
		WeekStartDate: weekStart,
		WeekEndDate:   weekStart.AddDays(6),
		Days:          days,
	}, nil
}

// validateSlot 校验单个时间段自身的合法性（格式、时长、偏好值范围）
func validateSlot(slot domain.TimeSlot) error {
	if slot.Preference < 0 || slot.Preference > 10 {
		return &RangeError{Field: "preference", Value: slot.Preference, Min: 0, Max: 10}
	}
	if _, err := ResolveSpan(slot); err != nil {
		return err
	}
	return nil
}

// weekSlots 汇总一周内所有空闲天的时间段，其中 day 那天的时间段用 replacement 代替，
// 用于在应用变更之前对整周做冲突检测
func weekSlots(w *domain.WeeklyAvailability, day domain.DayOfWeek, replacement []domain.TimeSlot) []domain.TimeSlot {
	var slots []domain.TimeSlot
	for _, d := range domain.AllDays() {
		if d == day {
			slots = append(slots, replacement...)
			continue
		}
		sched, exists := w.Days[d]
		if !exists || !sched.Available {
			continue
		}
		slots = append(slots, sched.Slots...)
	}
	return slots
}

// allWeekSlots 汇总一周内所有空闲天的时间段
func allWeekSlots(w *domain.WeeklyAvailability) []domain.TimeSlot {
	var slots []domain.TimeSlot
	for _, d := range domain.AllDays() {
		sched, exists := w.Days[d]
		if !exists || !sched.Available {
			continue
		}
		slots = append(slots, sched.Slots...)
	}
	return slots
}

// checkWeekConflicts 对整周的候选时间段做冲突检测，发现冲突时返回第一处
func checkWeekConflicts(w *domain.WeeklyAvailability, day domain.DayOfWeek, replacement []domain.TimeSlot) error {
	conflicts, err := FindConflicts(weekSlots(w, day, replacement))
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &OverlapError{Conflict: conflicts[0]}
	}
	return nil
}

// ToggleDayAvailable 翻转某天的空闲标记。
// 标记为空闲时预置一个默认时间段，取消空闲时清空该天的全部时间段
func ToggleDayAvailable(w *domain.WeeklyAvailability, day domain.DayOfWeek) error {
	if !day.Valid() {
		return &FormatError{Field: "day", Value: day.String()}
	}

	sched := w.Days[day]
	if sched.Available {
		sched.Available = false
		sched.Slots = []domain.TimeSlot{}
		w.Days[day] = sched
		return nil
	}

	seeded := []domain.TimeSlot{defaultSlot}
	seeded[0].StartDay = day
	seeded[0].EndDay = day

	if err := checkWeekConflicts(w, day, seeded); err != nil {
		return err
	}

	sched.Available = true
	sched.Slots = seeded
	w.Days[day] = sched
	return nil
}

// AddSlot 在某天新增一个时间段。校验失败时不会对提交做任何修改。
// 在尚未标记为空闲的一天上新增时间段会同时把这一天标记为空闲
func AddSlot(w *domain.WeeklyAvailability, day domain.DayOfWeek, slot domain.TimeSlot) error {
	if !day.Valid() {
		return &FormatError{Field: "day", Value: day.String()}
	}
	if err := validateSlot(slot); err != nil {
		return err
	}

	sched := w.Days[day]
	candidate := append(append([]domain.TimeSlot{}, sched.Slots...), slot)

	if err := checkWeekConflicts(w, day, candidate); err != nil {
		return err
	}

	sched.Available = true
	sched.Slots = candidate
	w.Days[day] = sched
	return nil
}

// UpdateSlot 替换某天中下标为 idx 的时间段，校验失败时不会对提交做任何修改
func UpdateSlot(w *domain.WeeklyAvailability, day domain.DayOfWeek, idx int, slot domain.TimeSlot) error {
	if !day.Valid() {
		return &FormatError{Field: "day", Value: day.String()}
	}

	sched := w.Days[day]
	if idx < 0 || idx >= len(sched.Slots) {
		return fmt.Errorf("%s 不存在下标为 %d 的时间段", day.Label(), idx)
	}

	if err := validateSlot(slot); err != nil {
		return err
	}

	candidate := append([]domain.TimeSlot{}, sched.Slots...)
	candidate[idx] = slot

	if err := checkWeekConflicts(w, day, candidate); err != nil {
		return err
	}

	sched.Slots = candidate
	w.Days[day] = sched
	return nil
}

// RemoveSlot 删除某天中下标为 idx 的时间段。
// 某天仍标记为空闲时不允许删除它的最后一个时间段，应先取消该天的空闲标记
func RemoveSlot(w *domain.WeeklyAvailability, day domain.DayOfWeek, idx int) error {
	if !day.Valid() {
		return &FormatError{Field: "day", Value: day.String()}
	}

	sched := w.Days[day]
	if idx < 0 || idx >= len(sched.Slots) {
		return fmt.Errorf("%s 不存在下标为 %d 的时间段", day.Label(), idx)
	}
	if sched.Available && len(sched.Slots) == 1 {
		return &MinimumSlotError{Day: day}
	}

	sched.Slots = append(append([]domain.TimeSlot{}, sched.Slots[:idx]...), sched.Slots[idx+1:]...)
	w.Days[day] = sched
	return nil
}

// TotalHours 统计一周内所有空闲天的总空闲小时数。
// 标记为空闲但没有任何时间段的一天按全天 24 小时计
func TotalHours(w *domain.WeeklyAvailability) (float64, error) {
	total := 0.0
	for _, day := range domain.AllDays() {
		sched, exists := w.Days[day]
		if !exists || !sched.Available {
			continue
		}
		if len(sched.Slots) == 0 {
			total += 24
			continue
		}
		for _, slot := range sched.Slots {
			span, err := ResolveSpan(slot)
			if err != nil {
				return 0, err
			}
			total += float64(span.DurationMinutes) / 60
		}
	}
	return total, nil
}

// ValidateForSubmit 在提交前对整周做最终校验，
// 依次检查周起始日期、截止时刻、最低空闲时长和时间段冲突
func ValidateForSubmit(w *domain.WeeklyAvailability, now time.Time, deadline time.Time, minHours float64) error {
	if w.WeekStartDate.Weekday() != time.Sunday {
		return ErrWeekStartNotSunday
	}

	if now.After(deadline) {
		return &DeadlinePassedError{Deadline: deadline}
	}

	hours, err := TotalHours(w)
	if err != nil {
		return err
	}
	if hours < minHours {
		return &BelowMinimumHoursError{Hours: hours, Minimum: minHours}
	}

	conflicts, err := FindConflicts(allWeekSlots(w))
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &OverlapError{Conflict: conflicts[0]}
	}

	return nil
}

// CopyFrom 把 previous 一周的每日安排深拷贝到 w 中作为编辑起点，
// 班次类型缺失的时间段补成白班
func CopyFrom(w *domain.WeeklyAvailability, previous *domain.WeeklyAvailability) {
	days := make(map[domain.DayOfWeek]domain.DaySchedule, 7)
	for _, day := range domain.AllDays() {
		sched, exists := previous.Days[day]
		if !exists {
			days[day] = domain.DaySchedule{Available: false, Slots: []domain.TimeSlot{}}
			continue
		}

		slots := make([]domain.TimeSlot, len(sched.Slots))
		copy(slots, sched.Slots)
		for i := range slots {
			if slots[i].ShiftType == "" {
				slots[i].ShiftType = domain.ShiftTypeDay
			}
		}

		days[day] = domain.DaySchedule{
			Available: sched.Available,
			Slots:     slots,
			Note:      sched.Note,
		}
	}
	w.Days = days
}
