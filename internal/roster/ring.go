package roster

import (
	"regexp"
	"strconv"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

const (
	minutesPerDay  = 24 * 60
	minutesPerWeek = 7 * minutesPerDay
)

// Span 是把一个时间段放到以分钟计的一周时间环上得到的绝对区间，
// 区间为左闭右开，AbsEnd 大于一周总分钟数表示该时间段跨入下一周实例
type Span struct {
	AbsStart        int
	AbsEnd          int
	DurationMinutes int
}

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

func minutesOfDay(field string, value string) (int, error) {
	if !timePattern.MatchString(value) {
		return 0, &FormatError{Field: field, Value: value}
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, &FormatError{Field: field, Value: value}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ResolveSpan 把 (startDay, startTime, endDay, endTime) 归一化为一周时间环上的区间。
// 同一天内、跨夜、跨多天这几种情况都由同一套环上算术处理：
// 结束位置不晚于开始位置时，认为时间段跨入下一周实例
func ResolveSpan(slot domain.TimeSlot) (Span, error) {
	if !slot.StartDay.Valid() {
		return Span{}, &FormatError{Field: "startDay", Value: strconv.Itoa(int(slot.StartDay))}
	}
	if !slot.EndDay.Valid() {
		return Span{}, &FormatError{Field: "endDay", Value: strconv.Itoa(int(slot.EndDay))}
	}
	if !slot.ShiftType.Valid() {
		return Span{}, &FormatError{Field: "shiftType", Value: string(slot.ShiftType)}
	}

	startMinute, err := minutesOfDay("startTime", slot.StartTime)
	if err != nil {
		return Span{}, err
	}
	endMinute, err := minutesOfDay("endTime", slot.EndTime)
	if err != nil {
		return Span{}, err
	}

	absStart := int(slot.StartDay)*minutesPerDay + startMinute
	absEnd := int(slot.EndDay)*minutesPerDay + endMinute

	if absEnd == absStart {
		return Span{}, &DegenerateSlotError{Day: slot.StartDay, Time: slot.StartTime}
	}
	if absEnd < absStart {
		absEnd += minutesPerWeek
	}

	return Span{
		AbsStart:        absStart,
		AbsEnd:          absEnd,
		DurationMinutes: absEnd - absStart,
	}, nil
}
