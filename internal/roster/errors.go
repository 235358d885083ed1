package roster

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

var ErrWeekStartNotSunday = errors.New("周起始日期必须为周日")

// FormatError 表示时间字符串或枚举值不符合要求的格式
type FormatError struct {
	Field string
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s 的格式不合法: %q", e.Field, e.Value)
}

// DegenerateSlotError 表示起止完全相同、时长为零的时间段
type DegenerateSlotError struct {
	Day  domain.DayOfWeek
	Time string
}

func (e *DegenerateSlotError) Error() string {
	return fmt.Sprintf("%s %s 的时间段时长为零", e.Day.Label(), e.Time)
}

// RangeError 表示数值超出允许的范围，
// Max 为 math.MaxInt32 时表示只有下界
type RangeError struct {
	Field string
	Value int32
	Min   int32
	Max   int32
}

func (e *RangeError) Error() string {
	if e.Max == math.MaxInt32 {
		return fmt.Sprintf("%s 不能小于 %d，当前为 %d", e.Field, e.Min, e.Value)
	}
	return fmt.Sprintf("%s 必须在 %d 到 %d 之间，当前为 %d", e.Field, e.Min, e.Max, e.Value)
}

// OverlapError 表示同一周内存在互相重叠的时间段，携带检测到的第一处冲突
type OverlapError struct {
	Conflict Conflict
}

func (e *OverlapError) Error() string {
	return e.Conflict.Reason
}

// MinimumSlotError 表示删除时间段后会让标记为空闲的一天不再有任何时间段
type MinimumSlotError struct {
	Day domain.DayOfWeek
}

func (e *MinimumSlotError) Error() string {
	return fmt.Sprintf("%s 已标记为空闲，至少需要保留一个时间段", e.Day.Label())
}

// BelowMinimumHoursError 只在提交校验时产生，表示整周空闲时长不足
type BelowMinimumHoursError struct {
	Hours   float64
	Minimum float64
}

func (e *BelowMinimumHoursError) Error() string {
	return fmt.Sprintf("每周空闲时长不能少于 %.1f 小时，当前为 %.1f 小时", e.Minimum, e.Hours)
}

// DeadlinePassedError 只在提交校验时产生，表示已过提交截止时刻
type DeadlinePassedError struct {
	Deadline time.Time
}

func (e *DeadlinePassedError) Error() string {
	return fmt.Sprintf("已过提交截止时间 %s", e.Deadline.Format("2006-01-02 15:04:05"))
}
