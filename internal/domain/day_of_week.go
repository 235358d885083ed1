package domain

import "fmt"

// DayOfWeek 表示一周中的某一天，一周固定以周日为起点
type DayOfWeek int32

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
var dayLabels = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d DayOfWeek) String() string {
	if !d.Valid() {
		return fmt.Sprintf("dayofweek(%d)", int32(d))
	}
	return dayNames[d]
}

// Label 返回用于展示给用户的中文名称
func (d DayOfWeek) Label() string {
	if !d.Valid() {
		return fmt.Sprintf("未知(%d)", int32(d))
	}
	return dayLabels[d]
}

func ParseDayOfWeek(s string) (DayOfWeek, error) {
	for i, name := range dayNames {
		if name == s {
			return DayOfWeek(i), nil
		}
	}
	return 0, fmt.Errorf("无效的星期: %s", s)
}

// 实现 TextMarshaler/TextUnmarshaler，
// 使得 map[DayOfWeek]DaySchedule 在 JSON 中以星期名作为键
func (d DayOfWeek) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("无效的星期: %d", int32(d))
	}
	return []byte(dayNames[d]), nil
}

func (d *DayOfWeek) UnmarshalText(text []byte) error {
	parsed, err := ParseDayOfWeek(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// AllDays 按周日到周六的顺序返回一周的每一天
func AllDays() [7]DayOfWeek {
	return [7]DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}
