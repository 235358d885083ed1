package domain

import "time"

type ShiftType string

const (
	ShiftTypeDay   ShiftType = "day"
	ShiftTypeNight ShiftType = "night"
)

func (s ShiftType) Valid() bool {
	return s == ShiftTypeDay || s == ShiftTypeNight
}

// TimeSlot 表示员工一段连续的空闲时间，
// 起止时间用 "HH:MM" 表示，结束时间允许落在之后的某一天（跨天班次）
type TimeSlot struct {
	StartDay   DayOfWeek `json:"startDay"`
	StartTime  string    `json:"startTime"`
	EndDay     DayOfWeek `json:"endDay"`
	EndTime    string    `json:"endTime"`
	ShiftType  ShiftType `json:"shiftType"`
	Preference int32     `json:"preference"`
}

// RequirementSlot 表示部门在某段时间内的用人需求，
// 和 TimeSlot 形状相同，只是用最少人数代替了偏好值
type RequirementSlot struct {
	StartDay     DayOfWeek `json:"startDay"`
	StartTime    string    `json:"startTime"`
	EndDay       DayOfWeek `json:"endDay"`
	EndTime      string    `json:"endTime"`
	ShiftType    ShiftType `json:"shiftType"`
	MinEmployees int32     `json:"minEmployees"`
}

// TimeSlot 返回需求时段对应的时间段视图，便于复用同一套冲突检测
func (s RequirementSlot) TimeSlot() TimeSlot {
	return TimeSlot{
		StartDay:  s.StartDay,
		StartTime: s.StartTime,
		EndDay:    s.EndDay,
		EndTime:   s.EndTime,
		ShiftType: s.ShiftType,
	}
}

type DaySchedule struct {
	Available bool       `json:"available"`
	Slots     []TimeSlot `json:"slots"`
	Note      string     `json:"note"`
}

// WeeklyAvailability 是员工一周的空闲时间提交，
// 一周固定从周日开始，weekEndDate 恒等于 weekStartDate + 6 天
type WeeklyAvailability struct {
	ID            int64                     `json:"id"`
	EmployeeID    int64                     `json:"employeeID"`
	CompanyID     string                    `json:"companyID"`
	WeekStartDate Date                      `json:"weekStartDate"`
	WeekEndDate   Date                      `json:"weekEndDate"`
	Days          map[DayOfWeek]DaySchedule `json:"days"`
	Note          string                    `json:"note"`
	IsRecurring   bool                      `json:"isRecurring"`
	CreatedAt     time.Time                 `json:"createdAt"`
	Version       int32                     `json:"-"`
}

// ShiftRequirement 是某个部门一周的用人需求，按天分桶，
// 每个桶内的时段由经理逐条增删改
type ShiftRequirement struct {
	ID           int64                           `json:"id"`
	CompanyID    string                          `json:"companyID"`
	DepartmentID int64                           `json:"departmentID"`
	PerDay       map[DayOfWeek][]RequirementSlot `json:"perDay"`
	CreatedAt    time.Time                       `json:"createdAt"`
	Version      int32                           `json:"-"`
}
