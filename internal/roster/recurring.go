package roster

import (
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

// CloneWeek 以 source 为模板生成目标周的空闲时间提交，作为员工编辑新一周的起点。
// 每日安排深拷贝，isRecurring 原样保留，周起止日期换成目标周的
func CloneWeek(source *domain.WeeklyAvailability, targetWeekStart domain.Date) (*domain.WeeklyAvailability, error) {
	if targetWeekStart.Weekday() != time.Sunday {
		return nil, ErrWeekStartNotSunday
	}

	w := &domain.WeeklyAvailability{
		EmployeeID:    source.EmployeeID,
		CompanyID:     source.CompanyID,
		WeekStartDate: targetWeekStart,
		WeekEndDate:   targetWeekStart.AddDays(6),
		Note:          source.Note,
		IsRecurring:   source.IsRecurring,
	}
	CopyFrom(w, source)

	return w, nil
}

// StopRecurring 只表达“停止按周重复”的意图，
// 对已经持久化的后续周的影响由存储层负责
func StopRecurring(w *domain.WeeklyAvailability) {
	w.IsRecurring = false
}
