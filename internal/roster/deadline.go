package roster

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

// DeadlinePolicy 决定某一周的提交截止时刻如何计算。
// 不同公司沿用的截止惯例不同，因此作为配置项由调用方传入
type DeadlinePolicy string

const (
	// DeadlineSaturdayBefore 截止于目标周前一天（周六）的当天结束
	DeadlineSaturdayBefore DeadlinePolicy = "saturday-before"
	// DeadlineNextWednesday 截止于目标周周三的当天结束
	DeadlineNextWednesday DeadlinePolicy = "next-wednesday"
)

func ParseDeadlinePolicy(s string) (DeadlinePolicy, error) {
	switch DeadlinePolicy(s) {
	case DeadlineSaturdayBefore, DeadlineNextWednesday:
		return DeadlinePolicy(s), nil
	}
	return "", fmt.Errorf("未知的提交截止策略: %s", s)
}

func endOfDay(d domain.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, d.Location())
}

// SubmissionDeadline 计算目标周按给定策略得到的提交截止时刻
func SubmissionDeadline(weekStart domain.Date, policy DeadlinePolicy) (time.Time, error) {
	switch policy {
	case DeadlineSaturdayBefore:
		return endOfDay(weekStart.AddDays(-1)), nil
	case DeadlineNextWednesday:
		return endOfDay(weekStart.AddDays(3)), nil
	}
	return time.Time{}, fmt.Errorf("未知的提交截止策略: %s", policy)
}
