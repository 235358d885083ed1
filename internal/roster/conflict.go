package roster

import (
	"fmt"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

// Conflict 表示下标为 I 和 J 的两个时间段互相重叠（恒有 I < J）
type Conflict struct {
	I      int
	J      int
	Reason string
}

// segments 把环上区间拆成至多两个不跨环的左闭右开子区间
func segments(s Span) [][2]int {
	if s.AbsEnd <= minutesPerWeek {
		return [][2]int{{s.AbsStart, s.AbsEnd}}
	}
	return [][2]int{
		{s.AbsStart, minutesPerWeek},
		{0, s.AbsEnd - minutesPerWeek},
	}
}

func spansIntersect(a Span, b Span) bool {
	for _, sa := range segments(a) {
		for _, sb := range segments(b) {
			if max(sa[0], sb[0]) < min(sa[1], sb[1]) {
				return true
			}
		}
	}
	return false
}

func describeSlot(slot domain.TimeSlot) string {
	if slot.StartDay == slot.EndDay {
		return fmt.Sprintf("%s %s-%s", slot.StartDay.Label(), slot.StartTime, slot.EndTime)
	}
	return fmt.Sprintf("%s %s 至 %s %s", slot.StartDay.Label(), slot.StartTime, slot.EndDay.Label(), slot.EndTime)
}

// FindConflicts 在一周的时间环上两两比较所有时间段，返回每一对互相重叠的组合。
// 比较不局限于起始日相同的时间段，因此跨夜时段与次日时段之间的重叠同样会被检测到。
// 任何一个时间段本身不合法时直接返回对应的错误
func FindConflicts(slots []domain.TimeSlot) ([]Conflict, error) {
	spans := make([]Span, len(slots))
	for i, slot := range slots {
		span, err := ResolveSpan(slot)
		if err != nil {
			return nil, err
		}
		spans[i] = span
	}

	var conflicts []Conflict
	for i := 0; i < len(spans); i++ {
		for j := i + 1; j < len(spans); j++ {
			if spansIntersect(spans[i], spans[j]) {
				conflicts = append(conflicts, Conflict{
					I:      i,
					J:      j,
					Reason: fmt.Sprintf("%s 与 %s 时间重叠", describeSlot(slots[i]), describeSlot(slots[j])),
				})
			}
		}
	}

	return conflicts, nil
}
