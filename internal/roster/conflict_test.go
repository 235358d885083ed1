package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

func TestFindConflictsOverlappingSameDay(t *testing.T) {
	slots := []domain.TimeSlot{
		validSlot(domain.Monday, "09:00", domain.Monday, "13:00"),
		validSlot(domain.Monday, "12:00", domain.Monday, "17:00"),
	}

	conflicts, err := FindConflicts(slots)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	require.Equal(t, 0, conflicts[0].I)
	require.Equal(t, 1, conflicts[0].J)
	require.Contains(t, conflicts[0].Reason, "周一")
}

func TestFindConflictsTouchingSlots(t *testing.T) {
	// 首尾相接不算冲突
	slots := []domain.TimeSlot{
		validSlot(domain.Monday, "09:00", domain.Monday, "12:00"),
		validSlot(domain.Monday, "12:00", domain.Monday, "17:00"),
	}

	conflicts, err := FindConflicts(slots)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestFindConflictsSymmetric(t *testing.T) {
	a := validSlot(domain.Monday, "09:00", domain.Monday, "13:00")
	b := validSlot(domain.Monday, "12:00", domain.Monday, "17:00")

	forward, err := FindConflicts([]domain.TimeSlot{a, b})
	require.NoError(t, err)
	backward, err := FindConflicts([]domain.TimeSlot{b, a})
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, backward, 1)
}

func TestFindConflictsNoSelfConflict(t *testing.T) {
	slots := []domain.TimeSlot{
		validSlot(domain.Monday, "09:00", domain.Monday, "17:00"),
	}

	conflicts, err := FindConflicts(slots)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestFindConflictsAcrossDays(t *testing.T) {
	// 跨夜时段和次日的时段起始日不同，但在时间环上重叠
	slots := []domain.TimeSlot{
		validSlot(domain.Friday, "22:00", domain.Saturday, "06:00"),
		validSlot(domain.Saturday, "05:00", domain.Saturday, "09:00"),
	}

	conflicts, err := FindConflicts(slots)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
}

func TestFindConflictsWraparound(t *testing.T) {
	// 周六深夜跨入下一周实例的周日凌晨，与周日凌晨的时段重叠
	slots := []domain.TimeSlot{
		validSlot(domain.Saturday, "23:00", domain.Sunday, "02:00"),
		validSlot(domain.Sunday, "01:00", domain.Sunday, "03:00"),
	}

	conflicts, err := FindConflicts(slots)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
}

func TestFindConflictsDisjointDays(t *testing.T) {
	slots := []domain.TimeSlot{
		validSlot(domain.Monday, "09:00", domain.Monday, "17:00"),
		validSlot(domain.Tuesday, "09:00", domain.Tuesday, "17:00"),
		validSlot(domain.Wednesday, "22:00", domain.Thursday, "06:00"),
	}

	conflicts, err := FindConflicts(slots)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestFindConflictsInvalidSlot(t *testing.T) {
	slots := []domain.TimeSlot{
		validSlot(domain.Monday, "09:00", domain.Monday, "17:00"),
		validSlot(domain.Tuesday, "9:00", domain.Tuesday, "17:00"),
	}

	_, err := FindConflicts(slots)

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
}
