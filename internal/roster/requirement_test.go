package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

func validRequirementSlot(day domain.DayOfWeek, startTime string, endTime string, minEmployees int32) domain.RequirementSlot {
	return domain.RequirementSlot{
		StartDay:     day,
		StartTime:    startTime,
		EndDay:       day,
		EndTime:      endTime,
		ShiftType:    domain.ShiftTypeDay,
		MinEmployees: minEmployees,
	}
}

func TestAddRequirementSlot(t *testing.T) {
	req := NewShiftRequirement("acme", 1)

	require.NoError(t, AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "09:00", "13:00", 2)))

	require.Len(t, req.PerDay[domain.Monday], 1)
}

func TestAddRequirementSlotRejectsZeroMinEmployees(t *testing.T) {
	req := NewShiftRequirement("acme", 1)

	err := AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "09:00", "13:00", 0))

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, "minEmployees", rangeErr.Field)
	require.Empty(t, req.PerDay[domain.Monday])
}

func TestMinEmployeesCheckedBeforeTimeValidity(t *testing.T) {
	// 时间本身不合法时，最少人数为 0 依然要报 RangeError
	req := NewShiftRequirement("acme", 1)
	slot := validRequirementSlot(domain.Monday, "bad", "13:00", 0)

	err := AddRequirementSlot(req, domain.Monday, slot)

	var rangeErr *RangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestAddRequirementSlotRejectsBucketOverlap(t *testing.T) {
	req := NewShiftRequirement("acme", 1)
	require.NoError(t, AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "09:00", "13:00", 2)))

	err := AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "12:00", "17:00", 3))

	var overlapErr *OverlapError
	require.ErrorAs(t, err, &overlapErr)
	require.Len(t, req.PerDay[domain.Monday], 1)
}

func TestAddRequirementSlotTouchingAllowed(t *testing.T) {
	req := NewShiftRequirement("acme", 1)
	require.NoError(t, AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "09:00", "13:00", 2)))

	require.NoError(t, AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "13:00", "17:00", 3)))

	require.Len(t, req.PerDay[domain.Monday], 2)
}

func TestUpdateRequirementSlot(t *testing.T) {
	req := NewShiftRequirement("acme", 1)
	require.NoError(t, AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "09:00", "13:00", 2)))

	updated := validRequirementSlot(domain.Monday, "10:00", "14:00", 5)
	require.NoError(t, UpdateRequirementSlot(req, domain.Monday, 0, updated))

	require.Equal(t, int32(5), req.PerDay[domain.Monday][0].MinEmployees)
	require.Equal(t, "10:00", req.PerDay[domain.Monday][0].StartTime)
}

func TestUpdateRequirementSlotOutOfRange(t *testing.T) {
	req := NewShiftRequirement("acme", 1)

	err := UpdateRequirementSlot(req, domain.Monday, 0, validRequirementSlot(domain.Monday, "10:00", "14:00", 2))
	require.Error(t, err)
}

func TestRemoveRequirementSlot(t *testing.T) {
	req := NewShiftRequirement("acme", 1)
	require.NoError(t, AddRequirementSlot(req, domain.Monday, validRequirementSlot(domain.Monday, "09:00", "13:00", 2)))

	require.NoError(t, RemoveRequirementSlot(req, domain.Monday, 0))

	require.Empty(t, req.PerDay[domain.Monday])
}

func TestRemoveRequirementSlotOutOfRange(t *testing.T) {
	req := NewShiftRequirement("acme", 1)

	err := RemoveRequirementSlot(req, domain.Monday, 0)
	require.Error(t, err)
}
