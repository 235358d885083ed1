package roster

import (
	"fmt"
	"math"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

// NewShiftRequirement 创建某个部门的空白用人需求，七天的需求桶均为空
func NewShiftRequirement(companyID string, departmentID int64) *domain.ShiftRequirement {
	perDay := make(map[domain.DayOfWeek][]domain.RequirementSlot, 7)
	for _, day := range domain.AllDays() {
		perDay[day] = []domain.RequirementSlot{}
	}
	return &domain.ShiftRequirement{
		CompanyID:    companyID,
		DepartmentID: departmentID,
		PerDay:       perDay,
	}
}

// validateRequirementSlot 校验单个需求时段自身的合法性，
// 最少人数的下界检查独立于时间合法性检查
func validateRequirementSlot(slot domain.RequirementSlot) error {
	if slot.MinEmployees < 1 {
		return &RangeError{Field: "minEmployees", Value: slot.MinEmployees, Min: 1, Max: math.MaxInt32}
	}
	if _, err := ResolveSpan(slot.TimeSlot()); err != nil {
		return err
	}
	return nil
}

// checkBucketConflicts 对某一天需求桶内的候选时段做冲突检测，
// 复用员工空闲时间所用的同一套环上冲突检测
func checkBucketConflicts(candidate []domain.RequirementSlot) error {
	slots := make([]domain.TimeSlot, len(candidate))
	for i, s := range candidate {
		slots[i] = s.TimeSlot()
	}

	conflicts, err := FindConflicts(slots)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		return &OverlapError{Conflict: conflicts[0]}
	}
	return nil
}

// AddRequirementSlot 在某一天的需求桶中新增一个时段，校验失败时不做任何修改
func AddRequirementSlot(req *domain.ShiftRequirement, day domain.DayOfWeek, slot domain.RequirementSlot) error {
	if !day.Valid() {
		return &FormatError{Field: "day", Value: day.String()}
	}
	if err := validateRequirementSlot(slot); err != nil {
		return err
	}

	candidate := append(append([]domain.RequirementSlot{}, req.PerDay[day]...), slot)
	if err := checkBucketConflicts(candidate); err != nil {
		return err
	}

	req.PerDay[day] = candidate
	return nil
}

// UpdateRequirementSlot 替换某一天需求桶中下标为 idx 的时段，校验失败时不做任何修改
func UpdateRequirementSlot(req *domain.ShiftRequirement, day domain.DayOfWeek, idx int, slot domain.RequirementSlot) error {
	if !day.Valid() {
		return &FormatError{Field: "day", Value: day.String()}
	}

	bucket := req.PerDay[day]
	if idx < 0 || idx >= len(bucket) {
		return fmt.Errorf("%s 不存在下标为 %d 的需求时段", day.Label(), idx)
	}

	if err := validateRequirementSlot(slot); err != nil {
		return err
	}

	candidate := append([]domain.RequirementSlot{}, bucket...)
	candidate[idx] = slot

	if err := checkBucketConflicts(candidate); err != nil {
		return err
	}

	req.PerDay[day] = candidate
	return nil
}

// RemoveRequirementSlot 删除某一天需求桶中下标为 idx 的时段
func RemoveRequirementSlot(req *domain.ShiftRequirement, day domain.DayOfWeek, idx int) error {
	if !day.Valid() {
		return &FormatError{Field: "day", Value: day.String()}
	}

	bucket := req.PerDay[day]
	if idx < 0 || idx >= len(bucket) {
		return fmt.Errorf("%s 不存在下标为 %d 的需求时段", day.Label(), idx)
	}

	req.PerDay[day] = append(append([]domain.RequirementSlot{}, bucket[:idx]...), bucket[idx+1:]...)
	return nil
}
