package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

// GetShiftRequirementByDepartmentID 读出某个部门的整份用人需求。
// 部门还没有任何需求记录时返回 sql.ErrNoRows，由调用方决定如何初始化
func (r *Repository) GetShiftRequirementByDepartmentID(departmentID int64) (*domain.ShiftRequirement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, company_id, created_at, version
		FROM shift_requirements
		WHERE department_id = $1
	`

	req := &domain.ShiftRequirement{
		DepartmentID: departmentID,
	}

	dst := []any{&req.ID, &req.CompanyID, &req.CreatedAt, &req.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, departmentID).Scan(dst...); err != nil {
		return nil, err
	}

	query = `
		SELECT day_of_week, position, start_day, start_time, end_day, end_time, shift_type, min_employees
		FROM shift_requirement_slots
		WHERE requirement_id = $1
		ORDER BY day_of_week, position
	`

	rows, err := r.dbpool.QueryContext(ctx, query, req.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perDay := make(map[domain.DayOfWeek][]domain.RequirementSlot, 7)
	for _, day := range domain.AllDays() {
		perDay[day] = []domain.RequirementSlot{}
	}

	for rows.Next() {
		var row struct {
			Day          int32
			Position     int32
			StartDay     int32
			StartTime    string
			EndDay       int32
			EndTime      string
			ShiftType    string
			MinEmployees int32
		}

		dst := []any{&row.Day, &row.Position, &row.StartDay, &row.StartTime, &row.EndDay, &row.EndTime, &row.ShiftType, &row.MinEmployees}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		day := domain.DayOfWeek(row.Day)
		perDay[day] = append(perDay[day], domain.RequirementSlot{
			StartDay:     domain.DayOfWeek(row.StartDay),
			StartTime:    row.StartTime,
			EndDay:       domain.DayOfWeek(row.EndDay),
			EndTime:      row.EndTime,
			ShiftType:    domain.ShiftType(row.ShiftType),
			MinEmployees: row.MinEmployees,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	req.PerDay = perDay
	return req, nil
}

// SaveShiftRequirement 整份保存某个部门的用人需求。
// 需求的每次变更都只动一个时段，但桶很小，整份先删后插要比逐桶维护简单得多
func (r *Repository) SaveShiftRequirement(req *domain.ShiftRequirement) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if req.ID == 0 {
		query := `
			INSERT INTO shift_requirements (company_id, department_id)
			VALUES ($1, $2)
			RETURNING id, created_at, version
		`
		if err := tx.QueryRowContext(ctx, query, req.CompanyID, req.DepartmentID).Scan(&req.ID, &req.CreatedAt, &req.Version); err != nil {
			return err
		}
	} else {
		// 乐观锁：版本不一致说明有并发修改，返回 sql.ErrNoRows 让调用方提示重试
		query := `
			UPDATE shift_requirements
			SET version = version + 1
			WHERE id = $1 AND version = $2
			RETURNING version
		`
		if err := tx.QueryRowContext(ctx, query, req.ID, req.Version).Scan(&req.Version); err != nil {
			return err
		}

		query = `DELETE FROM shift_requirement_slots WHERE requirement_id = $1`
		if _, err := tx.ExecContext(ctx, query, req.ID); err != nil {
			return err
		}
	}

	for _, day := range domain.AllDays() {
		for position, slot := range req.PerDay[day] {
			query := `
				INSERT INTO shift_requirement_slots (requirement_id, day_of_week, position, start_day, start_time, end_day, end_time, shift_type, min_employees)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`
			params := []any{req.ID, int32(day), position, int32(slot.StartDay), slot.StartTime, int32(slot.EndDay), slot.EndTime, string(slot.ShiftType), slot.MinEmployees}
			if _, err := tx.ExecContext(ctx, query, params...); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
