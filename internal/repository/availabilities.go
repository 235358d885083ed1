package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

// UpsertWeeklyAvailability 以 (employee_id, week_start_date) 为键保存一周的提交，
// 和模板提交一样采用先删后插的方式，让重复提交表现为覆盖而不是报错
func (r *Repository) UpsertWeeklyAvailability(w *domain.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM weekly_availabilities WHERE employee_id = $1 AND week_start_date = $2`
	if _, err := tx.ExecContext(ctx, query, w.EmployeeID, w.WeekStartDate); err != nil {
		return err
	}

	query = `
		INSERT INTO weekly_availabilities (employee_id, company_id, week_start_date, week_end_date, note, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`
	args := []any{w.EmployeeID, w.CompanyID, w.WeekStartDate, w.WeekEndDate, w.Note, w.IsRecurring}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.CreatedAt, &w.Version); err != nil {
		return err
	}

	for _, day := range domain.AllDays() {
		sched := w.Days[day]

		query = `
			INSERT INTO weekly_availability_days (availability_id, day_of_week, available, note)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		var dayID int64
		if err := tx.QueryRowContext(ctx, query, w.ID, int32(day), sched.Available, sched.Note).Scan(&dayID); err != nil {
			return err
		}

		for position, slot := range sched.Slots {
			query = `
				INSERT INTO weekly_availability_slots (day_id, position, start_day, start_time, end_day, end_time, shift_type, preference)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`
			params := []any{dayID, position, int32(slot.StartDay), slot.StartTime, int32(slot.EndDay), slot.EndTime, string(slot.ShiftType), slot.Preference}
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

// GetWeeklyAvailability 读出某个员工某一周的提交，
// 七天和各天的时间段用 LEFT JOIN 一次查出后再组装
func (r *Repository) GetWeeklyAvailability(employeeID int64, weekStart domain.Date) (*domain.WeeklyAvailability, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, company_id, week_end_date, note, is_recurring, created_at, version
		FROM weekly_availabilities
		WHERE employee_id = $1 AND week_start_date = $2
	`

	w := &domain.WeeklyAvailability{
		EmployeeID:    employeeID,
		WeekStartDate: weekStart,
	}

	dst := []any{&w.ID, &w.CompanyID, &w.WeekEndDate, &w.Note, &w.IsRecurring, &w.CreatedAt, &w.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, employeeID, weekStart).Scan(dst...); err != nil {
		return nil, err
	}

	query = `
		SELECT
			wad.day_of_week,
			wad.available,
			wad.note,
			was.position,
			was.start_day,
			was.start_time,
			was.end_day,
			was.end_time,
			was.shift_type,
			was.preference
		FROM weekly_availability_days wad
		LEFT JOIN weekly_availability_slots was ON wad.id = was.day_id
		WHERE wad.availability_id = $1
		ORDER BY wad.day_of_week, was.position
	`

	rows, err := r.dbpool.QueryContext(ctx, query, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[domain.DayOfWeek]domain.DaySchedule, 7)
	for _, day := range domain.AllDays() {
		days[day] = domain.DaySchedule{Available: false, Slots: []domain.TimeSlot{}}
	}

	for rows.Next() {
		var row struct {
			Day       int32
			Available bool
			Note      string

			Position   sql.NullInt32
			StartDay   sql.NullInt32
			StartTime  sql.NullString
			EndDay     sql.NullInt32
			EndTime    sql.NullString
			ShiftType  sql.NullString
			Preference sql.NullInt32
		}

		dst := []any{
			&row.Day,
			&row.Available,
			&row.Note,
			&row.Position,
			&row.StartDay,
			&row.StartTime,
			&row.EndDay,
			&row.EndTime,
			&row.ShiftType,
			&row.Preference,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		day := domain.DayOfWeek(row.Day)
		sched := days[day]
		sched.Available = row.Available
		sched.Note = row.Note

		// 时段列为空表示这一天没有任何时间段
		if row.StartDay.Valid {
			sched.Slots = append(sched.Slots, domain.TimeSlot{
				StartDay:   domain.DayOfWeek(row.StartDay.Int32),
				StartTime:  row.StartTime.String,
				EndDay:     domain.DayOfWeek(row.EndDay.Int32),
				EndTime:    row.EndTime.String,
				ShiftType:  domain.ShiftType(row.ShiftType.String),
				Preference: row.Preference.Int32,
			})
		}

		days[day] = sched
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	w.Days = days
	return w, nil
}

// SetWeeklyAvailabilityRecurring 更新某一周提交的按周重复标记
func (r *Repository) SetWeeklyAvailabilityRecurring(employeeID int64, weekStart domain.Date, isRecurring bool) error {
	query := `
		UPDATE weekly_availabilities
		SET is_recurring = $1, version = version + 1
		WHERE employee_id = $2 AND week_start_date = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	var version int32
	if err := r.dbpool.QueryRowContext(ctx, query, isRecurring, employeeID, weekStart).Scan(&version); err != nil {
		return err
	}

	return nil
}
