package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

func (r *Repository) CreateLeaveRequest(lr *domain.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (user_id, type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{lr.UserID, lr.Type, lr.StartDate, lr.EndDate, lr.Reason, lr.Status}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&lr.ID, &lr.CreatedAt, &lr.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetLeaveRequestByID(id int64) (*domain.LeaveRequest, error) {
	query := `
		SELECT user_id, type, start_date, end_date, reason, status, reviewer_id, review_comment, created_at, version
		FROM leave_requests WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	lr := &domain.LeaveRequest{
		ID: id,
	}

	dst := []any{&lr.UserID, &lr.Type, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.ReviewerID, &lr.ReviewComment, &lr.CreatedAt, &lr.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return lr, nil
}

func (r *Repository) GetLeaveRequestsByUserID(userID int64) ([]*domain.LeaveRequest, error) {
	query := `
		SELECT id, type, start_date, end_date, reason, status, reviewer_id, review_comment, created_at, version
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		lr := &domain.LeaveRequest{UserID: userID}
		dst := []any{&lr.ID, &lr.Type, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.ReviewerID, &lr.ReviewComment, &lr.CreatedAt, &lr.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Repository) GetLeaveRequestsByDepartmentID(departmentID int64) ([]*domain.LeaveRequest, error) {
	query := `
		SELECT lr.id, lr.user_id, lr.type, lr.start_date, lr.end_date, lr.reason, lr.status, lr.reviewer_id, lr.review_comment, lr.created_at, lr.version
		FROM leave_requests lr
		JOIN users u ON lr.user_id = u.id
		WHERE u.department_id = $1
		ORDER BY lr.created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.LeaveRequest, 0)
	for rows.Next() {
		lr := &domain.LeaveRequest{}
		dst := []any{&lr.ID, &lr.UserID, &lr.Type, &lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status, &lr.ReviewerID, &lr.ReviewComment, &lr.CreatedAt, &lr.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ReviewLeaveRequest 写入审批结论，乐观锁防止两个审批人同时处理同一条申请
func (r *Repository) ReviewLeaveRequest(lr *domain.LeaveRequest) error {
	query := `
		UPDATE leave_requests
		SET
			status = $1,
			reviewer_id = $2,
			review_comment = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{lr.Status, lr.ReviewerID, lr.ReviewComment, lr.ID, lr.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&lr.Version); err != nil {
		return err
	}

	return nil
}
