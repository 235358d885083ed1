package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CompanyID   string `json:"companyID" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dept := &domain.Department{
		CompanyID:   req.CompanyID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.repository.CreateDepartment(dept); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "departments_company_id_name_key":
				h.badRequest(w, r, errors.New("部门名称已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "部门创建成功", dept)
}

func (h *Handler) GetAllDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.repository.GetAllDepartments()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取部门列表成功", depts)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	dept := r.Context().Value(DepartmentCtx).(*domain.Department)
	h.successResponse(w, r, "获取部门信息成功", dept)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	dept := r.Context().Value(DepartmentCtx).(*domain.Department)

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}

	if err := h.repository.UpdateDepartment(dept); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "departments_company_id_name_key":
				h.badRequest(w, r, errors.New("部门名称已存在"))
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "更新部门信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新部门信息成功", dept)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	dept := r.Context().Value(DepartmentCtx).(*domain.Department)

	if err := h.repository.DeleteDepartment(dept.ID); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch {
			case pgErr.ConstraintName == "users_department_id_fkey":
				h.badRequest(w, r, errors.New("部门下还有员工，无法删除"))
			case pgErr.ConstraintName == "shift_requirements_department_id_fkey":
				h.badRequest(w, r, errors.New("部门下还有用人需求，无法删除"))
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除部门成功", nil)
}
