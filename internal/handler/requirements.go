package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/roster"
)

// loadOrInitShiftRequirement 读出部门的用人需求，还没有记录时给出一份空白需求
func (h *Handler) loadOrInitShiftRequirement(dept *domain.Department) (*domain.ShiftRequirement, error) {
	req, err := h.repository.GetShiftRequirementByDepartmentID(dept.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return roster.NewShiftRequirement(dept.CompanyID, dept.ID), nil
		}
		return nil, err
	}
	return req, nil
}

func (h *Handler) requirementSlotParams(r *http.Request) (domain.DayOfWeek, int, error) {
	day, err := domain.ParseDayOfWeek(chi.URLParam(r, "day"))
	if err != nil {
		return 0, 0, err
	}

	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, 0, errors.New("时段序号无效")
	}

	return day, idx, nil
}

func (h *Handler) GetShiftRequirement(w http.ResponseWriter, r *http.Request) {
	dept := r.Context().Value(DepartmentCtx).(*domain.Department)

	req, err := h.loadOrInitShiftRequirement(dept)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取用人需求成功", req)
}

func (h *Handler) AddRequirementSlot(w http.ResponseWriter, r *http.Request) {
	dept := r.Context().Value(DepartmentCtx).(*domain.Department)

	var req struct {
		Day  domain.DayOfWeek       `json:"day"`
		Slot domain.RequirementSlot `json:"slot" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	requirement, err := h.loadOrInitShiftRequirement(dept)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := roster.AddRequirementSlot(requirement, req.Day, req.Slot); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SaveShiftRequirement(requirement); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "用人需求已被其他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "新增用人需求时段成功", requirement)
}

func (h *Handler) UpdateRequirementSlot(w http.ResponseWriter, r *http.Request) {
	dept := r.Context().Value(DepartmentCtx).(*domain.Department)

	day, idx, err := h.requirementSlotParams(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	var req struct {
		Slot domain.RequirementSlot `json:"slot" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	requirement, err := h.repository.GetShiftRequirementByDepartmentID(dept.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该部门尚未设置用人需求")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := roster.UpdateRequirementSlot(requirement, day, idx, req.Slot); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SaveShiftRequirement(requirement); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "用人需求已被其他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "更新用人需求时段成功", requirement)
}

func (h *Handler) RemoveRequirementSlot(w http.ResponseWriter, r *http.Request) {
	dept := r.Context().Value(DepartmentCtx).(*domain.Department)

	day, idx, err := h.requirementSlotParams(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	requirement, err := h.repository.GetShiftRequirementByDepartmentID(dept.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该部门尚未设置用人需求")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if err := roster.RemoveRequirementSlot(requirement, day, idx); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SaveShiftRequirement(requirement); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "用人需求已被其他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "删除用人需求时段成功", requirement)
}
