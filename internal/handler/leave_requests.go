package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
)

func (h *Handler) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		Type      string      `json:"type" validate:"required,oneof=年假 事假 病假 调休"`
		StartDate domain.Date `json:"startDate" validate:"required"`
		EndDate   domain.Date `json:"endDate" validate:"required"`
		Reason    string      `json:"reason" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.EndDate.Before(req.StartDate.Time) {
		h.errorResponse(w, r, "结束日期不能早于开始日期")
		return
	}

	lr := &domain.LeaveRequest{
		UserID:    myInfo.ID,
		Type:      domain.LeaveType(req.Type),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    domain.LeaveStatusPending,
	}

	if err := h.repository.CreateLeaveRequest(lr); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "请假申请提交成功", lr)
}

func (h *Handler) GetMyLeaveRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	requests, err := h.repository.GetLeaveRequestsByUserID(myInfo.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取请假申请列表成功", requests)
}

func (h *Handler) GetDepartmentLeaveRequests(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	departmentIDParam := chi.URLParam(r, "id")
	departmentID, err := strconv.ParseInt(departmentIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "部门ID无效")
		return
	}

	// 部门经理只能查看自己所在部门的申请
	if myInfo.Role == domain.RoleManager {
		if myInfo.DepartmentID == nil || *myInfo.DepartmentID != departmentID {
			h.errorResponse(w, r, "只能查看自己所在部门的请假申请")
			return
		}
	}

	requests, err := h.repository.GetLeaveRequestsByDepartmentID(departmentID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取部门请假申请成功", requests)
}

func (h *Handler) ReviewLeaveRequest(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	requestIDParam := chi.URLParam(r, "id")
	requestID, err := strconv.ParseInt(requestIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "申请ID无效")
		return
	}

	var req struct {
		Approve *bool  `json:"approve" validate:"required"`
		Comment string `json:"comment"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	lr, err := h.repository.GetLeaveRequestByID(requestID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "请假申请不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	if lr.Status != domain.LeaveStatusPending {
		h.errorResponse(w, r, "该申请已被处理")
		return
	}

	requester, err := h.repository.GetUserByID(lr.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 部门经理只能审批自己所在部门员工的申请
	if myInfo.Role == domain.RoleManager {
		if myInfo.DepartmentID == nil || requester.DepartmentID == nil || *myInfo.DepartmentID != *requester.DepartmentID {
			h.errorResponse(w, r, "只能审批自己所在部门员工的申请")
			return
		}
	}

	if *req.Approve {
		lr.Status = domain.LeaveStatusApproved
	} else {
		lr.Status = domain.LeaveStatusRejected
	}
	lr.ReviewerID = &myInfo.ID
	lr.ReviewComment = req.Comment

	if err := h.repository.ReviewLeaveRequest(lr); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该申请已被其他人处理，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 把审批结果通过邮件告知申请人
	if err := h.enqueueMail(domain.MailMessage{
		Type: "leave_decided",
		To:   requester.Email,
		Data: domain.LeaveDecidedMailData{
			FullName:  requester.FullName,
			StartDate: lr.StartDate.Format("2006-01-02"),
			EndDate:   lr.EndDate.Format("2006-01-02"),
			Status:    string(lr.Status),
			Comment:   lr.ReviewComment,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "审批完成", lr)
}
