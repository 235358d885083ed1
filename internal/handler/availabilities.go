package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/roster"
)

func (h *Handler) weekStartParam(r *http.Request) (domain.Date, error) {
	weekStart, err := domain.ParseDate(chi.URLParam(r, "weekStart"))
	if err != nil {
		return domain.Date{}, err
	}
	if weekStart.Weekday() != time.Sunday {
		return domain.Date{}, roster.ErrWeekStartNotSunday
	}
	return weekStart, nil
}

func (h *Handler) GetWeeklyAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	weekStart, err := h.weekStartParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	week, err := h.repository.GetWeeklyAvailability(myInfo.ID, weekStart)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.successResponse(w, r, "该周暂无提交记录", nil)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "获取空闲时间成功", week)
}

func (h *Handler) SubmitWeeklyAvailability(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	var req struct {
		WeekStartDate domain.Date                             `json:"weekStartDate" validate:"required"`
		Days          map[domain.DayOfWeek]domain.DaySchedule `json:"days"`
		Note          string                                  `json:"note"`
		IsRecurring   bool                                    `json:"isRecurring"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	week, err := roster.NewWeeklyAvailability(myInfo.ID, myInfo.CompanyID, req.WeekStartDate)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}
	week.Note = req.Note
	week.IsRecurring = req.IsRecurring

	// 逐个时间段重放录入，每一步都走和编辑时相同的校验
	for _, day := range domain.AllDays() {
		sched, ok := req.Days[day]
		if !ok {
			continue
		}

		if sched.Available && len(sched.Slots) > 0 {
			for _, slot := range sched.Slots {
				if err := roster.AddSlot(week, day, slot); err != nil {
					h.errorResponse(w, r, err.Error())
					return
				}
			}
		} else {
			week.Days[day] = domain.DaySchedule{Available: sched.Available, Slots: []domain.TimeSlot{}}
		}

		d := week.Days[day]
		d.Note = sched.Note
		week.Days[day] = d
	}

	deadline, err := roster.SubmissionDeadline(req.WeekStartDate, h.deadlinePolicy)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := roster.ValidateForSubmit(week, time.Now(), deadline, h.config.Roster.MinWeeklyHours); err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.UpsertWeeklyAvailability(week); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	totalHours, err := roster.TotalHours(week)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 给员工发一封提交确认邮件
	if err := h.enqueueMail(domain.MailMessage{
		Type: "availability_submitted",
		To:   myInfo.Email,
		Data: domain.AvailabilitySubmittedMailData{
			FullName:   myInfo.FullName,
			WeekStart:  week.WeekStartDate.Format("2006-01-02"),
			TotalHours: totalHours,
		},
	}); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "空闲时间提交成功", week)
}

// GetPreviousWeekCopy 返回以上一周提交为底稿的当周副本，不落库，由员工确认后再提交
func (h *Handler) GetPreviousWeekCopy(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	weekStart, err := h.weekStartParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	previous, err := h.repository.GetWeeklyAvailability(myInfo.ID, weekStart.AddDays(-7))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "上一周没有提交记录")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	clone, err := roster.CloneWeek(previous, weekStart)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已根据上一周生成副本", clone)
}

func (h *Handler) StopRecurring(w http.ResponseWriter, r *http.Request) {
	myInfo := r.Context().Value(MyInfoCtx).(*domain.User)

	weekStart, err := h.weekStartParam(r)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SetWeeklyAvailabilityRecurring(myInfo.ID, weekStart, false); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "该周暂无提交记录")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "已停止按周重复", nil)
}
