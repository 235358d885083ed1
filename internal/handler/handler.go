package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/roster"
)

type Handler struct {
	validate       *validator.Validate
	config         *config.Config
	repository     *repository.Repository
	translator     ut.Translator
	mailChannel    *amqp.Channel
	redisClient    *redis.Client
	deadlinePolicy roster.DeadlinePolicy

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// 提交截止策略在启动时就解析好，配置错误直接拒绝启动
	policy, err := roster.ParseDeadlinePolicy(cfg.Roster.DeadlinePolicy)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:       validate,
		config:         cfg,
		repository:     repo,
		translator:     trans,
		mailChannel:    mailCh,
		redisClient:    rdb,
		deadlinePolicy: policy,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Post("/", h.CreateUser)
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHRAdmin})).Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Post("/", h.CreateDepartment)
			r.Get("/", h.GetAllDepartments)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.department)
				r.Get("/", h.GetDepartment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Patch("/", h.UpdateDepartment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleHRAdmin})).Delete("/", h.DeleteDepartment)

				// 用人需求由部门经理逐条维护，每一次变更都走同一套冲突校验
				r.Route("/requirements", func(r chi.Router) {
					r.Use(h.myInfo)
					r.Use(h.requireDepartmentManager)
					r.Get("/", h.GetShiftRequirement)
					r.Post("/slots", h.AddRequirementSlot)
					r.Patch("/slots/{day}/{index}", h.UpdateRequirementSlot)
					r.Delete("/slots/{day}/{index}", h.RemoveRequirementSlot)
				})
			})
		})

		// 员工本人的每周空闲时间
		r.Route("/availabilities", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.preventInactiveEmployee)
			r.Post("/", h.SubmitWeeklyAvailability)
			r.Route("/{weekStart}", func(r chi.Router) {
				r.Get("/", h.GetWeeklyAvailability)
				r.Get("/previous", h.GetPreviousWeekCopy)
				r.Post("/stop-recurring", h.StopRecurring)
			})
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateLeaveRequest)
			r.Get("/", h.GetMyLeaveRequests)
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHRAdmin})).Get("/department/{id}", h.GetDepartmentLeaveRequests)
			r.With(h.RequiredRole([]domain.Role{domain.RoleManager, domain.RoleHRAdmin})).Post("/{id}/review", h.ReviewLeaveRequest)
		})
	})
}
