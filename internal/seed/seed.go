package seed

import (
	"log/slog"
	"time"

	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/repository"
	"github.com/sysu-ecnc-dev/hr-roster/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var demoDepartments = []struct {
	Name        string
	Description string
	Employees   int
}{
	{"前台", "接待访客，处理日常事务", 4},
	{"客服部", "响应客户咨询与投诉", 6},
	{"技术支持部", "保障系统与设备正常运行", 3},
}

// nextSunday 返回严格晚于今天的下一个周日
func nextSunday(now time.Time) domain.Date {
	days := 7 - int(now.Weekday())
	return domain.DateOf(now).AddDays(days)
}

// SeedDemoData 造一套演示数据：三个部门，每个部门一名经理和若干员工，
// 外加下一周的用人需求和每个员工的空闲时间提交
func SeedDemoData(r *repository.Repository, companyID string, password string, emailDomain string) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("无法生成密码哈希", "error", err)
		return
	}

	weekStart := nextSunday(time.Now())

	for _, d := range demoDepartments {
		dept := &domain.Department{
			CompanyID:   companyID,
			Name:        d.Name,
			Description: d.Description,
		}
		if err := r.CreateDepartment(dept); err != nil {
			slog.Error("插入部门失败", "department", d.Name, "error", err)
			continue
		}

		// 部门经理
		manager := newDemoUser(string(passwordHash), emailDomain, companyID, &dept.ID)
		manager.Role = domain.RoleManager
		if err := r.CreateUser(manager); err != nil {
			slog.Error("插入部门经理失败", "department", d.Name, "error", err)
			continue
		}

		// 部门的用人需求
		req, err := utils.GenerateRandomShiftRequirement(dept.CompanyID, dept.ID)
		if err != nil {
			slog.Error("生成用人需求失败", "department", d.Name, "error", err)
			continue
		}
		if err := r.SaveShiftRequirement(req); err != nil {
			slog.Error("插入用人需求失败", "department", d.Name, "error", err)
			continue
		}

		// 部门员工和他们下一周的空闲时间
		for i := 0; i < d.Employees; i++ {
			employee := newDemoUser(string(passwordHash), emailDomain, companyID, &dept.ID)
			employee.Role = domain.RoleEmployee
			if err := r.CreateUser(employee); err != nil {
				slog.Error("插入员工失败", "department", d.Name, "error", err)
				continue
			}

			week, err := utils.GenerateRandomWeeklyAvailability(employee.ID, companyID, weekStart)
			if err != nil {
				slog.Error("生成空闲时间失败", "username", employee.Username, "error", err)
				continue
			}
			if err := r.UpsertWeeklyAvailability(week); err != nil {
				slog.Error("插入空闲时间失败", "username", employee.Username, "error", err)
				continue
			}
		}
	}

	slog.Info("插入演示数据完成", "weekStart", weekStart.Format("2006-01-02"))
}

func newDemoUser(passwordHash string, emailDomain string, companyID string, departmentID *int64) *domain.User {
	fullName := utils.GenerateRandomChineseName()
	username := utils.GenerateUsernameFromChineseName(fullName)

	return &domain.User{
		Username:     username,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Email:        username + "@" + emailDomain,
		CompanyID:    companyID,
		DepartmentID: departmentID,
	}
}
