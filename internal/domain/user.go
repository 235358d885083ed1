package domain

import (
	"time"
)

type Role string

const (
	RoleEmployee Role = "员工"
	RoleManager  Role = "部门经理"
	RoleHRAdmin  Role = "人事管理员"
)

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	CompanyID    string    `json:"companyID"`
	DepartmentID *int64    `json:"departmentID"` // 为空表示尚未分配部门
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
