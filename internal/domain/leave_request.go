package domain

import "time"

type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "年假"
	LeaveTypePersonal LeaveType = "事假"
	LeaveTypeSick     LeaveType = "病假"
	LeaveTypeInLieu   LeaveType = "调休"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "待审批"
	LeaveStatusApproved LeaveStatus = "已批准"
	LeaveStatusRejected LeaveStatus = "已驳回"
)

type LeaveRequest struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"userID"`
	Type          LeaveType   `json:"type"`
	StartDate     Date        `json:"startDate"`
	EndDate       Date        `json:"endDate"`
	Reason        string      `json:"reason"`
	Status        LeaveStatus `json:"status"`
	ReviewerID    *int64      `json:"reviewerID"`
	ReviewComment string      `json:"reviewComment"`
	CreatedAt     time.Time   `json:"createdAt"`
	Version       int32       `json:"-"`
}
