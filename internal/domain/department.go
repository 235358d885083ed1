package domain

import "time"

type Department struct {
	ID          int64     `json:"id"`
	CompanyID   string    `json:"companyID"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}
