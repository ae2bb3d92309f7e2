package models

import "time"

type EnquiryStatus string

const (
	EnquiryStatusPending  EnquiryStatus = "PENDING"
	EnquiryStatusResolved EnquiryStatus = "RESOLVED"
)

type Enquiry struct {
	ID        int           `json:"id"`
	FullName  string        `json:"fullName" validate:"required"`
	Phone     string        `json:"phone" validate:"required"`
	Email     string        `json:"email"`
	Service   string        `json:"service"`
	Message   string        `json:"message" validate:"required"`
	Status    EnquiryStatus `json:"status"`
	CreatedAt *time.Time    `json:"createdAt"`
}
