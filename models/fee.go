package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FeeTypeHostel          = "HOSTEL"
	FeeTypeMess            = "MESS"
	FeeTypeSecurityDeposit = "SECURITY_DEPOSIT"
	FeeTypeOther           = "OTHER"

	FeeStatusPending       = "PENDING"
	FeeStatusPartiallyPaid = "PARTIALLY_PAID"
	FeeStatusPaid          = "PAID"
	FeeStatusCancelled     = "CANCELLED"
)

type Fee struct {
	gorm.Model

	TenantID   uint      `json:"tenantId" gorm:"index;not null"`
	StudentID  uint      `json:"studentId" gorm:"index;not null"`
	FeeType    string    `json:"feeType" gorm:"type:varchar(30);not null"`
	Amount     float64   `json:"amount" gorm:"not null"`
	PaidAmount float64   `json:"paidAmount" gorm:"default:0"`
	DueDate    time.Time `json:"dueDate"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'PENDING'"`

	Student  Student   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:FeeID"`
}
