package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash   = "CASH"
	PaymentMethodOnline = "ONLINE"

	PaymentStatusCreated  = "CREATED"
	PaymentStatusCaptured = "CAPTURED"
	PaymentStatusFailed   = "FAILED"
)

type Payment struct {
	gorm.Model

	TenantID         uint           `json:"tenantId" gorm:"index;not null"`
	FeeID            uint           `json:"feeId" gorm:"index;not null"`
	StudentID        uint           `json:"studentId" gorm:"index;not null"`
	Amount           float64        `json:"amount" gorm:"not null"`
	Method           string         `json:"method" gorm:"type:varchar(10);not null"`
	Status           string         `json:"status" gorm:"type:varchar(20);default:'CREATED'"`
	ReceiptNumber    string         `json:"receiptNumber" gorm:"type:varchar(64);uniqueIndex"`
	GatewayOrderID   string         `json:"gatewayOrderId,omitempty" gorm:"type:varchar(64);index"`
	GatewayPaymentID string         `json:"gatewayPaymentId,omitempty" gorm:"type:varchar(64)"`
	GatewaySignature string         `json:"-" gorm:"type:varchar(191)"`
	GatewayPayload   datatypes.JSON `json:"gatewayPayload,omitempty"`
	PaidAt           *time.Time     `json:"paidAt,omitempty"`

	Fee Fee `json:"-" gorm:"foreignKey:FeeID"`
}
