package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AllocationStatusActive     = "ACTIVE"
	AllocationStatusCheckedOut = "CHECKED_OUT"
)

// RoomAllocation is the ledger of truth for occupancy. Rows are never
// physically deleted; checkout flips the status and stamps CheckoutDate so
// the history stays available for audit and duration reporting. At most one
// ACTIVE row exists per student.
type RoomAllocation struct {
	gorm.Model

	TenantID      uint       `json:"tenantId" gorm:"index;not null"`
	StudentID     uint       `json:"studentId" gorm:"index;not null"`
	RoomID        uint       `json:"roomId" gorm:"index;not null"`
	Status        string     `json:"status" gorm:"type:varchar(20);default:'ACTIVE';index"`
	AllocatedDate time.Time  `json:"allocatedDate"`
	CheckoutDate  *time.Time `json:"checkoutDate,omitempty"`
	Remarks       string     `json:"remarks" gorm:"type:varchar(255)"`
	ReferenceCode string     `json:"referenceCode" gorm:"type:varchar(64);index"`

	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Room    Room    `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
