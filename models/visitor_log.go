package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	VisitStatusIn  = "IN"
	VisitStatusOut = "OUT"
)

type VisitorLog struct {
	gorm.Model

	TenantID     uint           `json:"tenantId" gorm:"index;not null"`
	StudentID    uint           `json:"studentId" gorm:"index;not null"`
	VisitorName  string         `json:"visitorName" gorm:"type:varchar(120);not null"`
	Relation     string         `json:"relation" gorm:"type:varchar(60)"`
	Phone        string         `json:"phone" gorm:"type:varchar(20)"`
	IDProof      datatypes.JSON `json:"idProof,omitempty" gorm:"column:id_proof"`
	Purpose      string         `json:"purpose" gorm:"type:varchar(160)"`
	CheckInTime  time.Time      `json:"checkInTime"`
	CheckOutTime *time.Time     `json:"checkOutTime,omitempty"`
	Status       string         `json:"status" gorm:"type:varchar(10);default:'IN'"`

	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}
