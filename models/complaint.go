package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ComplaintStatusOpen       = "OPEN"
	ComplaintStatusInProgress = "IN_PROGRESS"
	ComplaintStatusResolved   = "RESOLVED"
	ComplaintStatusClosed     = "CLOSED"
)

type Complaint struct {
	gorm.Model

	TenantID        uint       `json:"tenantId" gorm:"index;not null"`
	StudentID       uint       `json:"studentId" gorm:"index;not null"`
	RoomID          *uint      `json:"roomId,omitempty" gorm:"index"`
	Category        string     `json:"category" gorm:"type:varchar(40)"`
	Title           string     `json:"title" gorm:"type:varchar(160);not null"`
	Description     string     `json:"description" gorm:"type:text"`
	Priority        string     `json:"priority" gorm:"type:varchar(20);default:'MEDIUM'"`
	Status          string     `json:"status" gorm:"type:varchar(20);default:'OPEN'"`
	ResolutionNotes string     `json:"resolutionNotes" gorm:"type:text"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`

	Student Student `json:"student,omitempty" gorm:"foreignKey:StudentID"`
}
