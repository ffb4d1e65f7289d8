package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MaintenanceStatusPending    = "PENDING"
	MaintenanceStatusInProgress = "IN_PROGRESS"
	MaintenanceStatusCompleted  = "COMPLETED"
	MaintenanceStatusCancelled  = "CANCELLED"
)

type MaintenanceRequest struct {
	gorm.Model

	TenantID     uint       `json:"tenantId" gorm:"index;not null"`
	RoomID       uint       `json:"roomId" gorm:"index;not null"`
	ReportedByID *uint      `json:"reportedById,omitempty" gorm:"index"`
	IssueType    string     `json:"issueType" gorm:"type:varchar(40)"`
	Description  string     `json:"description" gorm:"type:text"`
	Priority     string     `json:"priority" gorm:"type:varchar(20);default:'MEDIUM'"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:'PENDING'"`
	Cost         *float64   `json:"cost,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`

	Room Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}
