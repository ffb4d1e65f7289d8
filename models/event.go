package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model

	TenantID    uint           `json:"tenantId" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"type:varchar(160);not null"`
	Description string         `json:"description" gorm:"type:text"`
	Venue       string         `json:"venue" gorm:"type:varchar(160)"`
	StartsAt    time.Time      `json:"startsAt"`
	EndsAt      time.Time      `json:"endsAt"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
}
