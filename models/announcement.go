package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Announcement struct {
	gorm.Model

	TenantID    uint           `json:"tenantId" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"type:varchar(160);not null"`
	Content     string         `json:"content" gorm:"type:text"`
	Audience    datatypes.JSON `json:"audience,omitempty"`
	PublishedAt time.Time      `json:"publishedAt"`
	ExpiresAt   *time.Time     `json:"expiresAt,omitempty"`
	CreatedByID *uint          `json:"createdById,omitempty"`
}
