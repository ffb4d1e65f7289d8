package models

import (
	"gorm.io/gorm"
)

// Tenant is the isolation boundary; every other entity carries a TenantID
// and no query may cross it.
type Tenant struct {
	gorm.Model

	Name   string `json:"name" gorm:"type:varchar(120);not null"`
	Code   string `json:"code" gorm:"type:varchar(40);uniqueIndex;not null"`
	Status string `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
}
