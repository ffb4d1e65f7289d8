package models

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model

	TenantID uint   `json:"tenantId" gorm:"index;not null;uniqueIndex:idx_admins_tenant_email"`
	FullName string `json:"fullName" gorm:"type:varchar(120)"`
	Email    string `json:"email" gorm:"type:varchar(191);not null;uniqueIndex:idx_admins_tenant_email"`
	Password string `json:"-" gorm:"type:varchar(100)"`
	Role     string `json:"role" gorm:"type:varchar(20);default:'ADMIN'"`

	Tenant Tenant `json:"-" gorm:"foreignKey:TenantID"`
}
