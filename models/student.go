package models

import (
	"gorm.io/gorm"
)

const (
	StudentStatusActive   = "ACTIVE"
	StudentStatusInactive = "INACTIVE"

	RoleStudent = "STUDENT"
)

type Student struct {
	gorm.Model

	TenantID      uint   `json:"tenantId" gorm:"index;not null;uniqueIndex:idx_students_tenant_email"`
	FullName      string `json:"fullName" gorm:"type:varchar(120);not null"`
	Email         string `json:"email" gorm:"type:varchar(191);not null;uniqueIndex:idx_students_tenant_email"`
	Phone         string `json:"phone" gorm:"type:varchar(20)"`
	RollNumber    string `json:"rollNumber" gorm:"type:varchar(40)"`
	GuardianName  string `json:"guardianName" gorm:"type:varchar(120)"`
	GuardianPhone string `json:"guardianPhone" gorm:"type:varchar(20)"`
	Password      string `json:"-" gorm:"type:varchar(100)"`
	Role          string `json:"role" gorm:"type:varchar(20);default:'STUDENT'"`
	Status        string `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`

	Allocations []RoomAllocation `json:"allocations,omitempty" gorm:"foreignKey:StudentID"`
}
