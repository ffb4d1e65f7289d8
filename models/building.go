package models

import (
	"gorm.io/gorm"
)

// Building aggregates (TotalFloors, TotalRooms, OccupiedRooms) are
// recomputed from child rows inside the same transaction as the mutation
// that changed them. They are presentation values only; capacity decisions
// always read the allocation ledger.
type Building struct {
	gorm.Model

	TenantID      uint   `json:"tenantId" gorm:"index;not null;uniqueIndex:idx_buildings_tenant_code"`
	BuildingName  string `json:"buildingName" gorm:"type:varchar(120);not null"`
	BuildingCode  string `json:"buildingCode" gorm:"type:varchar(40);not null;uniqueIndex:idx_buildings_tenant_code"`
	Address       string `json:"address" gorm:"type:varchar(255)"`
	TotalFloors   int    `json:"totalFloors" gorm:"default:0"`
	TotalRooms    int    `json:"totalRooms" gorm:"default:0"`
	OccupiedRooms int    `json:"occupiedRooms" gorm:"default:0"`

	Floors []Floor `json:"floors,omitempty" gorm:"foreignKey:BuildingID"`
}
