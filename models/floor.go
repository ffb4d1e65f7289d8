package models

import (
	"gorm.io/gorm"
)

const (
	FloorStatusActive           = "ACTIVE"
	FloorStatusInactive         = "INACTIVE"
	FloorStatusUnderMaintenance = "UNDER_MAINTENANCE"
)

type Floor struct {
	gorm.Model

	TenantID      uint   `json:"tenantId" gorm:"index;not null"`
	BuildingID    uint   `json:"buildingId" gorm:"not null;uniqueIndex:idx_floors_building_number"`
	FloorNumber   int    `json:"floorNumber" gorm:"not null;uniqueIndex:idx_floors_building_number"`
	FloorName     string `json:"floorName" gorm:"type:varchar(120)"`
	Status        string `json:"status" gorm:"type:varchar(30);default:'ACTIVE'"`
	TotalRooms    int    `json:"totalRooms" gorm:"default:0"`
	OccupiedRooms int    `json:"occupiedRooms" gorm:"default:0"`

	Building Building `json:"-" gorm:"foreignKey:BuildingID"`
	Rooms    []Room   `json:"rooms,omitempty" gorm:"foreignKey:FloorID"`
}
