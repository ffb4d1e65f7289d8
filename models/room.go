package models

import (
	"gorm.io/gorm"
)

const (
	RoomTypeSingle    = "SINGLE"
	RoomTypeDouble    = "DOUBLE"
	RoomTypeTriple    = "TRIPLE"
	RoomTypeQuad      = "QUAD"
	RoomTypeDormitory = "DORMITORY"

	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusFull        = "FULL"
	RoomStatusMaintenance = "MAINTENANCE"
	RoomStatusInactive    = "INACTIVE"
	RoomStatusReserved    = "RESERVED"
)

// Room.Occupied mirrors the count of ACTIVE RoomAllocation rows for the
// room. Only the allocation service's transactions may write it.
type Room struct {
	gorm.Model

	TenantID    uint    `json:"tenantId" gorm:"index;not null"`
	BuildingID  uint    `json:"buildingId" gorm:"index;not null"`
	FloorID     uint    `json:"floorId" gorm:"not null;uniqueIndex:idx_rooms_floor_number"`
	RoomNumber  string  `json:"roomNumber" gorm:"type:varchar(40);not null;uniqueIndex:idx_rooms_floor_number"`
	RoomType    string  `json:"roomType" gorm:"type:varchar(20);not null"`
	Capacity    int     `json:"capacity" gorm:"not null"`
	Occupied    int     `json:"occupied" gorm:"default:0"`
	Status      string  `json:"status" gorm:"type:varchar(20);default:'AVAILABLE'"`
	MonthlyRent float64 `json:"monthlyRent" gorm:"default:0"`
	Description string  `json:"description" gorm:"type:text"`

	Building Building `json:"-" gorm:"foreignKey:BuildingID"`
	Floor    Floor    `json:"-" gorm:"foreignKey:FloorID"`
}

// ValidRoomType reports whether t is one of the supported room types.
func ValidRoomType(t string) bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTriple, RoomTypeQuad, RoomTypeDormitory:
		return true
	}
	return false
}
