package services

import (
	"hostel-backend/models"
)

// deriveRoomStatus maps a fresh occupancy count onto the room status.
// MAINTENANCE and INACTIVE are administrative overrides and survive
// recomputation; every other status is derived from occupied vs capacity.
func deriveRoomStatus(current string, occupied, capacity int) string {
	switch current {
	case models.RoomStatusMaintenance, models.RoomStatusInactive:
		return current
	}
	switch {
	case occupied <= 0:
		return models.RoomStatusAvailable
	case occupied >= capacity:
		return models.RoomStatusFull
	default:
		return models.RoomStatusOccupied
	}
}

// roomAllocatable reports whether a room may accept new allocations at all.
// RESERVED rooms accept allocations; MAINTENANCE and INACTIVE do not.
func roomAllocatable(status string) bool {
	return status != models.RoomStatusMaintenance && status != models.RoomStatusInactive
}
