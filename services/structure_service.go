package services

import (
	"errors"
	"strings"

	"hostel-backend/models"

	"gorm.io/gorm"
)

// StructureService manages the building/floor/room inventory and keeps the
// structural aggregates (Building.TotalFloors, Building.TotalRooms,
// Floor.TotalRooms) in step with the child rows. Every recompute happens in
// the same transaction as the structural mutation that caused it.
type StructureService struct {
	DB *gorm.DB
}

func NewStructureService(db *gorm.DB) *StructureService {
	return &StructureService{DB: db}
}

type BuildingInput struct {
	BuildingName string `json:"buildingName" binding:"required"`
	BuildingCode string `json:"buildingCode" binding:"required"`
	Address      string `json:"address"`
}

type FloorInput struct {
	BuildingID  uint   `json:"buildingId" binding:"required"`
	FloorNumber int    `json:"floorNumber"`
	FloorName   string `json:"floorName"`
	Status      string `json:"status" binding:"floorstatus"`
}

type FloorUpdateInput struct {
	FloorName *string `json:"floorName,omitempty"`
	Status    *string `json:"status,omitempty"`
}

type RoomInput struct {
	BuildingID  uint    `json:"buildingId" binding:"required"`
	FloorID     uint    `json:"floorId" binding:"required"`
	RoomNumber  string  `json:"roomNumber" binding:"required"`
	RoomType    string  `json:"roomType" binding:"required,roomtype"`
	Capacity    int     `json:"capacity" binding:"required"`
	MonthlyRent float64 `json:"monthlyRent"`
	Description string  `json:"description"`
}

type RoomUpdateInput struct {
	RoomType    *string  `json:"roomType,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
	MonthlyRent *float64 `json:"monthlyRent,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ---------------- Buildings ----------------

func (s *StructureService) CreateBuilding(tenantID uint, input BuildingInput) (models.Building, error) {
	building := models.Building{
		TenantID:     tenantID,
		BuildingName: strings.TrimSpace(input.BuildingName),
		BuildingCode: strings.TrimSpace(input.BuildingCode),
		Address:      strings.TrimSpace(input.Address),
	}
	if building.BuildingName == "" || building.BuildingCode == "" {
		return building, Invalidf("Building name and code are required")
	}
	err := s.DB.Create(&building).Error
	return building, err
}

func (s *StructureService) ListBuildings(tenantID uint) ([]models.Building, error) {
	var buildings []models.Building
	err := s.DB.Where("tenant_id = ?", tenantID).Order("building_code").Find(&buildings).Error
	return buildings, err
}

func (s *StructureService) GetBuilding(tenantID, buildingID uint) (models.Building, error) {
	var building models.Building
	err := s.DB.Preload("Floors").
		Where("id = ? AND tenant_id = ?", buildingID, tenantID).
		First(&building).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return building, NotFoundf("Building not found")
	}
	return building, err
}

func (s *StructureService) UpdateBuilding(tenantID, buildingID uint, input BuildingInput) (models.Building, error) {
	building, err := s.GetBuilding(tenantID, buildingID)
	if err != nil {
		return building, err
	}
	updates := map[string]interface{}{
		"building_name": strings.TrimSpace(input.BuildingName),
		"building_code": strings.TrimSpace(input.BuildingCode),
		"address":       strings.TrimSpace(input.Address),
	}
	if err := s.DB.Model(&building).Updates(updates).Error; err != nil {
		return building, err
	}
	return building, nil
}

// DeleteBuilding refuses to delete a building that still has floors; the
// aggregates stay trivially consistent because only empty buildings go away.
func (s *StructureService) DeleteBuilding(tenantID, buildingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var building models.Building
		if err := tx.Where("id = ? AND tenant_id = ?", buildingID, tenantID).
			First(&building).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Building not found")
			}
			return err
		}

		var floors int64
		if err := tx.Model(&models.Floor{}).
			Where("building_id = ?", building.ID).
			Count(&floors).Error; err != nil {
			return err
		}
		if floors > 0 {
			return Conflictf("Building %s still has %d floor(s) and cannot be deleted", building.BuildingCode, floors)
		}

		return tx.Delete(&building).Error
	})
}

// ---------------- Floors ----------------

func (s *StructureService) CreateFloor(tenantID uint, input FloorInput) (models.Floor, error) {
	var floor models.Floor

	status := input.Status
	if status == "" {
		status = models.FloorStatusActive
	}
	switch status {
	case models.FloorStatusActive, models.FloorStatusInactive, models.FloorStatusUnderMaintenance:
	default:
		return floor, Invalidf("Invalid floor status %q", status)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var building models.Building
		if err := tx.Where("id = ? AND tenant_id = ?", input.BuildingID, tenantID).
			First(&building).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Building not found")
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Floor{}).
			Where("building_id = ? AND floor_number = ?", building.ID, input.FloorNumber).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return Conflictf("Floor %d already exists in building %s", input.FloorNumber, building.BuildingCode)
		}

		floor = models.Floor{
			TenantID:    tenantID,
			BuildingID:  building.ID,
			FloorNumber: input.FloorNumber,
			FloorName:   strings.TrimSpace(input.FloorName),
			Status:      status,
		}
		if err := tx.Create(&floor).Error; err != nil {
			return err
		}

		return refreshBuildingStructure(tx, building.ID)
	})

	return floor, err
}

func (s *StructureService) ListFloors(tenantID, buildingID uint) ([]models.Floor, error) {
	var floors []models.Floor
	q := s.DB.Where("tenant_id = ?", tenantID)
	if buildingID != 0 {
		q = q.Where("building_id = ?", buildingID)
	}
	err := q.Order("building_id, floor_number").Find(&floors).Error
	return floors, err
}

func (s *StructureService) GetFloor(tenantID, floorID uint) (models.Floor, error) {
	var floor models.Floor
	err := s.DB.Where("id = ? AND tenant_id = ?", floorID, tenantID).First(&floor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return floor, NotFoundf("Floor not found")
	}
	return floor, err
}

// UpdateFloor changes the floor's name or status. The floor number is part
// of the building's identity for its rooms and is not updatable.
func (s *StructureService) UpdateFloor(tenantID, floorID uint, input FloorUpdateInput) (models.Floor, error) {
	floor, err := s.GetFloor(tenantID, floorID)
	if err != nil {
		return floor, err
	}

	updates := map[string]interface{}{}
	if input.FloorName != nil {
		updates["floor_name"] = strings.TrimSpace(*input.FloorName)
	}
	if input.Status != nil {
		switch *input.Status {
		case models.FloorStatusActive, models.FloorStatusInactive, models.FloorStatusUnderMaintenance:
		default:
			return floor, Invalidf("Invalid floor status %q", *input.Status)
		}
		updates["status"] = *input.Status
	}
	if len(updates) == 0 {
		return floor, nil
	}

	if err := s.DB.Model(&floor).Updates(updates).Error; err != nil {
		return floor, err
	}
	return floor, nil
}

// DeleteFloor removes an empty floor and recomputes the parent building's
// floor count in the same transaction.
func (s *StructureService) DeleteFloor(tenantID, floorID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var floor models.Floor
		if err := tx.Where("id = ? AND tenant_id = ?", floorID, tenantID).
			First(&floor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Floor not found")
			}
			return err
		}

		var rooms int64
		if err := tx.Model(&models.Room{}).
			Where("floor_id = ?", floor.ID).
			Count(&rooms).Error; err != nil {
			return err
		}
		if rooms > 0 {
			return Conflictf("Floor %d still has %d room(s) and cannot be deleted", floor.FloorNumber, rooms)
		}

		if err := tx.Delete(&floor).Error; err != nil {
			return err
		}

		return refreshBuildingStructure(tx, floor.BuildingID)
	})
}

// ---------------- Rooms ----------------

func (s *StructureService) CreateRoom(tenantID uint, input RoomInput) (models.Room, error) {
	var room models.Room

	if !models.ValidRoomType(input.RoomType) {
		return room, Invalidf("Invalid room type %q", input.RoomType)
	}
	if input.Capacity <= 0 {
		return room, Invalidf("Room capacity must be greater than zero")
	}
	roomNumber := strings.TrimSpace(input.RoomNumber)
	if roomNumber == "" {
		return room, Invalidf("Room number is required")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var floor models.Floor
		if err := tx.Where("id = ? AND tenant_id = ? AND building_id = ?",
			input.FloorID, tenantID, input.BuildingID).
			First(&floor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Floor not found")
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.Room{}).
			Where("floor_id = ? AND room_number = ?", floor.ID, roomNumber).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return Conflictf("Room %s already exists on floor %d", roomNumber, floor.FloorNumber)
		}

		room = models.Room{
			TenantID:    tenantID,
			BuildingID:  floor.BuildingID,
			FloorID:     floor.ID,
			RoomNumber:  roomNumber,
			RoomType:    input.RoomType,
			Capacity:    input.Capacity,
			Status:      models.RoomStatusAvailable,
			MonthlyRent: input.MonthlyRent,
			Description: input.Description,
		}
		if err := tx.Create(&room).Error; err != nil {
			return err
		}

		return refreshRoomCounts(tx, floor.ID, floor.BuildingID)
	})

	return room, err
}

func (s *StructureService) ListRooms(tenantID, buildingID, floorID uint, status string) ([]models.Room, error) {
	var rooms []models.Room
	q := s.DB.Where("tenant_id = ?", tenantID)
	if buildingID != 0 {
		q = q.Where("building_id = ?", buildingID)
	}
	if floorID != 0 {
		q = q.Where("floor_id = ?", floorID)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("building_id, floor_id, room_number").Find(&rooms).Error
	return rooms, err
}

func (s *StructureService) GetRoom(tenantID, roomID uint) (models.Room, error) {
	var room models.Room
	err := s.DB.Where("id = ? AND tenant_id = ?", roomID, tenantID).First(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, NotFoundf("Room not found")
	}
	return room, err
}

func (s *StructureService) UpdateRoom(tenantID, roomID uint, input RoomUpdateInput) (models.Room, error) {
	var room models.Room

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", roomID, tenantID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Room not found")
			}
			return err
		}

		updates := map[string]interface{}{}
		if input.RoomType != nil {
			if !models.ValidRoomType(*input.RoomType) {
				return Invalidf("Invalid room type %q", *input.RoomType)
			}
			updates["room_type"] = *input.RoomType
		}
		if input.Capacity != nil {
			if *input.Capacity <= 0 {
				return Invalidf("Room capacity must be greater than zero")
			}
			if *input.Capacity < room.Occupied {
				return Conflictf("Room %s has %d occupants; capacity cannot be reduced below that",
					room.RoomNumber, room.Occupied)
			}
			updates["capacity"] = *input.Capacity
			updates["status"] = deriveRoomStatus(room.Status, room.Occupied, *input.Capacity)
		}
		if input.MonthlyRent != nil {
			updates["monthly_rent"] = *input.MonthlyRent
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&room).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", room.ID).First(&room).Error
	})

	return room, err
}

// SetRoomStatus applies an administrative status override. MAINTENANCE,
// INACTIVE and RESERVED are stored as given; any other value re-derives the
// status from the current occupancy, which is how an override is cleared.
func (s *StructureService) SetRoomStatus(tenantID, roomID uint, status string) (models.Room, error) {
	var room models.Room

	switch status {
	case models.RoomStatusAvailable, models.RoomStatusOccupied, models.RoomStatusFull,
		models.RoomStatusMaintenance, models.RoomStatusInactive, models.RoomStatusReserved:
	default:
		return room, Invalidf("Invalid room status %q", status)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", roomID, tenantID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Room not found")
			}
			return err
		}

		next := status
		switch status {
		case models.RoomStatusMaintenance, models.RoomStatusInactive, models.RoomStatusReserved:
		default:
			next = deriveRoomStatus(models.RoomStatusAvailable, room.Occupied, room.Capacity)
		}

		if err := tx.Model(&room).Update("status", next).Error; err != nil {
			return err
		}
		room.Status = next
		return nil
	})

	return room, err
}

// DeleteRoom soft-deletes a room with no active occupants and recomputes the
// floor/building room counts. Historical CHECKED_OUT ledger rows keep their
// room reference.
func (s *StructureService) DeleteRoom(tenantID, roomID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("id = ? AND tenant_id = ?", roomID, tenantID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Room not found")
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.RoomAllocation{}).
			Where("room_id = ? AND status = ?", room.ID, models.AllocationStatusActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return Conflictf("Room %s has %d active allocation(s) and cannot be deleted", room.RoomNumber, active)
		}

		if err := tx.Delete(&room).Error; err != nil {
			return err
		}

		return refreshRoomCounts(tx, room.FloorID, room.BuildingID)
	})
}

// refreshBuildingStructure recomputes Building.TotalFloors and
// Building.TotalRooms from the live child rows.
func refreshBuildingStructure(tx *gorm.DB, buildingID uint) error {
	var floors int64
	if err := tx.Model(&models.Floor{}).
		Where("building_id = ?", buildingID).
		Count(&floors).Error; err != nil {
		return err
	}
	var rooms int64
	if err := tx.Model(&models.Room{}).
		Where("building_id = ?", buildingID).
		Count(&rooms).Error; err != nil {
		return err
	}
	return tx.Model(&models.Building{}).Where("id = ?", buildingID).
		Updates(map[string]interface{}{"total_floors": floors, "total_rooms": rooms}).Error
}

// refreshRoomCounts recomputes Floor.TotalRooms plus the parent building's
// structural counters after a room create/delete.
func refreshRoomCounts(tx *gorm.DB, floorID, buildingID uint) error {
	var rooms int64
	if err := tx.Model(&models.Room{}).
		Where("floor_id = ?", floorID).
		Count(&rooms).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Floor{}).Where("id = ?", floorID).
		Update("total_rooms", rooms).Error; err != nil {
		return err
	}
	return refreshBuildingStructure(tx, buildingID)
}
