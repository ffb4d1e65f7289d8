package services

import (
	"errors"
	"time"

	"hostel-backend/models"
	"hostel-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllocationService owns every write to the allocation ledger and to the
// occupancy counters derived from it. All mutations run inside a single
// transaction that locks the affected room row(s) with SELECT ... FOR UPDATE
// before reading any count, so two concurrent requests cannot both pass the
// capacity check. No other code path writes Room.Occupied.
type AllocationService struct {
	DB *gorm.DB
}

func NewAllocationService(db *gorm.DB) *AllocationService {
	return &AllocationService{DB: db}
}

type UpdateAllocationInput struct {
	RoomID  *uint   `json:"roomId,omitempty"`
	Status  *string `json:"status,omitempty"`
	Remarks *string `json:"remarks,omitempty"`
}

type AllocationPair struct {
	StudentID uint `json:"studentId" binding:"required"`
	RoomID    uint `json:"roomId" binding:"required"`
}

type BulkAllocationError struct {
	StudentID uint   `json:"studentId"`
	RoomID    uint   `json:"roomId"`
	Error     string `json:"error"`
}

type BulkAllocationResult struct {
	Successful int                     `json:"successful"`
	Failed     int                     `json:"failed"`
	Results    []models.RoomAllocation `json:"results"`
	Errors     []BulkAllocationError   `json:"errors"`
}

type AllocationHistoryEntry struct {
	RoomNumber    string     `json:"roomNumber"`
	Floor         int        `json:"floor"`
	AllocatedDate time.Time  `json:"allocatedDate"`
	CheckoutDate  *time.Time `json:"checkoutDate,omitempty"`
	Status        string     `json:"status"`
	DurationDays  *int       `json:"durationDays,omitempty"`
}

// CreateAllocation assigns a student to a room. Precondition order matters:
// student existence, single-active-allocation, room existence, room
// availability, capacity. The student and room rows are locked for the whole
// transaction; the capacity check counts ACTIVE ledger rows read inside the
// same transaction as the insert.
func (s *AllocationService) CreateAllocation(tenantID, studentID, roomID uint, remarks string) (models.RoomAllocation, error) {
	var allocation models.RoomAllocation

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND tenant_id = ?", studentID, tenantID).
			First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Student not found")
			}
			return err
		}
		if student.Role != models.RoleStudent {
			return NotFoundf("Student not found")
		}
		if student.Status != models.StudentStatusActive {
			return Conflictf("Student %s is inactive and cannot be allocated", student.FullName)
		}

		var activeForStudent int64
		if err := tx.Model(&models.RoomAllocation{}).
			Where("student_id = ? AND status = ?", student.ID, models.AllocationStatusActive).
			Count(&activeForStudent).Error; err != nil {
			return err
		}
		if activeForStudent > 0 {
			return Conflictf("Student %s already has an active room allocation", student.FullName)
		}

		room, err := s.lockRoom(tx, tenantID, roomID)
		if err != nil {
			return err
		}
		if !roomAllocatable(room.Status) {
			return Conflictf("Room %s is unavailable (%s)", room.RoomNumber, room.Status)
		}

		var activeForRoom int64
		if err := tx.Model(&models.RoomAllocation{}).
			Where("room_id = ? AND status = ?", room.ID, models.AllocationStatusActive).
			Count(&activeForRoom).Error; err != nil {
			return err
		}
		if int(activeForRoom) >= room.Capacity {
			return Conflictf("Room %s is at full capacity (%d/%d). Cannot allocate more students.",
				room.RoomNumber, activeForRoom, room.Capacity)
		}

		refCode, err := utils.GenerateSecureToken(8)
		if err != nil {
			return err
		}
		allocation = models.RoomAllocation{
			TenantID:      tenantID,
			StudentID:     student.ID,
			RoomID:        room.ID,
			Status:        models.AllocationStatusActive,
			AllocatedDate: time.Now().UTC(),
			Remarks:       remarks,
			ReferenceCode: refCode,
		}
		if err := tx.Create(&allocation).Error; err != nil {
			return err
		}

		return s.refreshRoomOccupancy(tx, room)
	})

	return allocation, err
}

// UpdateAllocation changes the room, status, or remarks of an allocation.
// A room move validates the destination exactly like CreateAllocation and
// recomputes both rooms; both room rows are locked in ascending id order so
// two opposite-direction moves cannot deadlock.
func (s *AllocationService) UpdateAllocation(tenantID, allocationID uint, input UpdateAllocationInput) (models.RoomAllocation, error) {
	var allocation models.RoomAllocation

	if input.Status != nil &&
		*input.Status != models.AllocationStatusActive &&
		*input.Status != models.AllocationStatusCheckedOut {
		return allocation, Invalidf("Invalid allocation status %q", *input.Status)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", allocationID, tenantID).
			First(&allocation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Allocation not found")
			}
			return err
		}

		moving := input.RoomID != nil && *input.RoomID != allocation.RoomID

		if allocation.Status == models.AllocationStatusCheckedOut {
			if moving {
				return Conflictf("Allocation is already checked out and cannot be moved")
			}
			if input.Status != nil && *input.Status == models.AllocationStatusActive {
				return Conflictf("Allocation is already checked out and cannot be reactivated")
			}
		}

		var oldRoom, newRoom *models.Room
		if moving {
			var err error
			oldRoom, newRoom, err = s.lockRoomPair(tx, tenantID, allocation.RoomID, *input.RoomID)
			if err != nil {
				return err
			}
			if !roomAllocatable(newRoom.Status) {
				return Conflictf("Room %s is unavailable (%s)", newRoom.RoomNumber, newRoom.Status)
			}

			var activeForRoom int64
			if err := tx.Model(&models.RoomAllocation{}).
				Where("room_id = ? AND status = ? AND id <> ?",
					newRoom.ID, models.AllocationStatusActive, allocation.ID).
				Count(&activeForRoom).Error; err != nil {
				return err
			}
			if int(activeForRoom) >= newRoom.Capacity {
				return Conflictf("Room %s is at full capacity (%d/%d). Cannot allocate more students.",
					newRoom.RoomNumber, activeForRoom, newRoom.Capacity)
			}
			allocation.RoomID = newRoom.ID
		} else {
			room, err := s.lockRoom(tx, tenantID, allocation.RoomID)
			if err != nil {
				return err
			}
			oldRoom = room
		}

		if input.Status != nil && *input.Status == models.AllocationStatusCheckedOut &&
			allocation.Status == models.AllocationStatusActive {
			now := time.Now().UTC()
			allocation.Status = models.AllocationStatusCheckedOut
			allocation.CheckoutDate = &now
		}
		if input.Remarks != nil {
			allocation.Remarks = *input.Remarks
		}

		if err := tx.Save(&allocation).Error; err != nil {
			return err
		}

		if err := s.refreshRoomOccupancy(tx, oldRoom); err != nil {
			return err
		}
		if newRoom != nil {
			return s.refreshRoomOccupancy(tx, newRoom)
		}
		return nil
	})

	return allocation, err
}

// DeallocateStudent checks an allocation out. The ledger row is kept with
// status CHECKED_OUT; the room's occupancy is recomputed from the remaining
// ACTIVE rows.
func (s *AllocationService) DeallocateStudent(tenantID, allocationID uint) (models.RoomAllocation, error) {
	var allocation models.RoomAllocation

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", allocationID, tenantID).
			First(&allocation).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Allocation not found")
			}
			return err
		}
		if allocation.Status == models.AllocationStatusCheckedOut {
			return Conflictf("Allocation is already checked out")
		}

		room, err := s.lockRoom(tx, tenantID, allocation.RoomID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		allocation.Status = models.AllocationStatusCheckedOut
		allocation.CheckoutDate = &now
		if err := tx.Save(&allocation).Error; err != nil {
			return err
		}

		return s.refreshRoomOccupancy(tx, room)
	})

	return allocation, err
}

// BulkAllocate applies CreateAllocation independently per pair. A failing
// pair is collected into the error list and does not abort the batch; the
// batch as a whole is deliberately not atomic.
func (s *AllocationService) BulkAllocate(tenantID uint, pairs []AllocationPair, remarks string) BulkAllocationResult {
	result := BulkAllocationResult{
		Results: []models.RoomAllocation{},
		Errors:  []BulkAllocationError{},
	}
	for _, pair := range pairs {
		allocation, err := s.CreateAllocation(tenantID, pair.StudentID, pair.RoomID, remarks)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, BulkAllocationError{
				StudentID: pair.StudentID,
				RoomID:    pair.RoomID,
				Error:     err.Error(),
			})
			continue
		}
		result.Successful++
		result.Results = append(result.Results, allocation)
	}
	return result
}

// StudentAllocationHistory returns all allocations for a student, newest
// first. Rooms are loaded unscoped so history survives room deletion.
func (s *AllocationService) StudentAllocationHistory(tenantID, studentID uint) ([]AllocationHistoryEntry, error) {
	var student models.Student
	if err := s.DB.Where("id = ? AND tenant_id = ?", studentID, tenantID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Student not found")
		}
		return nil, err
	}

	var allocations []models.RoomAllocation
	if err := s.DB.
		Preload("Room", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Preload("Room.Floor", func(db *gorm.DB) *gorm.DB { return db.Unscoped() }).
		Where("student_id = ? AND tenant_id = ?", studentID, tenantID).
		Order("allocated_date DESC, id DESC").
		Find(&allocations).Error; err != nil {
		return nil, err
	}

	entries := make([]AllocationHistoryEntry, 0, len(allocations))
	for _, a := range allocations {
		entry := AllocationHistoryEntry{
			RoomNumber:    a.Room.RoomNumber,
			Floor:         a.Room.Floor.FloorNumber,
			AllocatedDate: a.AllocatedDate,
			CheckoutDate:  a.CheckoutDate,
			Status:        a.Status,
		}
		if a.CheckoutDate != nil {
			days := durationDays(a.AllocatedDate, *a.CheckoutDate)
			entry.DurationDays = &days
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// durationDays is the whole-day span between allocation and checkout.
func durationDays(allocated, checkout time.Time) int {
	return int(checkout.Sub(allocated).Hours() / 24)
}

func (s *AllocationService) lockRoom(tx *gorm.DB, tenantID, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND tenant_id = ?", roomID, tenantID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundf("Room not found")
		}
		return nil, err
	}
	return &room, nil
}

// lockRoomPair locks two rooms in ascending id order and returns them as
// (first, second) matching the argument order.
func (s *AllocationService) lockRoomPair(tx *gorm.DB, tenantID, firstID, secondID uint) (*models.Room, *models.Room, error) {
	lowID, highID := firstID, secondID
	if lowID > highID {
		lowID, highID = highID, lowID
	}
	low, err := s.lockRoom(tx, tenantID, lowID)
	if err != nil {
		return nil, nil, err
	}
	high, err := s.lockRoom(tx, tenantID, highID)
	if err != nil {
		return nil, nil, err
	}
	if firstID == lowID {
		return low, high, nil
	}
	return high, low, nil
}

// refreshRoomOccupancy recomputes Room.Occupied from the ACTIVE ledger count
// and rolls the floor/building occupied-room aggregates, all inside the
// caller's transaction. The room row must already be locked.
func (s *AllocationService) refreshRoomOccupancy(tx *gorm.DB, room *models.Room) error {
	var active int64
	if err := tx.Model(&models.RoomAllocation{}).
		Where("room_id = ? AND status = ?", room.ID, models.AllocationStatusActive).
		Count(&active).Error; err != nil {
		return err
	}

	occupied := int(active)
	status := deriveRoomStatus(room.Status, occupied, room.Capacity)
	if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
		Updates(map[string]interface{}{"occupied": occupied, "status": status}).Error; err != nil {
		return err
	}
	room.Occupied = occupied
	room.Status = status

	return refreshOccupancyAggregates(tx, room.FloorID, room.BuildingID)
}

// refreshOccupancyAggregates recounts rooms with occupants for the floor and
// building presentation counters.
func refreshOccupancyAggregates(tx *gorm.DB, floorID, buildingID uint) error {
	var floorOccupied int64
	if err := tx.Model(&models.Room{}).
		Where("floor_id = ? AND occupied > 0", floorID).
		Count(&floorOccupied).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Floor{}).Where("id = ?", floorID).
		Update("occupied_rooms", floorOccupied).Error; err != nil {
		return err
	}

	var buildingOccupied int64
	if err := tx.Model(&models.Room{}).
		Where("building_id = ? AND occupied > 0", buildingID).
		Count(&buildingOccupied).Error; err != nil {
		return err
	}
	return tx.Model(&models.Building{}).Where("id = ?", buildingID).
		Update("occupied_rooms", buildingOccupied).Error
}
