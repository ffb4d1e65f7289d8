package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/require"
)

// Adding and removing floors keeps Building.TotalFloors in step.
func TestFloorLifecycleRecomputesBuildingTotals(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, 1, f.reloadBuilding(t, f.building.ID).TotalFloors)

	floor2, err := f.structure.CreateFloor(f.tenant.ID, FloorInput{
		BuildingID:  f.building.ID,
		FloorNumber: 2,
		FloorName:   "Second Floor",
		Status:      models.FloorStatusActive,
	})
	require.NoError(t, err)
	require.Equal(t, 2, f.reloadBuilding(t, f.building.ID).TotalFloors)

	// Duplicate floor number in the same building is refused.
	_, err = f.structure.CreateFloor(f.tenant.ID, FloorInput{
		BuildingID:  f.building.ID,
		FloorNumber: 2,
		Status:      models.FloorStatusActive,
	})
	require.Equal(t, KindConflict, KindOf(err))

	require.NoError(t, f.structure.DeleteFloor(f.tenant.ID, floor2.ID))
	require.Equal(t, 1, f.reloadBuilding(t, f.building.ID).TotalFloors)
}

func TestGetAndUpdateFloor(t *testing.T) {
	f := newFixture(t)

	got, err := f.structure.GetFloor(f.tenant.ID, f.floor.ID)
	require.NoError(t, err)
	require.Equal(t, f.floor.FloorNumber, got.FloorNumber)

	name := "Renamed Wing"
	status := models.FloorStatusUnderMaintenance
	updated, err := f.structure.UpdateFloor(f.tenant.ID, f.floor.ID, FloorUpdateInput{
		FloorName: &name,
		Status:    &status,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed Wing", updated.FloorName)
	require.Equal(t, models.FloorStatusUnderMaintenance, updated.Status)

	bogus := "CONDEMNED"
	_, err = f.structure.UpdateFloor(f.tenant.ID, f.floor.ID, FloorUpdateInput{Status: &bogus})
	require.Equal(t, KindValidation, KindOf(err))

	other := newFixture(t)
	_, err = f.structure.GetFloor(other.tenant.ID, f.floor.ID)
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestRoomLifecycleRecomputesCounts(t *testing.T) {
	f := newFixture(t)

	room := f.newRoom(t, "110", models.RoomTypeSingle, 1)
	f.newRoom(t, "111", models.RoomTypeDouble, 2)

	require.Equal(t, 2, f.reloadFloor(t, f.floor.ID).TotalRooms)
	require.Equal(t, 2, f.reloadBuilding(t, f.building.ID).TotalRooms)

	require.NoError(t, f.structure.DeleteRoom(f.tenant.ID, room.ID))
	require.Equal(t, 1, f.reloadFloor(t, f.floor.ID).TotalRooms)
	require.Equal(t, 1, f.reloadBuilding(t, f.building.ID).TotalRooms)
}

func TestDeleteRefusalsForNonEmptyParents(t *testing.T) {
	f := newFixture(t)
	svc := NewAllocationService(f.db)

	room := f.newRoom(t, "120", models.RoomTypeSingle, 1)
	student := f.newStudent(t, "Stay Put")
	allocation, err := svc.CreateAllocation(f.tenant.ID, student.ID, room.ID, "")
	require.NoError(t, err)

	err = f.structure.DeleteRoom(f.tenant.ID, room.ID)
	require.Equal(t, KindConflict, KindOf(err))

	err = f.structure.DeleteFloor(f.tenant.ID, f.floor.ID)
	require.Equal(t, KindConflict, KindOf(err))

	err = f.structure.DeleteBuilding(f.tenant.ID, f.building.ID)
	require.Equal(t, KindConflict, KindOf(err))

	// After checkout the CHECKED_OUT ledger row does not block deletion.
	_, err = svc.DeallocateStudent(f.tenant.ID, allocation.ID)
	require.NoError(t, err)
	require.NoError(t, f.structure.DeleteRoom(f.tenant.ID, room.ID))
}

func TestUpdateRoomCapacity(t *testing.T) {
	f := newFixture(t)
	svc := NewAllocationService(f.db)

	room := f.newRoom(t, "130", models.RoomTypeDouble, 2)
	s1 := f.newStudent(t, "Cap One")
	s2 := f.newStudent(t, "Cap Two")
	_, err := svc.CreateAllocation(f.tenant.ID, s1.ID, room.ID, "")
	require.NoError(t, err)
	_, err = svc.CreateAllocation(f.tenant.ID, s2.ID, room.ID, "")
	require.NoError(t, err)

	// Capacity cannot drop below the current occupant count.
	one := 1
	_, err = f.structure.UpdateRoom(f.tenant.ID, room.ID, RoomUpdateInput{Capacity: &one})
	require.Equal(t, KindConflict, KindOf(err))

	// Growing capacity re-derives FULL back to OCCUPIED.
	three := 3
	updated, err := f.structure.UpdateRoom(f.tenant.ID, room.ID, RoomUpdateInput{Capacity: &three})
	require.NoError(t, err)
	require.Equal(t, 3, updated.Capacity)
	require.Equal(t, models.RoomStatusOccupied, updated.Status)
}

func TestSetRoomStatusOverrides(t *testing.T) {
	f := newFixture(t)
	svc := NewAllocationService(f.db)

	room := f.newRoom(t, "140", models.RoomTypeDouble, 2)
	student := f.newStudent(t, "Override Case")
	allocation, err := svc.CreateAllocation(f.tenant.ID, student.ID, room.ID, "")
	require.NoError(t, err)

	got, err := f.structure.SetRoomStatus(f.tenant.ID, room.ID, models.RoomStatusMaintenance)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusMaintenance, got.Status)

	// The override survives occupancy changes underneath it.
	_, err = svc.DeallocateStudent(f.tenant.ID, allocation.ID)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusMaintenance, f.reloadRoom(t, room.ID).Status)

	// Clearing the override re-derives from live occupancy.
	got, err = f.structure.SetRoomStatus(f.tenant.ID, room.ID, models.RoomStatusAvailable)
	require.NoError(t, err)
	require.Equal(t, models.RoomStatusAvailable, got.Status)

	_, err = f.structure.SetRoomStatus(f.tenant.ID, room.ID, "NOT_A_STATUS")
	require.Equal(t, KindValidation, KindOf(err))
}

func TestReservedRoomAcceptsAllocations(t *testing.T) {
	f := newFixture(t)
	svc := NewAllocationService(f.db)

	room := f.newRoom(t, "150", models.RoomTypeSingle, 1)
	_, err := f.structure.SetRoomStatus(f.tenant.ID, room.ID, models.RoomStatusReserved)
	require.NoError(t, err)

	student := f.newStudent(t, "Reserved Guest")
	_, err = svc.CreateAllocation(f.tenant.ID, student.ID, room.ID, "")
	require.NoError(t, err)

	// Allocation into a RESERVED room derives it to a live status.
	require.Equal(t, models.RoomStatusFull, f.reloadRoom(t, room.ID).Status)
}
