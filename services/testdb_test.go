package services

import (
	"fmt"
	"os"
	"testing"

	"hostel-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens the database named by TEST_MYSQL_DSN, migrating the full
// schema. Tests that need a live database skip when the variable is unset.
// Each test works inside its own freshly created tenant, so tests do not
// interfere with each other or need truncation.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set; skipping database-backed test")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Tenant{},
		&models.Admin{},
		&models.Student{},
		&models.Building{},
		&models.Floor{},
		&models.Room{},
		&models.RoomAllocation{},
		&models.Complaint{},
		&models.MaintenanceRequest{},
		&models.VisitorLog{},
		&models.Announcement{},
		&models.Event{},
		&models.Fee{},
		&models.Payment{},
	))

	return db
}

// fixture is one tenant's worth of structure: a building with one floor.
type fixture struct {
	db       *gorm.DB
	tenant   models.Tenant
	building models.Building
	floor    models.Floor

	structure *StructureService
	students  *StudentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := setupTestDB(t)

	tenant := models.Tenant{
		Name:   "Test Hostel",
		Code:   "T-" + uuid.NewString()[:18],
		Status: "ACTIVE",
	}
	require.NoError(t, db.Create(&tenant).Error)

	f := &fixture{
		db:        db,
		tenant:    tenant,
		structure: NewStructureService(db),
		students:  NewStudentService(db),
	}

	building, err := f.structure.CreateBuilding(tenant.ID, BuildingInput{
		BuildingName: "Block A",
		BuildingCode: "A-" + uuid.NewString()[:8],
	})
	require.NoError(t, err)
	f.building = building

	floor, err := f.structure.CreateFloor(tenant.ID, FloorInput{
		BuildingID:  building.ID,
		FloorNumber: 1,
		FloorName:   "First Floor",
	})
	require.NoError(t, err)
	f.floor = floor

	return f
}

func (f *fixture) newRoom(t *testing.T, number string, roomType string, capacity int) models.Room {
	t.Helper()
	room, err := f.structure.CreateRoom(f.tenant.ID, RoomInput{
		BuildingID: f.building.ID,
		FloorID:    f.floor.ID,
		RoomNumber: number,
		RoomType:   roomType,
		Capacity:   capacity,
	})
	require.NoError(t, err)
	return room
}

func (f *fixture) newStudent(t *testing.T, name string) models.Student {
	t.Helper()
	student, err := f.students.CreateStudent(f.tenant.ID, StudentInput{
		FullName: name,
		Email:    fmt.Sprintf("%s@test.local", uuid.NewString()),
	})
	require.NoError(t, err)
	return student
}

func (f *fixture) reloadRoom(t *testing.T, roomID uint) models.Room {
	t.Helper()
	var room models.Room
	require.NoError(t, f.db.First(&room, roomID).Error)
	return room
}

func (f *fixture) reloadFloor(t *testing.T, floorID uint) models.Floor {
	t.Helper()
	var floor models.Floor
	require.NoError(t, f.db.First(&floor, floorID).Error)
	return floor
}

func (f *fixture) reloadBuilding(t *testing.T, buildingID uint) models.Building {
	t.Helper()
	var building models.Building
	require.NoError(t, f.db.First(&building, buildingID).Error)
	return building
}

// activeLedgerCount is the authoritative occupancy for a room.
func (f *fixture) activeLedgerCount(t *testing.T, roomID uint) int {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&models.RoomAllocation{}).
		Where("room_id = ? AND status = ?", roomID, models.AllocationStatusActive).
		Count(&n).Error)
	return int(n)
}
