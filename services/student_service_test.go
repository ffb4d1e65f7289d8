package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCreateStudentNormalizesAndRejectsDuplicates(t *testing.T) {
	f := newFixture(t)
	svc := NewStudentService(f.db)

	email := uuid.NewString() + "@students.example"
	student, err := svc.CreateStudent(f.tenant.ID, StudentInput{
		FullName: "  Ananya Singh  ",
		Email:    "  " + email + "  ",
		Phone:    "+919876543210",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.Equal(t, "Ananya Singh", student.FullName)
	require.Equal(t, email, student.Email)
	require.Equal(t, models.StudentStatusActive, student.Status)
	require.NotEqual(t, "s3cret-pass", student.Password)

	_, err = svc.CreateStudent(f.tenant.ID, StudentInput{
		FullName: "Someone Else",
		Email:    email,
	})
	require.Equal(t, KindConflict, KindOf(err))

	// The same email is fine under a different tenant.
	other := newFixture(t)
	_, err = svc.CreateStudent(other.tenant.ID, StudentInput{
		FullName: "Someone Else",
		Email:    email,
	})
	require.NoError(t, err)
}

func TestDeactivateStudentRequiresNoActiveAllocation(t *testing.T) {
	f := newFixture(t)
	students := NewStudentService(f.db)
	allocations := NewAllocationService(f.db)

	room := f.newRoom(t, "801", models.RoomTypeSingle, 1)
	student := f.newStudent(t, "Leaving Soon")

	allocation, err := allocations.CreateAllocation(f.tenant.ID, student.ID, room.ID, "")
	require.NoError(t, err)

	_, err = students.DeactivateStudent(f.tenant.ID, student.ID)
	require.Equal(t, KindConflict, KindOf(err))

	_, err = allocations.DeallocateStudent(f.tenant.ID, allocation.ID)
	require.NoError(t, err)

	got, err := students.DeactivateStudent(f.tenant.ID, student.ID)
	require.NoError(t, err)
	require.Equal(t, models.StudentStatusInactive, got.Status)

	// Inactive students cannot be allocated again.
	_, err = allocations.CreateAllocation(f.tenant.ID, student.ID, room.ID, "")
	require.Equal(t, KindConflict, KindOf(err))
}
