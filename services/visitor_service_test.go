package services

import (
	"testing"

	"hostel-backend/models"

	"github.com/stretchr/testify/require"
)

func TestVisitorCheckInAndOut(t *testing.T) {
	f := newFixture(t)
	svc := NewVisitorService(f.db)
	student := f.newStudent(t, "Host Student")

	visit, err := svc.CheckIn(f.tenant.ID, VisitorCheckInInput{
		StudentID:   student.ID,
		VisitorName: "  Uma Devi ",
		Relation:    "mother",
		Purpose:     "weekend visit",
	})
	require.NoError(t, err)
	require.Equal(t, models.VisitStatusIn, visit.Status)
	require.Equal(t, "Uma Devi", visit.VisitorName)
	require.Nil(t, visit.CheckOutTime)

	visit, err = svc.CheckOut(f.tenant.ID, visit.ID)
	require.NoError(t, err)
	require.Equal(t, models.VisitStatusOut, visit.Status)
	require.NotNil(t, visit.CheckOutTime)

	_, err = svc.CheckOut(f.tenant.ID, visit.ID)
	require.Equal(t, KindConflict, KindOf(err))
}

func TestVisitorCheckInUnknownStudent(t *testing.T) {
	f := newFixture(t)
	svc := NewVisitorService(f.db)

	_, err := svc.CheckIn(f.tenant.ID, VisitorCheckInInput{StudentID: 999999, VisitorName: "Nobody"})
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestListVisitsFilters(t *testing.T) {
	f := newFixture(t)
	svc := NewVisitorService(f.db)
	s1 := f.newStudent(t, "Visited One")
	s2 := f.newStudent(t, "Visited Two")

	v1, err := svc.CheckIn(f.tenant.ID, VisitorCheckInInput{StudentID: s1.ID, VisitorName: "Guest A"})
	require.NoError(t, err)
	_, err = svc.CheckIn(f.tenant.ID, VisitorCheckInInput{StudentID: s2.ID, VisitorName: "Guest B"})
	require.NoError(t, err)
	_, err = svc.CheckOut(f.tenant.ID, v1.ID)
	require.NoError(t, err)

	in, err := svc.ListVisits(f.tenant.ID, models.VisitStatusIn, 0)
	require.NoError(t, err)
	require.Len(t, in, 1)
	require.Equal(t, "Guest B", in[0].VisitorName)

	byStudent, err := svc.ListVisits(f.tenant.ID, "", s1.ID)
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	require.Equal(t, models.VisitStatusOut, byStudent[0].Status)
}
