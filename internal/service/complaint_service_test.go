package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/service"
)

func TestRaiseComplaintDefaultsToOpen(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)

	room := mustCreateRoom(t, db, "A-101", 2, 5000)
	tenant := mustCreateTenant(t, db, "T1")

	complaint, err := svc.RaiseComplaint(service.RaiseComplaintRequest{
		TenantID:    tenant.ID.String(),
		RoomID:      room.ID.String(),
		IssueType:   "Water",
		Description: "No water",
	})
	require.NoError(t, err)
	assert.Equal(t, model.ComplaintStatusOpen, complaint.Status)
	assert.False(t, complaint.CreatedAt.IsZero())
}

func TestRaiseComplaintValidatesReferences(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)

	room := mustCreateRoom(t, db, "A-101", 2, 5000)
	tenant := mustCreateTenant(t, db, "T1")

	_, err := svc.RaiseComplaint(service.RaiseComplaintRequest{
		TenantID:  uuid.NewString(),
		RoomID:    room.ID.String(),
		IssueType: "Water",
	})
	require.ErrorIs(t, err, service.ErrTenantNotFound)

	_, err = svc.RaiseComplaint(service.RaiseComplaintRequest{
		TenantID:  tenant.ID.String(),
		RoomID:    uuid.NewString(),
		IssueType: "Water",
	})
	require.ErrorIs(t, err, service.ErrRoomNotFound)
}

func TestUpdateComplaintStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)

	room := mustCreateRoom(t, db, "A-101", 2, 5000)
	tenant := mustCreateTenant(t, db, "T1")

	complaint, err := svc.RaiseComplaint(service.RaiseComplaintRequest{
		TenantID:    tenant.ID.String(),
		RoomID:      room.ID.String(),
		IssueType:   "Water",
		Description: "No water",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(complaint.ID.String(), model.ComplaintStatusClosed)
	require.NoError(t, err)

	listed, err := svc.ListForTenant(tenant.ID.String())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, model.ComplaintStatusClosed, listed[0].Status)
	assert.Equal(t, "Water", listed[0].IssueType)
}

func TestUpdateComplaintStatusRejectsUnknownValue(t *testing.T) {
	db := newTestDB(t)
	svc := newComplaintService(db)

	room := mustCreateRoom(t, db, "A-101", 2, 5000)
	tenant := mustCreateTenant(t, db, "T1")

	complaint, err := svc.RaiseComplaint(service.RaiseComplaintRequest{
		TenantID:  tenant.ID.String(),
		RoomID:    room.ID.String(),
		IssueType: "Water",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(complaint.ID.String(), "Resolved")
	require.ErrorIs(t, err, service.ErrInvalidComplaintStatus)

	_, err = svc.UpdateStatus(uuid.NewString(), model.ComplaintStatusClosed)
	require.ErrorIs(t, err, service.ErrComplaintNotFound)
}
