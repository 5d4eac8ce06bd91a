package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/service"
)

func TestCreateRoomInitialState(t *testing.T) {
	db := newTestDB(t)

	room := mustCreateRoom(t, db, "A-101", 3, 4500)
	assert.Equal(t, 0, room.OccupiedBeds)
	assert.Equal(t, model.RoomStatusAvailable, room.Status)
	assert.NotEqual(t, uuid.Nil, room.ID)
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	db := newTestDB(t)
	svc := newRoomService(db)

	mustCreateRoom(t, db, "A-101", 3, 4500)

	_, err := svc.CreateRoom(service.CreateRoomRequest{
		RoomNumber: "A-101",
		Capacity:   2,
		Rent:       5000,
	})
	require.ErrorIs(t, err, service.ErrRoomAlreadyExists)
}

func TestGetRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newRoomService(db)

	_, err := svc.GetRoom(uuid.NewString())
	require.ErrorIs(t, err, service.ErrRoomNotFound)
}
