package service_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"github.com/hostel-system/hostel-management/internal/service"
)

// newTestDB opens a fresh shared in-memory sqlite database with the full
// schema migrated. Each test gets its own database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Room{},
		&model.Tenant{},
		&model.Payment{},
		&model.Complaint{},
		&repository.User{},
	))

	return db
}

func newRoomService(db *gorm.DB) *service.RoomService {
	return service.NewRoomService(repository.NewRoomRepository(db))
}

func newAllocationService(db *gorm.DB) *service.AllocationService {
	return service.NewAllocationService(
		repository.NewRoomRepository(db),
		repository.NewTenantRepository(db),
	)
}

func newTenantService(db *gorm.DB) *service.TenantService {
	return service.NewTenantService(
		repository.NewTenantRepository(db),
		repository.NewUserRepository(db),
	)
}

func newPaymentService(db *gorm.DB) *service.PaymentService {
	return service.NewPaymentService(
		repository.NewPaymentRepository(db),
		repository.NewTenantRepository(db),
	)
}

func newComplaintService(db *gorm.DB) *service.ComplaintService {
	return service.NewComplaintService(
		repository.NewComplaintRepository(db),
		repository.NewTenantRepository(db),
		repository.NewRoomRepository(db),
	)
}

func mustCreateRoom(t *testing.T, db *gorm.DB, roomNumber string, capacity int, rent float64) *model.Room {
	t.Helper()
	room, err := newRoomService(db).CreateRoom(service.CreateRoomRequest{
		RoomNumber: roomNumber,
		Capacity:   capacity,
		Rent:       rent,
	})
	require.NoError(t, err)
	return room
}

func mustCreateTenant(t *testing.T, db *gorm.DB, name string) *model.Tenant {
	t.Helper()
	tenant, err := newTenantService(db).CreateTenant(service.CreateTenantRequest{
		Name: name,
	})
	require.NoError(t, err)
	return tenant
}

func reloadRoom(t *testing.T, db *gorm.DB, id uuid.UUID) *model.Room {
	t.Helper()
	room, err := repository.NewRoomRepository(db).GetByID(id.String())
	require.NoError(t, err)
	return room
}
