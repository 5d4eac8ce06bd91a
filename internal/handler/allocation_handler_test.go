package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hostel-system/hostel-management/internal/handler"
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"github.com/hostel-system/hostel-management/internal/service"
)

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	roomRepo := repository.NewRoomRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	userRepo := repository.NewUserRepository(db)

	roomHandler := handler.NewRoomHandler(service.NewRoomService(roomRepo))
	allocationHandler := handler.NewAllocationHandler(service.NewAllocationService(roomRepo, tenantRepo))
	paymentHandler := handler.NewPaymentHandler(service.NewPaymentService(paymentRepo, tenantRepo))
	complaintHandler := handler.NewComplaintHandler(service.NewComplaintService(complaintRepo, tenantRepo, roomRepo))
	tenantHandler := handler.NewTenantHandler(service.NewTenantService(tenantRepo, userRepo))

	r := gin.New()
	r.POST("/add-room", roomHandler.AddRoom)
	r.GET("/rooms", roomHandler.ListRooms)
	r.POST("/allocate-room", allocationHandler.AllocateRoom)
	r.POST("/pay-rent", paymentHandler.PayRent)
	r.PUT("/update-rent-status/:paymentId", paymentHandler.UpdateRentStatus)
	r.PUT("/approve-rent/:paymentId", paymentHandler.ApproveRent)
	r.PUT("/update-complaint/:id", complaintHandler.UpdateComplaint)
	r.PUT("/update-tenant/:tenantId", tenantHandler.UpdateTenant)

	return &testEnv{db: db, router: r}
}

func (e *testEnv) post(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	return e.do(t, http.MethodPost, path, body)
}

func (e *testEnv) put(t *testing.T, path string, body interface{}) *httptest.ResponseRecorder {
	return e.do(t, http.MethodPut, path, body)
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) createRoom(t *testing.T, number string, capacity int) *model.Room {
	t.Helper()
	room, err := service.NewRoomService(repository.NewRoomRepository(e.db)).CreateRoom(service.CreateRoomRequest{
		RoomNumber: number,
		Capacity:   capacity,
		Rent:       5000,
	})
	require.NoError(t, err)
	return room
}

func (e *testEnv) createTenant(t *testing.T, name string) *model.Tenant {
	t.Helper()
	tenant := &model.Tenant{Name: name}
	require.NoError(t, repository.NewTenantRepository(e.db).Create(tenant))
	return tenant
}

func TestAddRoomRejectsDuplicateNumber(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/add-room", gin.H{"roomNumber": "A-101", "capacity": 2, "rent": 5000})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.post(t, "/add-room", gin.H{"roomNumber": "A-101", "capacity": 3, "rent": 6000})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddRoomAcceptsZeroRent(t *testing.T) {
	env := newTestEnv(t)

	// A free room is legitimate; zero must not be treated as a missing field.
	rec := env.post(t, "/add-room", gin.H{"roomNumber": "F-101", "capacity": 2, "rent": 0})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPayRentAcceptsZeroAmount(t *testing.T) {
	env := newTestEnv(t)
	tenant := env.createTenant(t, "T1")

	rec := env.post(t, "/pay-rent", gin.H{"tenantId": tenant.ID.String(), "month": "2024-01", "amount": 0})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateRoutesRejectMalformedIDs(t *testing.T) {
	env := newTestEnv(t)

	rec := env.put(t, "/update-rent-status/not-a-uuid", gin.H{"status": "Pending"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.put(t, "/approve-rent/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.put(t, "/update-complaint/not-a-uuid", gin.H{"status": "Closed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.put(t, "/update-tenant/not-a-uuid", gin.H{"name": "Renamed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddRoomRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.post(t, "/add-room", gin.H{"roomNumber": "A-101"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAllocateRoomStatusCodes(t *testing.T) {
	env := newTestEnv(t)

	room := env.createRoom(t, "A-101", 1)
	t1 := env.createTenant(t, "T1")
	t2 := env.createTenant(t, "T2")

	rec := env.post(t, "/allocate-room", gin.H{"tenantId": t1.ID.String(), "roomId": room.ID.String()})
	assert.Equal(t, http.StatusOK, rec.Code)

	// Room is now full.
	rec = env.post(t, "/allocate-room", gin.H{"tenantId": t2.ID.String(), "roomId": room.ID.String()})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Room is already full")

	rec = env.post(t, "/allocate-room", gin.H{"tenantId": t2.ID.String(), "roomId": uuid.NewString()})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.post(t, "/allocate-room", gin.H{"tenantId": uuid.NewString(), "roomId": room.ID.String()})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
