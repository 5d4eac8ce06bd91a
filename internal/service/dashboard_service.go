package service

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
)

// DashboardService aggregates counters for the admin dashboard. Every call
// recomputes from the store; nothing is cached.
type DashboardService struct {
	roomRepo    *repository.RoomRepository
	tenantRepo  *repository.TenantRepository
	paymentRepo *repository.PaymentRepository
}

func NewDashboardService(
	roomRepo *repository.RoomRepository,
	tenantRepo *repository.TenantRepository,
	paymentRepo *repository.PaymentRepository,
) *DashboardService {
	return &DashboardService{
		roomRepo:    roomRepo,
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
	}
}

// DashboardSummary mirrors the admin-dashboard response shape.
type DashboardSummary struct {
	TotalRooms         int64   `json:"totalRooms"`
	AvailableRooms     int64   `json:"availableRooms"`
	TotalTenants       int64   `json:"totalTenants"`
	TotalRentCollected float64 `json:"totalRentCollected"`
	PendingPayments    int64   `json:"pendingPayments"`
}

func (s *DashboardService) Summary() (*DashboardSummary, error) {
	totalRooms, err := s.roomRepo.Count()
	if err != nil {
		return nil, err
	}

	availableRooms, err := s.roomRepo.CountByStatus(model.RoomStatusAvailable)
	if err != nil {
		return nil, err
	}

	totalTenants, err := s.tenantRepo.Count()
	if err != nil {
		return nil, err
	}

	totalRentCollected, err := s.paymentRepo.SumAmountByStatus(model.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}

	pendingPayments, err := s.paymentRepo.CountByStatus(model.PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalRooms:         totalRooms,
		AvailableRooms:     availableRooms,
		TotalTenants:       totalTenants,
		TotalRentCollected: totalRentCollected,
		PendingPayments:    pendingPayments,
	}, nil
}
