package service

import (
	"github.com/google/uuid"
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"gorm.io/gorm"
)

// PaymentService is the rent ledger. Records are append-only; a record created
// through RecordPayment starts as Paid and only an explicit status update can
// move it to Pending.
type PaymentService struct {
	paymentRepo *repository.PaymentRepository
	tenantRepo  *repository.TenantRepository
}

func NewPaymentService(paymentRepo *repository.PaymentRepository, tenantRepo *repository.TenantRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		tenantRepo:  tenantRepo,
	}
}

// RecordPaymentRequest is the pay-rent payload. Month is a label like "2024-05".
type RecordPaymentRequest struct {
	TenantID string  `json:"tenantId" binding:"required"`
	Month    string  `json:"month" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
}

// MonthlyCollection is the monthly-rent report: the Paid records of one month
// and their total.
type MonthlyCollection struct {
	Month          string           `json:"month"`
	TotalCollected float64          `json:"totalCollected"`
	Payments       []*model.Payment `json:"payments"`
}

func (s *PaymentService) RecordPayment(req RecordPaymentRequest) (*model.Payment, error) {
	tenant, err := s.tenantRepo.GetByID(req.TenantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	payment := &model.Payment{
		TenantID: tenant.ID,
		Month:    req.Month,
		Amount:   req.Amount,
		Status:   model.PaymentStatusPaid,
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// RentHistory returns a tenant's payments in non-increasing payment-date order.
func (s *PaymentService) RentHistory(tenantID string) ([]*model.Payment, error) {
	if _, err := uuid.Parse(tenantID); err != nil {
		return nil, ErrTenantNotFound
	}
	return s.paymentRepo.ListByTenant(tenantID)
}

func (s *PaymentService) ListAllPayments() ([]*model.Payment, error) {
	return s.paymentRepo.ListAll()
}

// UpdateStatus overwrites a payment's status. Only the two recognized values
// are accepted; anything else is rejected at this boundary.
func (s *PaymentService) UpdateStatus(paymentID, status string) (*model.Payment, error) {
	if !model.ValidPaymentStatus(status) {
		return nil, ErrInvalidPaymentStatus
	}

	payment, err := s.paymentRepo.GetByID(paymentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	payment.Status = status
	if err := s.paymentRepo.Update(payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// ApprovePayment marks a pending payment as Paid.
func (s *PaymentService) ApprovePayment(paymentID string) (*model.Payment, error) {
	return s.UpdateStatus(paymentID, model.PaymentStatusPaid)
}

// Collection sums the Paid records of a month and returns them with the total.
// Pending records are excluded from both the list and the sum.
func (s *PaymentService) Collection(month string) (*MonthlyCollection, error) {
	payments, err := s.paymentRepo.ListByMonthAndStatus(month, model.PaymentStatusPaid)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, p := range payments {
		total += p.Amount
	}

	return &MonthlyCollection{
		Month:          month,
		TotalCollected: total,
		Payments:       payments,
	}, nil
}
