package repository

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(payment *model.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepository) GetByID(id string) (*model.Payment, error) {
	var payment model.Payment
	if err := r.db.Where("id = ?", id).First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByTenant returns a tenant's payments, most recent first.
func (r *PaymentRepository) ListByTenant(tenantID string) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.Where("tenant_id = ?", tenantID).Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

// ListAll returns every payment with its tenant resolved for display.
func (r *PaymentRepository) ListAll() ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.Preload("Tenant").Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

// ListByMonthAndStatus returns payments for a billing month in a given status.
func (r *PaymentRepository) ListByMonthAndStatus(month, status string) ([]*model.Payment, error) {
	var payments []*model.Payment
	err := r.db.Where("month = ? AND status = ?", month, status).Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Update(payment *model.Payment) error {
	return r.db.Save(payment).Error
}

// SumAmountByStatus sums payment amounts across all records in a status.
func (r *PaymentRepository) SumAmountByStatus(status string) (float64, error) {
	var total float64
	err := r.db.Model(&model.Payment{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *PaymentRepository) CountByStatus(status string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Payment{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
