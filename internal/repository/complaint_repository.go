package repository

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"gorm.io/gorm"
)

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(complaint *model.Complaint) error {
	return r.db.Create(complaint).Error
}

func (r *ComplaintRepository) GetByID(id string) (*model.Complaint, error) {
	var complaint model.Complaint
	if err := r.db.Where("id = ?", id).First(&complaint).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

// ListAll returns every complaint with tenant and room resolved for display.
func (r *ComplaintRepository) ListAll() ([]*model.Complaint, error) {
	var complaints []*model.Complaint
	err := r.db.Preload("Tenant").Preload("Room").Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

// ListByTenant returns a tenant's complaints with the room resolved.
func (r *ComplaintRepository) ListByTenant(tenantID string) ([]*model.Complaint, error) {
	var complaints []*model.Complaint
	err := r.db.Preload("Room").Where("tenant_id = ?", tenantID).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *ComplaintRepository) Update(complaint *model.Complaint) error {
	return r.db.Save(complaint).Error
}
