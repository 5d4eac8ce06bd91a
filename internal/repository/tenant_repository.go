package repository

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"gorm.io/gorm"
)

type TenantRepository struct {
	db *gorm.DB
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

func (r *TenantRepository) Create(tenant *model.Tenant) error {
	return r.db.Create(tenant).Error
}

func (r *TenantRepository) GetByID(id string) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := r.db.Where("id = ?", id).First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// GetByUserID finds the tenant profile linked to a login user.
func (r *TenantRepository) GetByUserID(userID string) (*model.Tenant, error) {
	var tenant model.Tenant
	if err := r.db.Preload("Room").Where("user_id = ?", userID).First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// ListWithRooms returns all tenants with their room resolved for display.
func (r *TenantRepository) ListWithRooms() ([]*model.Tenant, error) {
	var tenants []*model.Tenant
	err := r.db.Preload("Room").Order("joining_date").Find(&tenants).Error
	return tenants, err
}

func (r *TenantRepository) Update(tenant *model.Tenant) error {
	return r.db.Save(tenant).Error
}

func (r *TenantRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Tenant{}).Count(&total).Error
	return total, err
}

func (r *TenantRepository) GetDB() *gorm.DB {
	return r.db
}
