package service

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"gorm.io/gorm"
)

// TenantService manages tenant profiles. Profiles are created unassigned and
// only the allocation workflow ever links them to a room.
type TenantService struct {
	tenantRepo *repository.TenantRepository
	userRepo   *repository.UserRepository
}

func NewTenantService(tenantRepo *repository.TenantRepository, userRepo *repository.UserRepository) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
	}
}

// CreateTenantRequest is the add-tenant payload.
type CreateTenantRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateTenantRequest is the update-tenant payload. Name and phone are
// overwritten unconditionally; no other fields are touched.
type UpdateTenantRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

func (s *TenantService) CreateTenant(req CreateTenantRequest) (*model.Tenant, error) {
	tenant := &model.Tenant{
		Name:  req.Name,
		Phone: req.Phone,
	}

	if err := s.tenantRepo.Create(tenant); err != nil {
		return nil, err
	}

	return tenant, nil
}

func (s *TenantService) ListTenants() ([]*model.Tenant, error) {
	return s.tenantRepo.ListWithRooms()
}

func (s *TenantService) GetTenant(id string) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

// GetTenantByUser resolves the tenant profile linked to a login user.
func (s *TenantService) GetTenantByUser(userID string) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.GetByUserID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}
	return tenant, nil
}

func (s *TenantService) UpdateProfile(tenantID string, req UpdateTenantRequest) (*model.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(tenantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	tenant.Name = req.Name
	tenant.Phone = req.Phone

	if err := s.tenantRepo.Update(tenant); err != nil {
		return nil, err
	}

	return tenant, nil
}

// BackfillTenants creates a tenant profile for every tenant-role user that
// does not have one yet and returns how many were created.
func (s *TenantService) BackfillTenants() (int, error) {
	users, err := s.userRepo.ListByRole(model.RoleTenant)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, user := range users {
		if _, err := s.tenantRepo.GetByUserID(user.ID.String()); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			return created, err
		}

		userID := user.ID
		tenant := &model.Tenant{
			UserID: &userID,
			Name:   user.Name,
			Phone:  "",
		}
		if err := s.tenantRepo.Create(tenant); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
