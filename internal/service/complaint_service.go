package service

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"gorm.io/gorm"
)

// ComplaintService tracks issues raised by tenants against their rooms.
type ComplaintService struct {
	complaintRepo *repository.ComplaintRepository
	tenantRepo    *repository.TenantRepository
	roomRepo      *repository.RoomRepository
}

func NewComplaintService(
	complaintRepo *repository.ComplaintRepository,
	tenantRepo *repository.TenantRepository,
	roomRepo *repository.RoomRepository,
) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		tenantRepo:    tenantRepo,
		roomRepo:      roomRepo,
	}
}

// RaiseComplaintRequest is the raise-complaint payload.
type RaiseComplaintRequest struct {
	TenantID    string `json:"tenantId" binding:"required"`
	RoomID      string `json:"roomId" binding:"required"`
	IssueType   string `json:"issueType" binding:"required"`
	Description string `json:"description"`
}

func (s *ComplaintService) RaiseComplaint(req RaiseComplaintRequest) (*model.Complaint, error) {
	tenant, err := s.tenantRepo.GetByID(req.TenantID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	room, err := s.roomRepo.GetByID(req.RoomID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	complaint := &model.Complaint{
		TenantID:    tenant.ID,
		RoomID:      room.ID,
		IssueType:   req.IssueType,
		Description: req.Description,
		Status:      model.ComplaintStatusOpen,
	}

	if err := s.complaintRepo.Create(complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}

func (s *ComplaintService) ListComplaints() ([]*model.Complaint, error) {
	return s.complaintRepo.ListAll()
}

func (s *ComplaintService) ListForTenant(tenantID string) ([]*model.Complaint, error) {
	return s.complaintRepo.ListByTenant(tenantID)
}

// UpdateStatus overwrites a complaint's status. Any recognized value may
// follow any other; unrecognized values are rejected.
func (s *ComplaintService) UpdateStatus(complaintID, status string) (*model.Complaint, error) {
	if !model.ValidComplaintStatus(status) {
		return nil, ErrInvalidComplaintStatus
	}

	complaint, err := s.complaintRepo.GetByID(complaintID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}

	complaint.Status = status
	if err := s.complaintRepo.Update(complaint); err != nil {
		return nil, err
	}

	return complaint, nil
}
