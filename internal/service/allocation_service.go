package service

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"gorm.io/gorm"
)

// AllocationService links tenants to rooms while keeping room occupancy
// consistent. Both writes happen in one transaction: the bed is claimed with a
// conditional increment (occupied_beds < capacity) so concurrent allocations
// against the same room cannot oversubscribe it, and a failure on either
// entity rolls back the other. There is no deallocate operation; the only way
// a bed is freed is by reassigning its tenant to another room.
type AllocationService struct {
	roomRepo   *repository.RoomRepository
	tenantRepo *repository.TenantRepository
}

func NewAllocationService(roomRepo *repository.RoomRepository, tenantRepo *repository.TenantRepository) *AllocationService {
	return &AllocationService{
		roomRepo:   roomRepo,
		tenantRepo: tenantRepo,
	}
}

// AllocateRequest is the allocate-room / assign-room payload.
type AllocateRequest struct {
	TenantID string `json:"tenantId" binding:"required"`
	RoomID   string `json:"roomId" binding:"required"`
}

// Allocate assigns the tenant a bed in the given room. If the tenant already
// occupies another room, that room is vacated in the same transaction.
// Reallocating a tenant into their current room is a no-op.
func (s *AllocationService) Allocate(tenantID, roomID string) (*model.Room, error) {
	err := s.roomRepo.GetDB().Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.Where("id = ?", roomID).First(&room).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrRoomNotFound
			}
			return err
		}

		var tenant model.Tenant
		if err := tx.Where("id = ?", tenantID).First(&tenant).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrTenantNotFound
			}
			return err
		}

		// The tenant already holds a bed here, including when that bed is
		// the last one. Checked before the full-room rejection.
		if tenant.RoomID != nil && tenant.RoomID.String() == room.ID.String() {
			return nil
		}

		// Checked before any mutation so a full room rejects cleanly.
		if room.IsFull() {
			return ErrRoomFull
		}

		if tenant.RoomID != nil {
			if err := s.releaseBed(tx, tenant.RoomID.String()); err != nil {
				return err
			}
		}

		if err := s.claimBed(tx, roomID); err != nil {
			return err
		}

		tenant.RoomID = &room.ID
		return tx.Save(&tenant).Error
	})
	if err != nil {
		return nil, err
	}

	return s.roomRepo.GetByID(roomID)
}

// claimBed atomically takes one bed. The occupied_beds < capacity guard is the
// storage-level check that serializes racing allocations: whichever concurrent
// request loses the conditional update sees zero rows affected.
func (s *AllocationService) claimBed(tx *gorm.DB, roomID string) error {
	res := tx.Model(&model.Room{}).
		Where("id = ? AND occupied_beds < capacity", roomID).
		UpdateColumn("occupied_beds", gorm.Expr("occupied_beds + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRoomFull
	}
	return s.recalcStatus(tx, roomID)
}

// releaseBed frees one bed of the tenant's previous room.
func (s *AllocationService) releaseBed(tx *gorm.DB, roomID string) error {
	res := tx.Model(&model.Room{}).
		Where("id = ? AND occupied_beds > 0", roomID).
		UpdateColumn("occupied_beds", gorm.Expr("occupied_beds - 1"))
	if res.Error != nil {
		return res.Error
	}
	return s.recalcStatus(tx, roomID)
}

// recalcStatus rederives status from occupancy: Full iff occupied == capacity.
func (s *AllocationService) recalcStatus(tx *gorm.DB, roomID string) error {
	return tx.Model(&model.Room{}).
		Where("id = ?", roomID).
		UpdateColumn("status", gorm.Expr(
			"CASE WHEN occupied_beds >= capacity THEN ? ELSE ? END",
			model.RoomStatusFull, model.RoomStatusAvailable,
		)).Error
}
