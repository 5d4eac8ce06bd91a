package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/service"
	"github.com/hostel-system/hostel-management/pkg/utils"
)

// AllocationHandler exposes the room assignment workflow. Both the
// /allocate-room and /assign-room routes land here.
type AllocationHandler struct {
	allocationService *service.AllocationService
}

func NewAllocationHandler(allocationService *service.AllocationService) *AllocationHandler {
	return &AllocationHandler{allocationService: allocationService}
}

// AllocateRoom handles POST /allocate-room and POST /assign-room.
func (h *AllocationHandler) AllocateRoom(c *gin.Context) {
	var req service.AllocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	room, err := h.allocationService.Allocate(req.TenantID, req.RoomID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			utils.Error(c, utils.ErrCodeNotFound, "Room not found")
		case errors.Is(err, service.ErrTenantNotFound):
			utils.Error(c, utils.ErrCodeNotFound, "Tenant not found")
		case errors.Is(err, service.ErrRoomFull):
			utils.Error(c, utils.ErrCodeValidationFailed, "Room is already full")
		default:
			utils.Error(c, utils.ErrCodeInternalError, "failed to allocate room: %v", err)
		}
		return
	}

	utils.Success(c, http.StatusOK, room)
}
