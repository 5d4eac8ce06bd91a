package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/service"
	"github.com/hostel-system/hostel-management/pkg/utils"
)

// RoomHandler exposes the room inventory endpoints.
type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// AddRoom handles POST /add-room.
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, utils.ErrCodeValidationFailed, "invalid request: %v", err)
		return
	}

	room, err := h.roomService.CreateRoom(req)
	if err != nil {
		if errors.Is(err, service.ErrRoomAlreadyExists) {
			utils.Error(c, utils.ErrCodeValidationFailed, "Room with this number already exists")
			return
		}
		utils.Error(c, utils.ErrCodeInternalError, "failed to add room: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, room)
}

// ListRooms handles GET /rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms()
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to list rooms: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, rooms)
}
