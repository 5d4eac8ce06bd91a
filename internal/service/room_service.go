package service

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"github.com/hostel-system/hostel-management/internal/repository"
	"gorm.io/gorm"
)

// RoomService manages the physical room inventory. Rooms are never deleted
// and capacity is fixed at creation.
type RoomService struct {
	roomRepo *repository.RoomRepository
}

func NewRoomService(roomRepo *repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// CreateRoomRequest is the add-room payload.
type CreateRoomRequest struct {
	RoomNumber string  `json:"roomNumber" binding:"required"`
	Capacity   int     `json:"capacity" binding:"required,gt=0"`
	Rent       float64 `json:"rent" binding:"gte=0"`
}

func (s *RoomService) CreateRoom(req CreateRoomRequest) (*model.Room, error) {
	if _, err := s.roomRepo.GetByRoomNumber(req.RoomNumber); err == nil {
		return nil, ErrRoomAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	room := &model.Room{
		RoomNumber:   req.RoomNumber,
		Capacity:     req.Capacity,
		OccupiedBeds: 0,
		Rent:         req.Rent,
		Status:       model.RoomStatusAvailable,
	}

	if err := s.roomRepo.Create(room); err != nil {
		return nil, err
	}

	return room, nil
}

func (s *RoomService) ListRooms() ([]*model.Room, error) {
	return s.roomRepo.List()
}

func (s *RoomService) GetRoom(id string) (*model.Room, error) {
	room, err := s.roomRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
