package repository

import (
	"github.com/hostel-system/hostel-management/internal/model"
	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(room *model.Room) error {
	return r.db.Create(room).Error
}

func (r *RoomRepository) GetByID(id string) (*model.Room, error) {
	var room model.Room
	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetByRoomNumber(roomNumber string) (*model.Room, error) {
	var room model.Room
	if err := r.db.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) List() ([]*model.Room, error) {
	var rooms []*model.Room
	err := r.db.Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Update(room *model.Room) error {
	return r.db.Save(room).Error
}

func (r *RoomRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Room{}).Count(&total).Error
	return total, err
}

func (r *RoomRepository) CountByStatus(status string) (int64, error) {
	var total int64
	err := r.db.Model(&model.Room{}).Where("status = ?", status).Count(&total).Error
	return total, err
}

func (r *RoomRepository) GetDB() *gorm.DB {
	return r.db
}
