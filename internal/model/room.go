package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Room is a physical room with a fixed number of beds.
type Room struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RoomNumber   string    `json:"roomNumber" gorm:"uniqueIndex;not null;size:50"`
	Capacity     int       `json:"capacity" gorm:"not null"`
	OccupiedBeds int       `json:"occupiedBeds" gorm:"not null;default:0"`
	Rent         float64   `json:"rent" gorm:"not null"`
	Status       string    `json:"status" gorm:"size:20;not null;default:'Available'"`
}

func (Room) TableName() string {
	return "rooms"
}

func (r *Room) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = RoomStatusAvailable
	}
	return nil
}

// IsFull reports whether every bed in the room is taken.
func (r *Room) IsFull() bool {
	return r.OccupiedBeds >= r.Capacity
}

// RoomStatus constants. Status is derived from occupancy, never set directly.
const (
	RoomStatusAvailable = "Available"
	RoomStatusFull      = "Full"
)
