package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is a person renting a bed, tracked separately from their login user.
// UserID is nil until a login account is linked; RoomID is nil while unassigned.
type Tenant struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	UserID      *uuid.UUID `json:"userId" gorm:"type:uuid;index"`
	Name        string     `json:"name" gorm:"not null;size:255"`
	Phone       string     `json:"phone" gorm:"size:50;default:''"`
	RoomID      *uuid.UUID `json:"roomId" gorm:"type:uuid;index"`
	Room        *Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	JoiningDate time.Time  `json:"joiningDate"`
}

func (Tenant) TableName() string {
	return "tenants"
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.JoiningDate.IsZero() {
		t.JoiningDate = time.Now()
	}
	return nil
}
