package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Complaint is an issue raised by a tenant against their room.
type Complaint struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	TenantID    uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;index"`
	Tenant      *Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	RoomID      uuid.UUID `json:"roomId" gorm:"type:uuid;not null;index"`
	Room        *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	IssueType   string    `json:"issueType" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'Open'"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (Complaint) TableName() string {
	return "complaints"
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = ComplaintStatusOpen
	}
	return nil
}

// ComplaintStatus constants. The lifecycle is Open -> In Progress -> Closed,
// but any recognized value may follow any other.
const (
	ComplaintStatusOpen       = "Open"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusClosed     = "Closed"
)

// ValidComplaintStatus reports whether s is a recognized complaint status.
func ValidComplaintStatus(s string) bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusInProgress, ComplaintStatusClosed:
		return true
	}
	return false
}
