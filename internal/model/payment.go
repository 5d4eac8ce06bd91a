package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is one rent payment record. Several records may exist for the same
// tenant and month; the ledger is append-oriented and nothing is ever deleted.
type Payment struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	TenantID    uuid.UUID `json:"tenantId" gorm:"type:uuid;not null;index"`
	Tenant      *Tenant   `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Month       string    `json:"month" gorm:"not null;size:20"`
	Amount      float64   `json:"amount" gorm:"not null"`
	PaymentDate time.Time `json:"paymentDate"`
	Status      string    `json:"status" gorm:"size:20;not null;default:'Paid'"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}
	if p.Status == "" {
		p.Status = PaymentStatusPaid
	}
	return nil
}

// PaymentStatus constants. New records default to Paid; Pending is only
// reachable through an explicit status update.
const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
)

// ValidPaymentStatus reports whether s is a recognized payment status.
func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusPaid || s == PaymentStatusPending
}
