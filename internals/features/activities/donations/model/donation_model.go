package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donation statuses. Admin-recorded ledger rows are 'recorded'; online gifts
// start 'pending' and become 'paid' via the payment webhook.
const (
	StatusRecorded = "recorded"
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusExpired  = "expired"
	StatusCanceled = "canceled"
)

// Column types live in the SQL migrations; dialect-neutral tags keep the
// in-memory test database happy.
type DonationModel struct {
	DonationID     uuid.UUID `gorm:"column:donation_id;primaryKey" json:"donation_id"`
	DonationUserID uuid.UUID `gorm:"column:donation_user_id;not null;index" json:"donation_user_id"`

	DonationAmount float64   `gorm:"column:donation_amount;not null;check:donation_amount >= 0" json:"donation_amount"`
	DonationDate   time.Time `gorm:"column:donation_date;not null" json:"donation_date"`
	DonationNotes  string    `gorm:"column:donation_notes" json:"donation_notes"`

	DonationStatus         string     `gorm:"column:donation_status;size:20;default:'recorded'" json:"donation_status"`
	DonationOrderID        *string    `gorm:"column:donation_order_id;size:100" json:"donation_order_id,omitempty"`
	DonationPaymentToken   string     `gorm:"column:donation_payment_token" json:"-"`
	DonationPaymentGateway string     `gorm:"column:donation_payment_gateway;size:50" json:"donation_payment_gateway,omitempty"`
	DonationPaidAt         *time.Time `gorm:"column:donation_paid_at" json:"donation_paid_at,omitempty"`

	DonationCreatedAt time.Time      `gorm:"column:donation_created_at;autoCreateTime" json:"donation_created_at"`
	DonationUpdatedAt time.Time      `gorm:"column:donation_updated_at;autoUpdateTime" json:"donation_updated_at"`
	DonationDeletedAt gorm.DeletedAt `gorm:"column:donation_deleted_at;index" json:"donation_deleted_at,omitempty"`
}

func (DonationModel) TableName() string {
	return "donations"
}

func (d *DonationModel) BeforeCreate(tx *gorm.DB) error {
	if d.DonationID == uuid.Nil {
		d.DonationID = uuid.New()
	}
	if d.DonationStatus == "" {
		d.DonationStatus = StatusRecorded
	}
	if d.DonationDate.IsZero() {
		d.DonationDate = time.Now()
	}
	return nil
}

// Counted reports whether this donation belongs in the financial-year
// report: the ledger counts recorded and paid gifts, never pending ones.
func (d *DonationModel) Counted() bool {
	return d.DonationStatus == StatusRecorded || d.DonationStatus == StatusPaid
}
