package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/latand/receipts-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt is an immutable record of a purchase: line items, one payment,
// computed total and change. Created atomically with its items and payment,
// never updated afterwards.
type Receipt struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Total     decimal.Decimal `gorm:"type:decimal(16,4);not null" json:"total"`
	Rest      decimal.Decimal `gorm:"type:decimal(16,4);not null" json:"rest"`
	Comment   *string         `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time       `json:"created_at"`

	// Relationships
	User    User          `gorm:"foreignKey:UserID" json:"-"`
	Items   []ReceiptItem `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Payment Payment       `gorm:"foreignKey:ReceiptID;constraint:OnDelete:CASCADE" json:"payment"`
}

// BeforeCreate generates a UUID and pins the creation time to UTC
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ReceiptItem is one product line within a receipt. Position preserves the
// insertion order, which is also the print order on the text slip.
type ReceiptItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"receipt_id"`
	Position     int             `gorm:"not null;default:0" json:"-"`
	ProductName  string          `gorm:"size:255;not null" json:"name"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(16,4);not null" json:"price"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"quantity"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(16,4);not null" json:"total"`
	Comment      *string         `gorm:"type:text" json:"comment,omitempty"`
}

// BeforeCreate generates a UUID before creating a new receipt item
func (i *ReceiptItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptItem model
func (ReceiptItem) TableName() string {
	return "receipt_items"
}

// Payment is the single payment attached to a receipt
type Payment struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID uuid.UUID        `gorm:"type:uuid;not null;index" json:"receipt_id"`
	Type      enum.PaymentType `gorm:"size:16;not null" json:"type"`
	Amount    decimal.Decimal  `gorm:"type:decimal(16,4);not null" json:"amount"`
	CreatedAt time.Time        `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
