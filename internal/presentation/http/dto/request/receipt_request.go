package request

import (
	"github.com/latand/receipts-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// ProductRequest is one purchased product in a create-receipt request
type ProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Comment  *string         `json:"comment,omitempty"`
}

// PaymentRequest is the single payment in a create-receipt request
type PaymentRequest struct {
	Type   enum.PaymentType `json:"type" binding:"required"`
	Amount decimal.Decimal  `json:"amount" binding:"required"`
}

// CreateReceiptRequest represents a create receipt request
type CreateReceiptRequest struct {
	Products []ProductRequest `json:"products" binding:"required"`
	Payment  PaymentRequest   `json:"payment" binding:"required"`
	Comment  *string          `json:"comment,omitempty"`
}
