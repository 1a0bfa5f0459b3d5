package response

import (
	"github.com/google/uuid"
	"github.com/latand/receipts-api/internal/domain/entity"
	"github.com/latand/receipts-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

const createdAtLayout = "2006-01-02 15:04:05"

// ProductResponse is one line item on a materialized receipt
type ProductResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
	Comment  *string         `json:"comment,omitempty"`
}

// PaymentResponse is the payment attached to a materialized receipt
type PaymentResponse struct {
	Type   enum.PaymentType `json:"type"`
	Amount decimal.Decimal  `json:"amount"`
}

// ReceiptResponse is the wire representation of a receipt. It is a flat,
// one-directional structure assembled from the entity graph so entities with
// back-references never leak onto the wire.
type ReceiptResponse struct {
	ReceiptID uuid.UUID         `json:"receipt_id"`
	Products  []ProductResponse `json:"products"`
	Payment   PaymentResponse   `json:"payment"`
	Comment   *string           `json:"comment,omitempty"`
	Total     decimal.Decimal   `json:"total"`
	Rest      decimal.Decimal   `json:"rest"`
	CreatedAt string            `json:"created_at"`
}

// NewReceiptResponse maps a receipt entity to its wire representation
func NewReceiptResponse(r *entity.Receipt) *ReceiptResponse {
	products := make([]ProductResponse, 0, len(r.Items))
	for _, item := range r.Items {
		products = append(products, ProductResponse{
			Name:     item.ProductName,
			Price:    item.PricePerUnit,
			Quantity: item.Quantity,
			Total:    item.TotalPrice,
			Comment:  item.Comment,
		})
	}

	return &ReceiptResponse{
		ReceiptID: r.ID,
		Products:  products,
		Payment: PaymentResponse{
			Type:   r.Payment.Type,
			Amount: r.Payment.Amount,
		},
		Comment:   r.Comment,
		Total:     r.Total,
		Rest:      r.Rest,
		CreatedAt: r.CreatedAt.Format(createdAtLayout),
	}
}

// NewReceiptListResponse maps a slice of receipt entities
func NewReceiptListResponse(receipts []entity.Receipt) []ReceiptResponse {
	out := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		out = append(out, *NewReceiptResponse(&receipts[i]))
	}
	return out
}
