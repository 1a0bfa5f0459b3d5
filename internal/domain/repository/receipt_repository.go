package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/latand/receipts-api/internal/domain/entity"
	"github.com/latand/receipts-api/internal/domain/enum"
	"github.com/latand/receipts-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ReceiptRepository defines the interface for receipt data operations.
// Receipts are immutable: there are no update or delete operations.
type ReceiptRepository interface {
	// Create persists the receipt header, its items and its payment as one
	// atomic unit. Either all three are committed or none are.
	Create(ctx context.Context, receipt *entity.Receipt) error
	// GetByID returns the receipt with items, payment and owning user
	// preloaded, scoped to the given user. Returns (nil, nil) when absent.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error)
	// List returns the user's receipts matching all supplied filters,
	// ordered by created_at ASC, id ASC, plus the total match count.
	List(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries.
// All bounds are inclusive; nil fields are not applied.
type ReceiptFilterParams struct {
	Pagination  *pagination.Params
	StartDate   *time.Time
	EndDate     *time.Time
	MinTotal    *decimal.Decimal
	MaxTotal    *decimal.Decimal
	PaymentType *enum.PaymentType
}
