package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/latand/receipts-api/internal/domain/entity"
	"github.com/latand/receipts-api/internal/domain/pricing"
	"github.com/latand/receipts-api/internal/domain/repository"
	"github.com/latand/receipts-api/pkg/apperror"
	"github.com/latand/receipts-api/pkg/pagination"
	"github.com/latand/receipts-api/pkg/slip"
)

// ReceiptService orchestrates the pricing engine and the receipt store
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

// CreateReceiptInput represents the create receipt input
type CreateReceiptInput struct {
	Products []pricing.ProductLine
	Payment  pricing.PaymentInput
	Comment  *string
}

// Create prices the receipt and, on success, persists the header, items and
// payment atomically. A pricing failure propagates without any store call.
func (s *ReceiptService) Create(ctx context.Context, userID uuid.UUID, input *CreateReceiptInput) (*entity.Receipt, error) {
	priced, err := pricing.Price(input.Products, input.Payment)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		UserID:  userID,
		Total:   priced.Total,
		Rest:    priced.Rest,
		Comment: input.Comment,
	}
	for _, line := range priced.Lines {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			ProductName:  line.Name,
			PricePerUnit: line.Price,
			Quantity:     line.Quantity,
			TotalPrice:   line.Total,
			Comment:      line.Comment,
		})
	}
	receipt.Payment = entity.Payment{
		Type:   input.Payment.Type,
		Amount: input.Payment.Amount,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

// List returns the user's receipts matching the supplied filters
func (s *ReceiptService) List(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) (*pagination.Result[entity.Receipt], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultParams()
	}

	receipts, total, err := s.receiptRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	if receipts == nil {
		receipts = []entity.Receipt{}
	}
	return pagination.NewResult(receipts, total, params.Pagination), nil
}

// GetByID returns one receipt, scoped to the requesting user so one user can
// never read another user's receipts.
func (s *ReceiptService) GetByID(ctx context.Context, userID, receiptID uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, userID, receiptID)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// Render returns the receipt as a fixed-width plain-text slip
func (s *ReceiptService) Render(ctx context.Context, userID, receiptID uuid.UUID, width int) (string, error) {
	receipt, err := s.GetByID(ctx, userID, receiptID)
	if err != nil {
		return "", err
	}

	items := make([]slip.Item, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		items = append(items, slip.Item{
			Name:     item.ProductName,
			Price:    item.PricePerUnit,
			Quantity: item.Quantity,
			Total:    item.TotalPrice,
		})
	}

	return slip.Render(&slip.Receipt{
		UserFullName:  receipt.User.FullName,
		Items:         items,
		PaymentLabel:  receipt.Payment.Type.DisplayLabel(),
		PaymentAmount: receipt.Payment.Amount,
		Total:         receipt.Total,
		Rest:          receipt.Rest,
		Comment:       receipt.Comment,
		CreatedAt:     receipt.CreatedAt,
	}, width), nil
}
