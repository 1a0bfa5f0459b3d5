package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/latand/receipts-api/internal/domain/entity"
	domainRepo "github.com/latand/receipts-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create persists the receipt header, items and payment inside a single
// database transaction. The receipt passed in is updated in place with the
// generated identifiers and creation timestamp.
func (r *receiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	items := receipt.Items
	payment := receipt.Payment
	receipt.Items = nil
	receipt.Payment = entity.Payment{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(receipt).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].ReceiptID = receipt.ID
			items[i].Position = i
		}
		if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
			return err
		}

		payment.ReceiptID = receipt.ID
		return tx.Omit(clause.Associations).Create(&payment).Error
	})
	if err != nil {
		return err
	}

	receipt.Items = items
	receipt.Payment = payment
	return nil
}

func (r *receiptRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Payment").
		Preload("User").
		First(&receipt, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Where("receipts.user_id = ?", userID)

	if params.StartDate != nil {
		query = query.Where("receipts.created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("receipts.created_at <= ?", *params.EndDate)
	}
	if params.MinTotal != nil {
		query = query.Where("receipts.total >= ?", *params.MinTotal)
	}
	if params.MaxTotal != nil {
		query = query.Where("receipts.total <= ?", *params.MaxTotal)
	}
	if params.PaymentType != nil {
		query = query.
			Joins("JOIN payments ON payments.receipt_id = receipts.id").
			Where("payments.type = ?", *params.PaymentType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.
		Offset(params.Pagination.Offset).
		Limit(params.Pagination.Limit).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Payment").
		Order("receipts.created_at ASC, receipts.id ASC").
		Find(&receipts).Error

	return receipts, total, err
}
