package pricing

import (
	"fmt"

	"github.com/latand/receipts-api/internal/domain/enum"
	"github.com/latand/receipts-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// Precision limits for monetary input, mirroring the decimal(16,4) and
// decimal(10,4) storage columns.
const (
	PriceMaxDigits    = 16
	PriceScale        = 2
	QuantityMaxDigits = 10
	QuantityScale     = 3

	// LineTotalScale is the scale line totals are rounded to before summing.
	LineTotalScale = 4
)

// ProductLine is one purchased product as submitted by the client
type ProductLine struct {
	Name     string
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Comment  *string
}

// PaymentInput is the single payment submitted with a receipt
type PaymentInput struct {
	Type   enum.PaymentType
	Amount decimal.Decimal
}

// PricedLine is a product line with its computed total
type PricedLine struct {
	ProductLine
	Total decimal.Decimal
}

// PricedReceipt is the result of pricing a receipt: per-line totals, the
// receipt total and the change due back (rest)
type PricedReceipt struct {
	Lines []PricedLine
	Total decimal.Decimal
	Rest  decimal.Decimal
}

// Price computes per-line totals, the receipt total and the change for the
// given product lines and payment. It is a pure function: it performs no I/O
// and is safe for concurrent use.
//
// Line totals are price × quantity rounded half away from zero ("half-up")
// to LineTotalScale fractional digits. Returns a validation error for
// malformed input and apperror.ErrNotEnoughMoney when the payment does not
// cover the total.
func Price(lines []ProductLine, payment PaymentInput) (*PricedReceipt, error) {
	if err := validate(lines, payment); err != nil {
		return nil, err
	}

	priced := make([]PricedLine, 0, len(lines))
	total := decimal.Zero
	for _, line := range lines {
		lineTotal := line.Price.Mul(line.Quantity).Round(LineTotalScale)
		priced = append(priced, PricedLine{ProductLine: line, Total: lineTotal})
		total = total.Add(lineTotal)
	}

	rest := payment.Amount.Sub(total)
	if rest.IsNegative() {
		return nil, apperror.ErrNotEnoughMoney
	}

	return &PricedReceipt{Lines: priced, Total: total, Rest: rest}, nil
}

func validate(lines []ProductLine, payment PaymentInput) error {
	var fieldErrors []apperror.FieldError

	if len(lines) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "products",
			Message: "at least one product is required",
		})
	}

	for i, line := range lines {
		if line.Name == "" {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("products[%d].name", i),
				Message: "name must not be empty",
			})
		}
		fieldErrors = appendDecimalErrors(fieldErrors,
			fmt.Sprintf("products[%d].price", i), line.Price, PriceMaxDigits, PriceScale)
		fieldErrors = appendDecimalErrors(fieldErrors,
			fmt.Sprintf("products[%d].quantity", i), line.Quantity, QuantityMaxDigits, QuantityScale)
	}

	if !payment.Type.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "payment.type",
			Message: "must be either cash or card",
		})
	}
	fieldErrors = appendDecimalErrors(fieldErrors,
		"payment.amount", payment.Amount, PriceMaxDigits, PriceScale)

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func appendDecimalErrors(errs []apperror.FieldError, field string, d decimal.Decimal, maxDigits, scale int) []apperror.FieldError {
	if !d.IsPositive() {
		errs = append(errs, apperror.FieldError{
			Field:   field,
			Message: "must be greater than 0",
		})
		return errs
	}
	if d.Exponent() < int32(-scale) {
		errs = append(errs, apperror.FieldError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d decimal places", scale),
		})
	}
	if d.NumDigits() > maxDigits {
		errs = append(errs, apperror.FieldError{
			Field:   field,
			Message: fmt.Sprintf("must have at most %d digits", maxDigits),
		})
	}
	return errs
}
