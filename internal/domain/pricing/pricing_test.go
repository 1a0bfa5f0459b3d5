package pricing

import (
	"testing"

	"github.com/latand/receipts-api/internal/domain/enum"
	"github.com/latand/receipts-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func cashPayment(amount string) PaymentInput {
	return PaymentInput{Type: enum.PaymentTypeCash, Amount: dec(amount)}
}

func TestPrice_ComputesTotalsAndRest(t *testing.T) {
	lines := []ProductLine{
		{Name: "Product 1", Price: dec("10.50"), Quantity: dec("2.5")},
		{Name: "Product 2", Price: dec("5.00"), Quantity: dec("3")},
	}

	priced, err := Price(lines, cashPayment("10000.00"))

	require.NoError(t, err)
	require.Len(t, priced.Lines, 2)
	assert.True(t, priced.Lines[0].Total.Equal(dec("26.25")), "got %s", priced.Lines[0].Total)
	assert.True(t, priced.Lines[1].Total.Equal(dec("15.00")), "got %s", priced.Lines[1].Total)
	assert.True(t, priced.Total.Equal(dec("41.25")), "got %s", priced.Total)
	assert.True(t, priced.Rest.Equal(dec("9958.75")), "got %s", priced.Rest)
}

func TestPrice_ExactPaymentLeavesZeroRest(t *testing.T) {
	lines := []ProductLine{
		{Name: "Product", Price: dec("10.00"), Quantity: dec("3")},
	}

	priced, err := Price(lines, cashPayment("30.00"))

	require.NoError(t, err)
	assert.True(t, priced.Rest.IsZero(), "got %s", priced.Rest)
}

func TestPrice_NotEnoughMoney(t *testing.T) {
	lines := []ProductLine{
		{Name: "Product", Price: dec("10.50"), Quantity: dec("2.5")},
	}

	priced, err := Price(lines, cashPayment("1.00"))

	assert.Nil(t, priced)
	assert.ErrorIs(t, err, apperror.ErrNotEnoughMoney)
}

func TestPrice_RoundsLineTotalsHalfUp(t *testing.T) {
	// 0.25 * 0.125 = 0.03125, which rounds half away from zero to 0.0313
	lines := []ProductLine{
		{Name: "Product", Price: dec("0.25"), Quantity: dec("0.125")},
	}

	priced, err := Price(lines, cashPayment("1.00"))

	require.NoError(t, err)
	assert.True(t, priced.Lines[0].Total.Equal(dec("0.0313")), "got %s", priced.Lines[0].Total)
	assert.True(t, priced.Total.Equal(dec("0.0313")), "got %s", priced.Total)
	assert.True(t, priced.Rest.Equal(dec("0.9687")), "got %s", priced.Rest)
}

func TestPrice_IsDeterministic(t *testing.T) {
	lines := []ProductLine{
		{Name: "Product 1", Price: dec("3.33"), Quantity: dec("1.5")},
		{Name: "Product 2", Price: dec("7.77"), Quantity: dec("0.25")},
	}
	payment := cashPayment("100.00")

	first, err := Price(lines, payment)
	require.NoError(t, err)
	second, err := Price(lines, payment)
	require.NoError(t, err)

	assert.True(t, first.Total.Equal(second.Total))
	assert.True(t, first.Rest.Equal(second.Rest))
}

func TestPrice_EmptyProductList(t *testing.T) {
	_, err := Price(nil, cashPayment("10.00"))

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "products", appErr.Errors[0].Field)
}

func TestPrice_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    ProductLine
		payment PaymentInput
		field   string
	}{
		{
			name:    "empty product name",
			line:    ProductLine{Name: "", Price: dec("1.00"), Quantity: dec("1")},
			payment: cashPayment("10.00"),
			field:   "products[0].name",
		},
		{
			name:    "zero price",
			line:    ProductLine{Name: "Product", Price: dec("0"), Quantity: dec("1")},
			payment: cashPayment("10.00"),
			field:   "products[0].price",
		},
		{
			name:    "negative quantity",
			line:    ProductLine{Name: "Product", Price: dec("1.00"), Quantity: dec("-2")},
			payment: cashPayment("10.00"),
			field:   "products[0].quantity",
		},
		{
			name:    "price with too many decimal places",
			line:    ProductLine{Name: "Product", Price: dec("1.005"), Quantity: dec("1")},
			payment: cashPayment("10.00"),
			field:   "products[0].price",
		},
		{
			name:    "quantity with too many decimal places",
			line:    ProductLine{Name: "Product", Price: dec("1.00"), Quantity: dec("1.0005")},
			payment: cashPayment("10.00"),
			field:   "products[0].quantity",
		},
		{
			name:    "price exceeds digit limit",
			line:    ProductLine{Name: "Product", Price: dec("12345678901234567"), Quantity: dec("1")},
			payment: cashPayment("99999999999999999"),
			field:   "products[0].price",
		},
		{
			name:    "zero payment amount",
			line:    ProductLine{Name: "Product", Price: dec("1.00"), Quantity: dec("1")},
			payment: cashPayment("0"),
			field:   "payment.amount",
		},
		{
			name:    "invalid payment type",
			line:    ProductLine{Name: "Product", Price: dec("1.00"), Quantity: dec("1")},
			payment: PaymentInput{Type: "crypto", Amount: dec("10.00")},
			field:   "payment.type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Price([]ProductLine{tt.line}, tt.payment)

			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			assert.Equal(t, 422, appErr.Code)

			fields := make([]string, 0, len(appErr.Errors))
			for _, fe := range appErr.Errors {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestPrice_CollectsAllFieldErrorsAtOnce(t *testing.T) {
	lines := []ProductLine{
		{Name: "", Price: dec("-1"), Quantity: dec("0")},
	}

	_, err := Price(lines, PaymentInput{Type: "check", Amount: dec("-5")})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.GreaterOrEqual(t, len(appErr.Errors), 5)
}

func TestPrice_ValidationRunsBeforeMoneyCheck(t *testing.T) {
	// An underpaying payment with an invalid line must report validation,
	// not the money rule
	lines := []ProductLine{
		{Name: "", Price: dec("100.00"), Quantity: dec("1")},
	}

	_, err := Price(lines, cashPayment("1.00"))

	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}
