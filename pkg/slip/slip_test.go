package slip

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

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

func sampleReceipt() *Receipt {
	return &Receipt{
		UserFullName: "Test User",
		Items: []Item{
			{Name: "Apple", Price: dec("10.50"), Quantity: dec("2"), Total: dec("21.00")},
		},
		PaymentLabel:  "Готівка",
		PaymentAmount: dec("25.00"),
		Total:         dec("21.00"),
		Rest:          dec("4.00"),
		CreatedAt:     time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRender_GoldenSlip(t *testing.T) {
	got := Render(sampleReceipt(), 20)

	want := strings.Join([]string{
		"     Test User      ",
		"====================",
		"2.00 x 10.50",
		"Apple          21.00",
		"====================",
		"СУМА:          21.00",
		"Готівка        25.00",
		"Решта:          4.00",
		"====================",
		"2024-01-02 03:04:05 ",
		"Дякуємо за покупку! ",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestRender_EveryLineFitsWidth(t *testing.T) {
	r := &Receipt{
		UserFullName: "Taras Hryhorovych Shevchenko",
		Items: []Item{
			{Name: "Mavic 3T", Price: dec("298870.00"), Quantity: dec("3"), Total: dec("896610.00")},
			{Name: "Дуже довга назва товару яка не вміщається в один рядок", Price: dec("21000.00"), Quantity: dec("1"), Total: dec("21000.00")},
			{Name: "Supercalifragilisticexpialidocious", Price: dec("1.00"), Quantity: dec("1"), Total: dec("1.00")},
		},
		PaymentLabel:  "Картка",
		PaymentAmount: dec("1000000.00"),
		Total:         dec("917611.00"),
		Rest:          dec("82389.00"),
		Comment:       ptr("Дякуємо що обрали нас, чекаємо на вас знову"),
		CreatedAt:     time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC),
	}

	for _, width := range []int{20, 25, 30, 40, 60, 100} {
		out := Render(r, width)
		for i, line := range strings.Split(out, "\n") {
			assert.LessOrEqual(t, utf8.RuneCountInString(line), width,
				"width %d line %d: %q", width, i, line)
		}
	}
}

func TestRender_WrapsLongNameAndJustifiesTotal(t *testing.T) {
	r := sampleReceipt()
	r.Items = []Item{
		{Name: "Super Ultra Mega Deluxe Coffee Machine", Price: dec("100.00"), Quantity: dec("1"), Total: dec("100.00")},
	}
	r.Total = dec("100.00")
	r.PaymentAmount = dec("100.00")
	r.Rest = dec("0.00")

	out := Render(r, 30)
	lines := strings.Split(out, "\n")

	var nameLines []string
	for _, line := range lines {
		if strings.Contains(line, "Super") || strings.Contains(line, "Deluxe") ||
			strings.Contains(line, "Coffee") || strings.Contains(line, "Machine") {
			nameLines = append(nameLines, line)
		}
	}
	require.GreaterOrEqual(t, len(nameLines), 2, "name should wrap onto multiple lines")

	// The total appears only on the last wrapped line, right-justified
	for _, line := range nameLines[:len(nameLines)-1] {
		assert.NotContains(t, line, "100.00")
	}
	last := nameLines[len(nameLines)-1]
	assert.True(t, strings.HasSuffix(last, "100.00"), "got %q", last)
	assert.Equal(t, 30, utf8.RuneCountInString(last))
}

func TestRender_WideQuantityPriceLineWraps(t *testing.T) {
	r := sampleReceipt()
	r.Items = []Item{
		{Name: "Gold bar", Price: dec("999999999.99"), Quantity: dec("1"), Total: dec("999999999.99")},
	}
	r.Total = dec("999999999.99")
	r.PaymentAmount = dec("999999999.99")
	r.Rest = dec("0.00")

	out := Render(r, 20)

	assert.Contains(t, out, "999.99")
	for i, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 20, "line %d: %q", i, line)
	}
}

func TestRender_ClampsWidthBelowMinimum(t *testing.T) {
	out := Render(sampleReceipt(), 5)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), MinWidth)
	}
	assert.Contains(t, out, strings.Repeat("=", MinWidth))
}

func TestRender_ItemsSeparatedByDashedDivider(t *testing.T) {
	r := sampleReceipt()
	r.Items = append(r.Items, Item{
		Name: "Pear", Price: dec("4.00"), Quantity: dec("1"), Total: dec("4.00"),
	})

	out := Render(r, 20)

	assert.Equal(t, 1, strings.Count(out, strings.Repeat("-", 20)),
		"two items need exactly one separator")
}

func TestRender_CommentBlock(t *testing.T) {
	r := sampleReceipt()
	out := Render(r, 20)
	assert.NotContains(t, out, "Коментар:")

	r.Comment = ptr("Решту залиште собі")
	out = Render(r, 20)
	assert.Contains(t, out, "Коментар:")
	assert.Contains(t, out, "Решту залиште собі")

	r.Comment = ptr("")
	out = Render(r, 20)
	assert.NotContains(t, out, "Коментар:")
}

func TestRender_PaymentLabel(t *testing.T) {
	r := sampleReceipt()

	r.PaymentLabel = "Готівка"
	assert.Contains(t, Render(r, 20), "Готівка")

	r.PaymentLabel = "Картка"
	out := Render(r, 20)
	assert.Contains(t, out, "Картка")
	assert.NotContains(t, out, "Готівка")
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9958.75", "9 958.75"},
		{"41.25", "41.25"},
		{"0.5", "0.50"},
		{"0", "0.00"},
		{"1234567.8", "1 234 567.80"},
		{"1000000", "1 000 000.00"},
		{"100", "100.00"},
		{"-1234", "-1 234.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(dec(tt.in)), "input %s", tt.in)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  ab  ", center("ab", 6))
	// Odd padding puts the extra space on the right
	assert.Equal(t, " abc  ", center("abc", 6))
	assert.Equal(t, "abcdef", center("abcdef", 6))
	// Text wider than the slip is cut, never overflows
	assert.Equal(t, "abcdef", center("abcdefgh", 6))
	// Rune counting, not byte counting
	assert.Equal(t, " Сума ", center("Сума", 6))
}

func ptr(s string) *string {
	return &s
}
