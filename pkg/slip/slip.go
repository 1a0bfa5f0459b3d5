// Package slip renders a receipt as a fixed-width plain-text slip suitable
// for printing. All width arithmetic counts runes, not bytes, so Cyrillic
// labels and product names align correctly.
package slip

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	// MinWidth is the narrowest slip that can be rendered
	MinWidth = 20
	// DefaultWidth is used when the caller does not specify a width
	DefaultWidth = 30

	totalLabel   = "СУМА:"
	restLabel    = "Решта:"
	commentLabel = "Коментар:"
	thankYouLine = "Дякуємо за покупку!"

	createdAtLayout = "2006-01-02 15:04:05"

	// rightGap is the number of columns reserved between wrapped text and a
	// right-justified value
	rightGap = 5
)

// Item is one product line on the slip, in print order
type Item struct {
	Name     string
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Total    decimal.Decimal
}

// Receipt holds everything needed to render a slip
type Receipt struct {
	UserFullName  string
	Items         []Item
	PaymentLabel  string
	PaymentAmount decimal.Decimal
	Total         decimal.Decimal
	Rest          decimal.Decimal
	Comment       *string
	CreatedAt     time.Time
}

// Render produces the plain-text slip at the given width. Widths below
// MinWidth are clamped to MinWidth. Every emitted line is at most width
// runes long.
func Render(r *Receipt, width int) string {
	if width < MinWidth {
		width = MinWidth
	}

	blockDivider := strings.Repeat("=", width) + "\n"
	itemsDivider := strings.Repeat("-", width) + "\n"

	var b strings.Builder
	b.WriteString(center(r.UserFullName, width) + "\n")
	b.WriteString(blockDivider)

	itemBlocks := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		// The qty x price sub-line wraps too: a near-limit price at a narrow
		// width would otherwise exceed the slip width.
		block := formatText(FormatNumber(item.Quantity)+" x "+FormatNumber(item.Price), width, "") +
			formatText(item.Name, width, FormatNumber(item.Total))
		itemBlocks = append(itemBlocks, block)
	}
	b.WriteString(strings.Join(itemBlocks, itemsDivider))
	b.WriteString(blockDivider)

	b.WriteString(formatText(totalLabel, width, FormatNumber(r.Total)))
	b.WriteString(formatText(r.PaymentLabel, width, FormatNumber(r.PaymentAmount)))
	b.WriteString(formatText(restLabel, width, FormatNumber(r.Rest)))

	if r.Comment != nil && *r.Comment != "" {
		b.WriteString(itemsDivider)
		b.WriteString(commentLabel + "\n")
		b.WriteString(formatText(*r.Comment, width, ""))
	}

	b.WriteString(blockDivider)
	b.WriteString(center(r.CreatedAt.Format(createdAtLayout), width))
	b.WriteString("\n" + center(thankYouLine, width))

	return b.String()
}

// FormatNumber renders a decimal with exactly two fractional digits and a
// space as the thousands separator, e.g. 9958.75 -> "9 958.75".
func FormatNumber(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, " ") + "." + fracPart
	if negative {
		out = "-" + out
	}
	return out
}

// formatText greedily word-wraps text to width columns. When rightText is
// non-empty it is right-justified on the last wrapped line; that line
// reserves len(rightText)+rightGap trailing columns so the value never
// collides with the wrapped words.
func formatText(text string, width int, rightText string) string {
	reserved := rightGap
	if rightText != "" {
		reserved += utf8.RuneCountInString(rightText)
	}

	lines := wrapWords(text, width, reserved)

	if rightText != "" {
		lines = reflowTail(lines, width, reserved)
		last := lines[len(lines)-1]
		pad := width - utf8.RuneCountInString(rightText) - utf8.RuneCountInString(last)
		if pad < 1 {
			pad = 1
		}
		lines[len(lines)-1] = last + strings.Repeat(" ", pad) + rightText
	}

	return strings.Join(lines, "\n") + "\n"
}

// wrapWords packs whitespace-separated words onto lines while the line plus
// a trailing space fits within width. Words longer than width are truncated
// to fit the reserved trailing columns and suffixed with "...".
func wrapWords(text string, width, reserved int) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(text) {
		if utf8.RuneCountInString(word) > width {
			word = truncateWord(word, width-reserved)
		}
		if utf8.RuneCountInString(current)+utf8.RuneCountInString(word)+1 <= width {
			current += word + " "
		} else {
			lines = append(lines, strings.TrimRight(current, " "))
			current = word + " "
		}
	}
	if current != "" {
		lines = append(lines, strings.TrimRight(current, " "))
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// reflowTail pushes words off the final line until the reserved trailing
// columns are free. A lone word that still does not fit is truncated.
func reflowTail(lines []string, width, reserved int) []string {
	avail := width - reserved
	if avail < 1 {
		avail = 1
	}
	for {
		last := lines[len(lines)-1]
		if utf8.RuneCountInString(last) <= avail {
			return lines
		}
		words := strings.Fields(last)
		if len(words) <= 1 {
			lines[len(lines)-1] = truncateWord(last, avail)
			return lines
		}
		lines[len(lines)-1] = strings.Join(words[:len(words)-1], " ")
		lines = append(lines, words[len(words)-1])
	}
}

// truncateWord cuts a word so that word+"..." occupies at most maxRunes runes
func truncateWord(word string, maxRunes int) string {
	keep := maxRunes - 3
	if keep < 1 {
		keep = 1
	}
	runes := []rune(word)
	if len(runes) <= keep {
		return word
	}
	return string(runes[:keep]) + "..."
}

// center pads text with spaces on both sides to the given width, with the
// extra column on the right when the padding is odd. Text wider than the
// slip is cut so no emitted line ever exceeds the width.
func center(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n > width {
		return string([]rune(text)[:width])
	}
	if n == width {
		return text
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
