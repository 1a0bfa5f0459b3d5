package pagination

// Default values applied when the client omits pagination parameters
const (
	DefaultLimit  = 10
	DefaultOffset = 0
	MaxLimit      = 100
)

// Params represents limit/offset pagination input
type Params struct {
	Limit  int `form:"limit" json:"limit"`
	Offset int `form:"offset" json:"offset"`
}

// DefaultParams returns default pagination values
func DefaultParams() *Params {
	return &Params{
		Limit:  DefaultLimit,
		Offset: DefaultOffset,
	}
}

// Validate clamps pagination parameters to valid ranges
func (p *Params) Validate() {
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}
}

// Result represents one page of items plus the total match count
type Result[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// NewResult creates a new paginated result
func NewResult[T any](items []T, total int64, params *Params) *Result[T] {
	return &Result[T]{
		Items:  items,
		Total:  total,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
}
