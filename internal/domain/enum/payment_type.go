package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// PaymentType represents the method used to pay for a receipt
type PaymentType string

const (
	PaymentTypeCash PaymentType = "cash"
	PaymentTypeCard PaymentType = "card"
)

// ParsePaymentType parses a wire value ("cash" or "card") into a PaymentType
func ParsePaymentType(s string) (PaymentType, error) {
	switch PaymentType(strings.ToLower(s)) {
	case PaymentTypeCash:
		return PaymentTypeCash, nil
	case PaymentTypeCard:
		return PaymentTypeCard, nil
	}
	return "", fmt.Errorf("unknown payment type %q", s)
}

func (t PaymentType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known payment types
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeCash || t == PaymentTypeCard
}

// DisplayLabel returns the label printed on the text slip
func (t PaymentType) DisplayLabel() string {
	if t == PaymentTypeCash {
		return "Готівка"
	}
	return "Картка"
}

func (t PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *PaymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePaymentType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t PaymentType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PaymentType) Scan(value interface{}) error {
	if value == nil {
		*t = PaymentTypeCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = PaymentType(v)
	case []byte:
		*t = PaymentType(v)
	}
	return nil
}
