package converter

import (
	"time"

	"maternal-care-backend/internal/domain/careplan"

	"github.com/shopspring/decimal"
)

// FormatDate renders a calendar date as YYYY-MM-DD, nil stays nil
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(careplan.DateLayout)
	return &s
}

// ParseOptionalDate parses a YYYY-MM-DD pointer, nil or blank gives nil
func ParseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := careplan.ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst **int, src *int) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func setDecimal(dst *decimal.NullDecimal, src *decimal.Decimal) {
	if src != nil {
		*dst = decimal.NewNullDecimal(*src)
	}
}

func setDate(dst **time.Time, src *string) error {
	if src == nil {
		return nil
	}
	t, err := ParseOptionalDate(src)
	if err != nil {
		return err
	}
	*dst = t
	return nil
}
