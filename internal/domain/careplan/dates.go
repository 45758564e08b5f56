// Package careplan holds the pure Smart Care Plan rules: gestational date
// arithmetic, risk classification and visit schedule generation.
package careplan

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format accepted on every date field
	DateLayout = "2006-01-02"

	// GestationDays is the length of a full-term pregnancy counted from the LMP
	GestationDays = 280

	deliveryTimestampLayout = "2006-01-02T15:04:05.999999"
)

var (
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDeliveryDate = errors.New("invalid delivery date, use YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS.ffffff")

	deliveryTimestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,6}$`)
)

// Gestation is an elapsed duration expressed in completed weeks plus days
type Gestation struct {
	Weeks int
	Days  int
}

// String renders the period of amenorrhoea the way clinic cards show it
func (g Gestation) String() string {
	return fmt.Sprintf("%d Weeks", g.Weeks)
}

// DateOf strips the clock from t and returns the calendar date at UTC midnight
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the calendar date n days after anchor
func AddDays(anchor time.Time, n int) time.Time {
	return DateOf(anchor).AddDate(0, 0, n)
}

// AddWeeks returns the calendar date n weeks after anchor
func AddWeeks(anchor time.Time, n int) time.Time {
	return AddDays(anchor, n*7)
}

// Elapsed returns the time from anchor to today, zero when anchor is in the future
func Elapsed(anchor, today time.Time) Gestation {
	days := int(DateOf(today).Sub(DateOf(anchor)).Hours() / 24)
	if days < 0 {
		return Gestation{}
	}
	return Gestation{Weeks: days / 7, Days: days % 7}
}

// EstimatedDeliveryDate is Naegele's rule: LMP plus 280 days
func EstimatedDeliveryDate(lmp time.Time) time.Time {
	return AddDays(lmp, GestationDays)
}

// DeriveAnchors returns the pregnancy start and expected delivery dates implied
// by a pregnancy record. A nil result means the mother's value stays unchanged.
func DeriveAnchors(lmp, edd *time.Time) (start, delivery *time.Time) {
	if lmp != nil {
		d := DateOf(*lmp)
		start = &d
	}
	switch {
	case edd != nil:
		d := DateOf(*edd)
		delivery = &d
	case lmp != nil:
		d := EstimatedDeliveryDate(*lmp)
		delivery = &d
	}
	return start, delivery
}

// ParseDate parses a YYYY-MM-DD calendar date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ParseDeliveryDate accepts a plain date or a timestamp with fractional
// seconds and returns the calendar date.
func ParseDeliveryDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if !deliveryTimestampPattern.MatchString(s) {
		return time.Time{}, ErrInvalidDeliveryDate
	}
	t, err := time.Parse(deliveryTimestampLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDeliveryDate
	}
	return DateOf(t), nil
}
