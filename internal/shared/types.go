package shared

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for date-only fields
// (birth_date, publish_date, and the publish date range filters).
const DateLayout = "2006-01-02"

// Date is a date-only value that serializes as "YYYY-MM-DD".
// PostgreSQL DATE columns scan into time.Time; wrap them with NewDate.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t.Truncate(24 * time.Hour)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
