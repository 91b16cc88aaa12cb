package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire and column format of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date column. It reads and writes like datatypes.Date but
// serializes as "YYYY-MM-DD", the same format the API accepts.
type Date datatypes.Date

func NewDate(y int, m time.Month, d int) Date {
	return Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) String() string { return time.Time(d).Format(DateLayout) }

func (Date) GormDataType() string { return "date" }

func (d *Date) Scan(value interface{}) error {
	return (*datatypes.Date)(d).Scan(value)
}

func (d Date) Value() (driver.Value, error) {
	return datatypes.Date(d).Value()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" and, for older clients, RFC 3339 timestamps.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	if v, err := ParseDate(s); err == nil {
		*d = v
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
	}
	y, m, day := t.Date()
	*d = NewDate(y, m, day)
	return nil
}
