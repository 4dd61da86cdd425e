package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date é um dia de calendário sem horário, serializado como YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate trunca t para o dia no fuso de t
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// ParseDateIn interpreta YYYY-MM-DD como um dia no fuso informado
func ParseDateIn(s string, loc *time.Location) (Date, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// AddDays retorna a data deslocada em n dias
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time.AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.Format(time.DateOnly)
}

// StartOfDay é o primeiro instante do dia no fuso informado
func (d Date) StartOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

// EndOfDay é o último instante do dia (23:59:59.999) no fuso informado
func (d Date) EndOfDay(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}

	// aceita também timestamps completos, mantendo apenas o dia
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("data inválida %q: %w", s, err)
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*d = Date{Time: time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)}
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("date: tipo inesperado %T", value)
	}
	return nil
}

func (d *Date) scanString(s string) error {
	if len(s) > len(time.DateOnly) {
		s = s[:len(time.DateOnly)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
