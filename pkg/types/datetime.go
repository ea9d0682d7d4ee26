package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout формат datetime-local из браузера ("2024-01-01T10:00")
const DateTimeLayout = "2006-01-02T15:04"

// ErrInvalidDateTime возвращается, когда строку не удалось разобрать как дату и время
var ErrInvalidDateTime = errors.New("invalid date-time string format")

// parseLayouts допустимые форматы входной строки, в порядке проверки
var parseLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// DateTime момент времени бронирования (въезд или выезд).
// Хранится в UTC с точностью до минуты, сериализуется в формате DateTimeLayout.
type DateTime struct {
	t time.Time
}

// NewDateTime создает DateTime из time.Time, отбрасывая секунды
func NewDateTime(t time.Time) DateTime {
	if t.IsZero() {
		return DateTime{}
	}
	return DateTime{t: t.UTC().Truncate(time.Minute)}
}

// ParseDateTime разбирает строку в одном из поддерживаемых форматов
func ParseDateTime(s string) (DateTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateTime{}, fmt.Errorf("%w: empty string", ErrInvalidDateTime)
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDateTime(t), nil
		}
	}

	return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// MustParseDateTime как ParseDateTime, но паникует при ошибке (для тестов и констант)
func MustParseDateTime(s string) DateTime {
	dt, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return dt
}

// Time возвращает значение как time.Time
func (d DateTime) Time() time.Time {
	return d.t
}

// IsZero проверяет, что значение не задано
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Before строго раньше other
func (d DateTime) Before(other DateTime) bool {
	return d.t.Before(other.t)
}

// After строго позже other
func (d DateTime) After(other DateTime) bool {
	return d.t.After(other.t)
}

// Equal тот же момент времени
func (d DateTime) Equal(other DateTime) bool {
	return d.t.Equal(other.t)
}

// String возвращает строку в формате DateTimeLayout (пустую для нулевого значения)
func (d DateTime) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateTimeLayout)
}

// MarshalJSON реализует json.Marshaler
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON реализует json.Unmarshaler. Пустая строка и null дают нулевое значение.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*d = DateTime{}
		return nil
	}

	s = strings.Trim(s, `"`)
	if s == "" {
		*d = DateTime{}
		return nil
	}

	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer для записи в БД
func (d DateTime) Value() (driver.Value, error) {
	if d.t.IsZero() {
		return nil, nil
	}
	return d.t, nil
}

// Scan реализует sql.Scanner для чтения из БД
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = DateTime{}
		return nil
	case time.Time:
		*d = NewDateTime(v)
		return nil
	case string:
		parsed, err := ParseDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateTime(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDateTime, src)
	}
}
