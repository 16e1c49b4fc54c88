package types

import (
	"fmt"
	"time"
)

// DateFormat формат даты YYYY-MM-DD
const DateFormat = "2006-01-02"

// DateString календарная дата в формате "YYYY-MM-DD" (без времени и таймзоны)
type DateString string

// NewDateString создает DateString из time.Time
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}

// IsZero проверяет, что значение пустое
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет формат YYYY-MM-DD
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return fmt.Errorf("types: invalid date %q, expected YYYY-MM-DD: %w", string(d), err)
	}
	return nil
}

// Time парсит дату в time.Time (UTC, полночь)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid date %q: %w", string(d), err)
	}
	return t, nil
}

// IsBefore проверяет, что d раньше other (лексикографическое сравнение корректно для YYYY-MM-DD)
func (d DateString) IsBefore(other DateString) bool {
	return string(d) < string(other)
}
