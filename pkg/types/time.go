package types

import (
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM (без даты и таймзоны)
const TimeFormat = "15:04"

// TimeString время в формате "HH:MM" (настенные часы, без даты)
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что значение пустое
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("types: invalid time %q, expected HH:MM: %w", string(t), err)
	}
	return nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time %q: %w", string(t), err)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время через minutes минут (в пределах суток)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("types: invalid time %q: %w", string(t), err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore проверяет, что t раньше other (лексикографическое сравнение корректно для HH:MM)
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
