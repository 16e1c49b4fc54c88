package i18n

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Идентификаторы сообщений, используемые сервисом
const (
	MsgDefaultCalendarName        = "ID_DEFAULT_CALENDAR"
	MsgDefaultCalendarDescription = "ID_DEFAULT_CALENDAR_DESCRIPTION"
	MsgTooFewWorkDays             = "ID_CALENDAR_TOO_FEW_WORK_DAYS"
	MsgNoBusinessHours            = "ID_CALENDAR_NO_BUSINESS_HOURS"
	MsgIncompleteCoverage         = "ID_CALENDAR_INCOMPLETE_COVERAGE"
	MsgCalendarNotFound           = "ID_CALENDAR_NOT_FOUND"
)

// defaultMessages встроенный каталог сообщений
// Переопределяется файлом переводов из конфигурации
var defaultMessages = map[string]string{
	MsgDefaultCalendarName:        "Default Calendar",
	MsgDefaultCalendarDescription: "Default Calendar",
	MsgTooFewWorkDays:             "You must define at least 3 Working Days!",
	MsgNoBusinessHours:            "You must define at least one Business Day for all days",
	MsgIncompleteCoverage:         "Not all working days have their correspondent business day",
	MsgCalendarNotFound:           "Calendar not found",
}

// Translator каталог локализованных сообщений
type Translator struct {
	messages map[string]string
}

// New создает translator со встроенным каталогом
func New() *Translator {
	messages := make(map[string]string, len(defaultMessages))
	for key, value := range defaultMessages {
		messages[key] = value
	}
	return &Translator{messages: messages}
}

// NewFromFile создает translator, накладывая переводы из TOML-файла
// поверх встроенного каталога
func NewFromFile(path string) (*Translator, error) {
	translator := New()

	var overrides map[string]string
	if _, err := toml.DecodeFile(path, &overrides); err != nil {
		return nil, fmt.Errorf("i18n: load messages file %s: %w", path, err)
	}
	for key, value := range overrides {
		translator.messages[key] = value
	}
	return translator, nil
}

// Translate возвращает сообщение по идентификатору
// Для неизвестного идентификатора возвращается сам идентификатор
func (t *Translator) Translate(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	return key
}
