package uid

import (
	"strings"

	"github.com/google/uuid"
)

// Length длина генерируемого идентификатора
const Length = 32

// Generator генератор уникальных идентификаторов записей
type Generator interface {
	Generate() string
}

// UUIDGenerator генерирует идентификаторы на основе UUID v4
// Формат: 32 hex-символа без дефисов
type UUIDGenerator struct{}

// NewUUIDGenerator создает новый генератор идентификаторов
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate возвращает новый 32-символьный идентификатор без дефисов
func (g *UUIDGenerator) Generate() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
