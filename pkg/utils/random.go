package utils

import (
	"encoding/hex"
	"math/rand"
)

// GenerateDeterministicID создает ID из игрового генератора: при одинаковом
// сиде сущности уровня получают одинаковые идентификаторы. Для ID,
// которые не должны зависеть от сида (сессии), используется uuid.
func GenerateDeterministicID(rng *rand.Rand, prefix string) string {
	b := make([]byte, 8)
	rng.Read(b)
	return prefix + hex.EncodeToString(b)
}
