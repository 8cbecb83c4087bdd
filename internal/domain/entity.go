package domain

import (
	"fmt"

	"rogue-server/internal/core/types"
)

// PlayerIndex - позиция игрока в коллекции сущностей. Зарезервирована
// на всё время сессии и никогда не переназначается.
const PlayerIndex = 0

// Entity - центральная запись модели. Способности задаются опциональными
// компонентами: nil означает, что способности нет.
type Entity struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Glyph  types.Glyph `json:"glyph"`
	Pos    Position    `json:"pos"`
	Blocks bool        `json:"blocks"`
	Alive  bool        `json:"alive"`

	Fighter *FighterComponent `json:"fighter,omitempty"`
	AI      *AIComponent      `json:"ai,omitempty"`
	Item    *ItemComponent    `json:"item,omitempty"`
}

// MutPair возвращает две неперекрывающиеся ссылки на элементы коллекции -
// атакующего и защищающегося, либо ходящего и его цель. Индексы обязаны
// различаться: совпадение означает дефект логики, а не восстановимую
// ошибку, поэтому паникуем.
func MutPair(entities []*Entity, first, second int) (*Entity, *Entity) {
	if first == second {
		panic(fmt.Sprintf("MutPair: both sides point at index %d", first))
	}
	return entities[first], entities[second]
}

// RemoveAt удаляет сущность, сохраняя порядок остальных: живые ссылки
// по индексам левее idx остаются верными до конца хода.
func RemoveAt(entities []*Entity, idx int) []*Entity {
	return append(entities[:idx], entities[idx+1:]...)
}
