package handlers

import (
	"encoding/json"
	"math/rand"

	"rogue-server/internal/domain"
)

// Context - всё состояние сессии, доступное обработчику команды.
// Entities передаётся указателем: подбор и сброс предметов меняют
// состав коллекции.
type Context struct {
	World     *domain.GameMap
	Entities  *[]*domain.Entity
	Actor     *domain.Entity
	Inventory *domain.Inventory
	Fov       domain.Visibility
	Log       *domain.MessageLog
	Rng       *rand.Rand
}

// Result - классификация исполненной команды.
type Result struct {
	// TookTurn - команда потратила ход игрока; после неё ходят монстры.
	TookTurn bool
	// Quit - сессия завершена, дальнейшие команды не принимаются.
	Quit bool
}

// HandlerFunc - обработчик одной команды протокола. Payload приходит
// сырым: типизацию и валидацию добавляют обёртки из wrapper.go.
type HandlerFunc func(ctx *Context, payload json.RawMessage) (Result, error)
