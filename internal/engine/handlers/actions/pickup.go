package actions

import (
	"rogue-server/internal/domain"
	"rogue-server/internal/engine/handlers"
	"rogue-server/internal/systems"
)

// HandlePickup поднимает предмет с тайла игрока. Управление
// инвентарём хода не стоит, удачное оно или нет.
func HandlePickup(ctx *handlers.Context) (handlers.Result, error) {
	entities := *ctx.Entities

	itemIdx := -1
	for i, e := range entities {
		if e.Item != nil && e.Pos == ctx.Actor.Pos {
			itemIdx = i
			break
		}
	}

	if itemIdx < 0 {
		ctx.Log.Add("Здесь нечего подбирать.", domain.ColorInfo)
		return handlers.Result{}, nil
	}

	systems.PickUp(itemIdx, ctx.Entities, ctx.Inventory, ctx.Log)
	return handlers.Result{}, nil
}
