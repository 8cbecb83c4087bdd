package actions

import (
	"fmt"

	"rogue-server/internal/domain"
	"rogue-server/internal/engine/handlers"
	"rogue-server/pkg/api"
)

// HandleDrop выкладывает предмет из инвентаря под ноги игроку.
// Как и остальное управление инвентарём, хода не тратит.
func HandleDrop(ctx *handlers.Context, payload *api.ItemPayload) (handlers.Result, error) {
	if payload.Index >= len(ctx.Inventory.Items) {
		ctx.Log.Add("Такого предмета нет в инвентаре.", domain.ColorInfo)
		return handlers.Result{}, nil
	}

	item := ctx.Inventory.RemoveAt(payload.Index)
	item.Pos = ctx.Actor.Pos
	*ctx.Entities = append(*ctx.Entities, item)

	ctx.Log.Add(fmt.Sprintf("Вы бросили %s.", item.Name), domain.ColorInfo)
	return handlers.Result{}, nil
}
