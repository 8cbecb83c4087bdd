package actions

import (
	"rogue-server/internal/domain"
	"rogue-server/internal/engine/handlers"
	"rogue-server/internal/systems"
	"rogue-server/pkg/api"
)

// HandleUse применяет предмет инвентаря по индексу. Ход тратится
// только если предмет действительно израсходован: отмена (лечение при
// полном здоровье, свиток без цели) оставляет ход игроку.
func HandleUse(ctx *handlers.Context, payload *api.ItemPayload) (handlers.Result, error) {
	if payload.Index >= len(ctx.Inventory.Items) {
		ctx.Log.Add("Такого предмета нет в инвентаре.", domain.ColorInfo)
		return handlers.Result{}, nil
	}

	result := systems.UseItem(payload.Index, *ctx.Entities, ctx.Inventory, ctx.Fov, ctx.Log)
	return handlers.Result{TookTurn: result == domain.UseConsumed}, nil
}
