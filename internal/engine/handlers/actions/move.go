package actions

import (
	"rogue-server/internal/domain"
	"rogue-server/internal/engine/handlers"
	"rogue-server/internal/systems"
	"rogue-server/pkg/api"
)

// HandleMove - шаг игрока. Шаг в сущность с боевыми характеристиками
// превращается в атаку; шаг в стену молча пропадает. В обоих случаях
// ход считается потраченным и монстры получают свой.
func HandleMove(ctx *handlers.Context, payload *api.DirectionPayload) (handlers.Result, error) {
	dest := ctx.Actor.Pos.Shift(payload.Dx, payload.Dy)

	entities := *ctx.Entities
	targetIdx := -1
	for i, e := range entities {
		if i == domain.PlayerIndex {
			continue
		}
		if e.Fighter != nil && e.Pos == dest {
			targetIdx = i
			break
		}
	}

	if targetIdx >= 0 {
		player, target := domain.MutPair(entities, domain.PlayerIndex, targetIdx)
		systems.Attack(player, target, ctx.Log)
	} else {
		systems.MoveBy(ctx.Actor, payload.Dx, payload.Dy, ctx.World, entities)
	}

	return handlers.Result{TookTurn: true}, nil
}
