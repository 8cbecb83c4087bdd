package actions

import (
	"rogue-server/internal/domain"
	"rogue-server/internal/engine/handlers"
)

// HandleInit запрашивает первый полный снимок сессии. Хода не тратит:
// мир не должен двигаться до первой команды игрока.
func HandleInit(ctx *handlers.Context) (handlers.Result, error) {
	if ctx.Log.Len() == 0 {
		ctx.Log.Add("Добро пожаловать в подземелье. Берегись...", domain.ColorStatus)
	}
	return handlers.Result{}, nil
}
