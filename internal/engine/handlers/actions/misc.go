package actions

import "rogue-server/internal/engine/handlers"

// HandleInventory запрашивает свежий снимок ради инвентаря (клиент
// открывает меню выбора). Управление инвентарём хода не стоит.
func HandleInventory(ctx *handlers.Context) (handlers.Result, error) {
	return handlers.Result{}, nil
}

// HandleFullscreen - переключение полного экрана целиком клиентское.
// Команда принимается, чтобы не считаться нераспознанной, но состояние
// мира не трогает и хода не стоит.
func HandleFullscreen(ctx *handlers.Context) (handlers.Result, error) {
	return handlers.Result{}, nil
}

// HandleQuit завершает сессию. Команда терминальна и доступна даже
// после смерти игрока.
func HandleQuit(ctx *handlers.Context) (handlers.Result, error) {
	return handlers.Result{Quit: true}, nil
}
