package engine

import (
	"rogue-server/internal/domain"
	"rogue-server/internal/systems"
	"rogue-server/pkg/api"
	"rogue-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ProcessCommand исполняет одну команду клиента и возвращает снимок
// мира. Порядок хода жёсткий: сначала действие игрока, затем, если
// оно потратило ход, по одному ходу каждого монстра по возрастанию
// индекса.
func (g *Game) ProcessCommand(cmd api.ClientCommand) *api.ServerResponse {
	if g.State == StateExited {
		return g.BuildSnapshot(api.ResponseExit)
	}

	player := g.Player()

	// После смерти игрока мир заморожен: остаются обзор и выход.
	if !player.Alive && !deadAllowed(cmd.Action) {
		g.Log.Add("Вы мертвы.", domain.ColorAlert)
		return g.BuildSnapshot(api.ResponseUpdate)
	}

	handler, ok := g.handlers[cmd.Action]
	if !ok {
		// Нераспознанная команда не двигает мир и не стоит хода.
		g.Log.Add("Неизвестная команда.", domain.ColorInfo)
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    cmd.Action,
		}).Warn("Unknown action")
		return g.BuildSnapshot(api.ResponseUpdate)
	}

	result, err := handler(g.handlerContext(), cmd.Payload)
	if err != nil {
		g.Log.Add("Неверная команда.", domain.ColorInfo)
		logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"action":    cmd.Action,
			"error":     err,
		}).Warn("Command rejected")
		return g.BuildSnapshot(api.ResponseUpdate)
	}

	if result.Quit {
		g.State = StateExited
		logger.Log.WithField("component", "engine").Info("Session exited")
		return g.BuildSnapshot(api.ResponseExit)
	}

	// Фаза монстров: только после потраченного хода и только пока
	// игрок жив (атака монстра могла его убить до конца фазы).
	if result.TookTurn && player.Alive {
		g.refreshFov()
		g.runMonsterTurns()
	}
	g.refreshFov()

	respType := api.ResponseUpdate
	if cmd.Action == api.ActionInit {
		respType = api.ResponseInit
	}
	return g.BuildSnapshot(respType)
}

// runMonsterTurns обходит сущности по возрастанию индекса. Состав
// фазы фиксируется на её старте: сущности, добавленные по ходу фазы,
// ждут следующей.
func (g *Game) runMonsterTurns() {
	count := len(g.Entities)
	for i := 1; i < count; i++ {
		e := g.Entities[i]
		if e.AI == nil || !e.Alive {
			continue
		}
		systems.TakeAITurn(i, g.World, g.Entities, g.Fov, g.Log, g.Rng)
	}
}

// deadAllowed - команды, доступные мёртвому игроку.
func deadAllowed(action string) bool {
	switch action {
	case api.ActionQuit, api.ActionInit, api.ActionFullscreen:
		return true
	}
	return false
}
