package engine

import (
	"math/rand"

	"rogue-server/internal/config"
	"rogue-server/internal/domain"
	"rogue-server/internal/engine/handlers"
	"rogue-server/internal/engine/handlers/actions"
	"rogue-server/internal/systems"
	"rogue-server/pkg/api"
	"rogue-server/pkg/dungeon"
	"rogue-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// GameState - жизненный цикл сессии.
type GameState uint8

const (
	// StateAwaitingInput - сессия жива и ждёт команду.
	StateAwaitingInput GameState = iota
	// StateExited - сессия завершена (QUIT); мир заморожен.
	StateExited
)

// Game - одна игровая сессия: карта, сущности, инвентарь и лог.
// Сессии полностью изолированы, общего состояния между ними нет.
type Game struct {
	World     *domain.GameMap
	Entities  []*domain.Entity
	Inventory *domain.Inventory
	Log       *domain.MessageLog
	Rng       *rand.Rand

	Fov   *systems.VisibilityMap
	State GameState

	handlers  map[string]handlers.HandlerFunc
	fovRadius int
	logCursor int
}

// NewGame генерирует уровень и собирает готовую к командам сессию.
// Один и тот же сид даёт байт-в-байт одинаковый уровень.
func NewGame(cfg *config.Config, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))

	world, entities := dungeon.NewLevel(rng).
		WithSize(cfg.Game.MapWidth, cfg.Game.MapHeight).
		WithRooms(cfg.Game.MaxRooms, cfg.Game.RoomMinSize, cfg.Game.RoomMaxSize).
		WithPopulation(cfg.Game.MaxRoomMonsters, cfg.Game.MaxRoomItems).
		Build()

	g := &Game{
		World:     world,
		Entities:  entities,
		Inventory: domain.NewInventory(domain.InventoryCapacity),
		Log:       domain.NewMessageLog(),
		Rng:       rng,
		State:     StateAwaitingInput,
		fovRadius: cfg.Game.FovRadius,
	}
	g.registerHandlers()
	g.refreshFov()

	logger.Log.WithFields(logrus.Fields{
		"component": "engine",
		"seed":      seed,
		"entities":  len(entities),
	}).Info("Game session created")

	return g
}

func (g *Game) registerHandlers() {
	g.handlers = map[string]handlers.HandlerFunc{
		api.ActionInit:       handlers.WithEmptyPayload(actions.HandleInit),
		api.ActionMove:       handlers.WithPayload(actions.HandleMove),
		api.ActionPickup:     handlers.WithEmptyPayload(actions.HandlePickup),
		api.ActionUse:        handlers.WithPayload(actions.HandleUse),
		api.ActionDrop:       handlers.WithPayload(actions.HandleDrop),
		api.ActionInventory:  handlers.WithEmptyPayload(actions.HandleInventory),
		api.ActionFullscreen: handlers.WithEmptyPayload(actions.HandleFullscreen),
		api.ActionQuit:       handlers.WithEmptyPayload(actions.HandleQuit),
	}
}

// Player - сущность игрока (закреплена на нулевом индексе).
func (g *Game) Player() *domain.Entity {
	return g.Entities[domain.PlayerIndex]
}

// refreshFov пересчитывает поле зрения от игрока и попутно помечает
// видимые тайлы исследованными.
func (g *Game) refreshFov() {
	g.Fov = systems.ComputeVisibleTiles(g.World, g.Player().Pos, g.fovRadius)
}

func (g *Game) handlerContext() *handlers.Context {
	return &handlers.Context{
		World:     g.World,
		Entities:  &g.Entities,
		Actor:     g.Player(),
		Inventory: g.Inventory,
		Fov:       g.Fov,
		Log:       g.Log,
		Rng:       g.Rng,
	}
}
