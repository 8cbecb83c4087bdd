package dungeon

import (
	"math/rand"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// placementAttempts - бюджет попыток найти свободный тайл для одной
// сущности; при исчерпании сущность просто не появляется.
const placementAttempts = 10

// LevelBuilder собирает уровень: карту, игрока и население комнат.
// Весь рандом проходит через один rng, поэтому уровень полностью
// детерминирован сидом.
type LevelBuilder struct {
	rng *rand.Rand

	width, height int

	maxRooms    int
	roomMinSize int
	roomMaxSize int

	maxRoomMonsters int
	maxRoomItems    int

	// rooms - принятые комнаты последнего Build (для инспекции в тестах).
	rooms []Rect
}

// NewLevel создаёт билдер с параметрами классической карты.
func NewLevel(rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		rng:             rng,
		width:           80,
		height:          45,
		maxRooms:        30,
		roomMinSize:     6,
		roomMaxSize:     10,
		maxRoomMonsters: 3,
		maxRoomItems:    2,
	}
}

func (b *LevelBuilder) WithSize(width, height int) *LevelBuilder {
	b.width = width
	b.height = height
	return b
}

func (b *LevelBuilder) WithRooms(maxRooms, minSize, maxSize int) *LevelBuilder {
	b.maxRooms = maxRooms
	b.roomMinSize = minSize
	b.roomMaxSize = maxSize
	return b
}

func (b *LevelBuilder) WithPopulation(maxMonsters, maxItems int) *LevelBuilder {
	b.maxRoomMonsters = maxMonsters
	b.maxRoomItems = maxItems
	return b
}

// Build генерирует уровень. Игрок всегда занимает нулевой индекс
// коллекции сущностей и стоит в центре первой принятой комнаты.
func (b *LevelBuilder) Build() (*domain.GameMap, []*domain.Entity) {
	world := domain.NewGameMap(b.width, b.height)
	entities := []*domain.Entity{CreatePlayer(b.rng)}

	b.rooms = nil

	for attempt := 0; attempt < b.maxRooms; attempt++ {
		w := b.roomMinSize + b.rng.Intn(b.roomMaxSize-b.roomMinSize+1)
		h := b.roomMinSize + b.rng.Intn(b.roomMaxSize-b.roomMinSize+1)
		x := b.rng.Intn(b.width - w - 1)
		y := b.rng.Intn(b.height - h - 1)

		room := NewRect(x, y, w, h)

		overlaps := false
		for _, other := range b.rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		b.carveRoom(world, room)
		cx, cy := room.Center()

		if len(b.rooms) == 0 {
			entities[domain.PlayerIndex].Pos = domain.Position{X: cx, Y: cy}
		} else {
			// Коридор к центру предыдущей комнаты. Порядок колен
			// выбирается монетой.
			px, py := b.rooms[len(b.rooms)-1].Center()
			if b.rng.Intn(2) == 0 {
				b.carveHTunnel(world, px, cx, py)
				b.carveVTunnel(world, py, cy, cx)
			} else {
				b.carveVTunnel(world, py, cy, px)
				b.carveHTunnel(world, px, cx, cy)
			}
		}

		// Комната населяется сразу после принятия, до следующей
		// попытки: расход rng не зависит от дальнейших отказов.
		entities = b.populateRoom(room, entities)

		b.rooms = append(b.rooms, room)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"rooms":     len(b.rooms),
		"entities":  len(entities),
	}).Info("Level generated")

	return world, entities
}

// carveRoom вырезает внутренность комнаты, границы остаются стенами.
func (b *LevelBuilder) carveRoom(world *domain.GameMap, room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			world.Carve(x, y)
		}
	}
}

func (b *LevelBuilder) carveHTunnel(world *domain.GameMap, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		world.Carve(x, y)
	}
}

func (b *LevelBuilder) carveVTunnel(world *domain.GameMap, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		world.Carve(x, y)
	}
}

// populateRoom раскладывает монстров и предметы по свободным тайлам
// внутренности комнаты.
func (b *LevelBuilder) populateRoom(room Rect, entities []*domain.Entity) []*domain.Entity {
	monsters := b.rng.Intn(b.maxRoomMonsters + 1)
	for i := 0; i < monsters; i++ {
		pos, ok := b.findFreeTile(room, entities)
		if !ok {
			continue
		}
		entities = append(entities, pickMonster(b.rng).Spawn(b.rng, pos))
	}

	items := b.rng.Intn(b.maxRoomItems + 1)
	for i := 0; i < items; i++ {
		pos, ok := b.findFreeTile(room, entities)
		if !ok {
			continue
		}
		entities = append(entities, pickItem(b.rng).Spawn(b.rng, pos))
	}

	return entities
}

// findFreeTile ищет тайл внутренности комнаты, не занятый другой
// сущностью. Возвращает ok=false при исчерпании бюджета попыток.
func (b *LevelBuilder) findFreeTile(room Rect, entities []*domain.Entity) (domain.Position, bool) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		pos := domain.Position{
			X: room.X1 + 1 + b.rng.Intn(room.X2-room.X1-1),
			Y: room.Y1 + 1 + b.rng.Intn(room.Y2-room.Y1-1),
		}

		occupied := false
		for _, e := range entities {
			if e.Pos == pos {
				occupied = true
				break
			}
		}
		if !occupied {
			return pos, true
		}
	}
	return domain.Position{}, false
}
