package systems

import "rogue-server/internal/domain"

// IsBlocked - тайл непроходим, если он стена или занят блокирующей
// сущностью. Трупы и предметы (Blocks=false) проход не закрывают.
func IsBlocked(world *domain.GameMap, entities []*domain.Entity, pos domain.Position) bool {
	if world.At(pos.X, pos.Y).Blocked {
		return true
	}
	for _, e := range entities {
		if e.Blocks && e.Pos == pos {
			return true
		}
	}
	return false
}

// MoveBy сдвигает сущность на (dx,dy). Заблокированный шаг молча
// отбрасывается, это не ошибка.
func MoveBy(e *domain.Entity, dx, dy int, world *domain.GameMap, entities []*domain.Entity) bool {
	dest := e.Pos.Shift(dx, dy)
	if IsBlocked(world, entities, dest) {
		return false
	}
	e.Pos = dest
	return true
}

// MoveToward делает один шаг в направлении цели (округление по каждой
// оси отдельно, диагонали монстрам разрешены).
func MoveToward(e *domain.Entity, target domain.Position, world *domain.GameMap, entities []*domain.Entity) bool {
	dx, dy := e.Pos.StepToward(target)
	return MoveBy(e, dx, dy, world, entities)
}
