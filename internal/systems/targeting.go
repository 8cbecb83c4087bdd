package systems

import "rogue-server/internal/domain"

// ClosestMonster ищет ближайшего к игроку живого видимого монстра в
// радиусе maxRange. Сравнение строгое, поэтому при равных дистанциях
// побеждает монстр с меньшим индексом. Nil - целей нет.
func ClosestMonster(entities []*domain.Entity, fov domain.Visibility, maxRange int) *domain.Entity {
	player := entities[domain.PlayerIndex]

	var closest *domain.Entity
	best := float64(maxRange) + 1

	for i, e := range entities {
		if i == domain.PlayerIndex {
			continue
		}
		if e.Fighter == nil || e.AI == nil {
			continue
		}
		if !fov.IsVisible(e.Pos) {
			continue
		}

		if dist := player.Pos.DistanceTo(e.Pos); dist < best {
			best = dist
			closest = e
		}
	}

	return closest
}
