package systems

import "rogue-server/internal/domain"

// Рекурсивный shadowcasting по восьми октантам.
// Таблица множителей переводит координаты октанта в координаты карты.
var octantMultipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// VisibilityMap - множество видимых тайлов одного расчёта FOV.
// Реализует domain.Visibility.
type VisibilityMap struct {
	width   int
	visible map[int]bool
}

// IsVisible сообщает, виден ли тайл в текущем расчёте.
func (v *VisibilityMap) IsVisible(pos domain.Position) bool {
	return v.visible[pos.Y*v.width+pos.X]
}

// Count возвращает число видимых тайлов.
func (v *VisibilityMap) Count() int {
	return len(v.visible)
}

// ComputeVisibleTiles считает поле зрения из точки origin радиусом
// radius и помечает все видимые тайлы исследованными.
func ComputeVisibleTiles(world *domain.GameMap, origin domain.Position, radius int) *VisibilityMap {
	fov := &VisibilityMap{
		width:   world.Width,
		visible: make(map[int]bool),
	}

	fov.markVisible(world, origin.X, origin.Y)

	for octant := 0; octant < 8; octant++ {
		fov.castLight(world, origin.X, origin.Y, 1, 1.0, 0.0, radius,
			octantMultipliers[0][octant], octantMultipliers[1][octant],
			octantMultipliers[2][octant], octantMultipliers[3][octant])
	}

	return fov
}

func (v *VisibilityMap) markVisible(world *domain.GameMap, x, y int) {
	if !world.InBounds(x, y) {
		return
	}
	idx := world.Index(x, y)
	v.visible[idx] = true
	world.ExploreIndex(idx)
}

func (v *VisibilityMap) castLight(world *domain.GameMap, cx, cy, row int, startSlope, endSlope float64, radius, xx, xy, yx, yy int) {
	if startSlope < endSlope {
		return
	}

	radiusSq := radius * radius
	nextStart := startSlope

	for distance := row; distance <= radius; distance++ {
		blocked := false

		for dx, dy := -distance, -distance; dx <= 0; dx++ {
			leftSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rightSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if nextStart < rightSlope {
				continue
			}
			if endSlope > leftSlope {
				break
			}

			mx := cx + dx*xx + dy*xy
			my := cy + dx*yx + dy*yy

			if dx*dx+dy*dy <= radiusSq {
				v.markVisible(world, mx, my)
			}

			if blocked {
				if world.BlocksSight(mx, my) {
					nextStart = rightSlope
					continue
				}
				blocked = false
			} else if world.BlocksSight(mx, my) && distance < radius {
				blocked = true
				v.castLight(world, cx, cy, distance+1, nextStart, leftSlope,
					radius, xx, xy, yx, yy)
				nextStart = rightSlope
			}
		}

		if blocked {
			break
		}
	}
}
