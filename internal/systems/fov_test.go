package systems

import (
	"testing"

	"rogue-server/internal/domain"
)

// roomWorld вырезает комнату с внутренностью (1,1)..(8,8) на карте 10x10.
func roomWorld() *domain.GameMap {
	world := domain.NewGameMap(10, 10)
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			world.Carve(x, y)
		}
	}
	return world
}

func TestFovSeesOriginAndNeighbors(t *testing.T) {
	world := roomWorld()
	origin := domain.Position{X: 4, Y: 4}

	fov := ComputeVisibleTiles(world, origin, 10)

	if !fov.IsVisible(origin) {
		t.Error("origin must always be visible")
	}
	for _, pos := range []domain.Position{{X: 3, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 5}} {
		if !fov.IsVisible(pos) {
			t.Errorf("neighbor %+v must be visible", pos)
		}
	}
}

func TestFovStopsAtWalls(t *testing.T) {
	world := domain.NewGameMap(20, 5)
	for x := 1; x <= 18; x++ {
		world.Carve(x, 2)
	}
	// Стена поперёк коридора
	world.Tiles[2][9] = domain.WallTile()

	fov := ComputeVisibleTiles(world, domain.Position{X: 2, Y: 2}, 10)

	if !fov.IsVisible(domain.Position{X: 9, Y: 2}) {
		t.Error("the blocking wall itself must be visible")
	}
	if fov.IsVisible(domain.Position{X: 11, Y: 2}) {
		t.Error("tiles behind a wall must be hidden")
	}
}

func TestFovRespectsRadius(t *testing.T) {
	world := domain.NewGameMap(40, 5)
	for x := 1; x <= 38; x++ {
		world.Carve(x, 2)
	}

	fov := ComputeVisibleTiles(world, domain.Position{X: 2, Y: 2}, 5)

	if !fov.IsVisible(domain.Position{X: 7, Y: 2}) {
		t.Error("tile at exactly the radius must be visible")
	}
	if fov.IsVisible(domain.Position{X: 20, Y: 2}) {
		t.Error("tile far beyond the radius must be hidden")
	}
}

func TestFovMarksVisibleTilesExplored(t *testing.T) {
	world := roomWorld()

	ComputeVisibleTiles(world, domain.Position{X: 4, Y: 4}, 10)

	if !world.At(4, 4).Explored || !world.At(5, 5).Explored {
		t.Error("visible tiles must become explored")
	}

	// Второй расчёт из другого угла не гасит старую разведку
	ComputeVisibleTiles(world, domain.Position{X: 1, Y: 1}, 2)
	if !world.At(8, 8).Explored {
		t.Error("explored flag must survive later fov passes")
	}
}
