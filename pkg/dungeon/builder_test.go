package dungeon

import (
	"math/rand"
	"os"
	"testing"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 5, 5)

	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", NewRect(3, 3, 5, 5), true},
		{"touching edges", NewRect(5, 0, 5, 5), true},
		{"separated", NewRect(7, 7, 3, 3), false},
		{"contained", NewRect(1, 1, 2, 2), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.b); got != tc.want {
				t.Errorf("Intersects = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(a); got != tc.want {
				t.Errorf("Intersects must be symmetric")
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(2, 4, 6, 8)
	cx, cy := r.Center()
	if cx != 5 || cy != 8 {
		t.Errorf("Center = (%d,%d), want (5,8)", cx, cy)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	build := func() (*domain.GameMap, []*domain.Entity) {
		return NewLevel(rand.New(rand.NewSource(42))).Build()
	}

	w1, e1 := build()
	w2, e2 := build()

	if len(e1) != len(e2) {
		t.Fatalf("same seed produced %d and %d entities", len(e1), len(e2))
	}
	for i := range e1 {
		if e1[i].Pos != e2[i].Pos || e1[i].Name != e2[i].Name {
			t.Errorf("entity %d differs between runs: %v vs %v", i, e1[i], e2[i])
		}
	}
	for y := 0; y < w1.Height; y++ {
		for x := 0; x < w1.Width; x++ {
			if w1.At(x, y) != w2.At(x, y) {
				t.Fatalf("tile (%d,%d) differs between runs", x, y)
			}
		}
	}
}

func TestBuildRoomsNeverOverlap(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		b := NewLevel(rand.New(rand.NewSource(seed)))
		world, _ := b.Build()

		for i := 0; i < len(b.rooms); i++ {
			for j := i + 1; j < len(b.rooms); j++ {
				if b.rooms[i].Intersects(b.rooms[j]) {
					t.Fatalf("seed %d: rooms %d and %d overlap", seed, i, j)
				}
			}
		}

		// Внутренность каждой принятой комнаты проходима
		for _, room := range b.rooms {
			for y := room.Y1 + 1; y < room.Y2; y++ {
				for x := room.X1 + 1; x < room.X2; x++ {
					if world.At(x, y).Blocked {
						t.Fatalf("seed %d: interior tile (%d,%d) is a wall", seed, x, y)
					}
				}
			}
		}
	}
}

func TestBuildPlayerFirst(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		world, entities := NewLevel(rand.New(rand.NewSource(seed))).Build()

		player := entities[domain.PlayerIndex]
		if player.Fighter == nil || player.Fighter.OnDeath != domain.DeathPlayer {
			t.Fatal("entity 0 must be the player")
		}
		if world.At(player.Pos.X, player.Pos.Y).Blocked {
			t.Errorf("seed %d: player must stand on a walkable tile", seed)
		}
	}
}

func TestBuildBorderStaysWalled(t *testing.T) {
	world, _ := NewLevel(rand.New(rand.NewSource(7))).Build()

	for x := 0; x < world.Width; x++ {
		if !world.At(x, 0).Blocked || !world.At(x, world.Height-1).Blocked {
			t.Fatalf("border tile in column %d was carved", x)
		}
	}
	for y := 0; y < world.Height; y++ {
		if !world.At(0, y).Blocked || !world.At(world.Width-1, y).Blocked {
			t.Fatalf("border tile in row %d was carved", y)
		}
	}
}

func TestBuildEntityComponents(t *testing.T) {
	_, entities := NewLevel(rand.New(rand.NewSource(99))).Build()

	for i, e := range entities[1:] {
		switch {
		case e.Fighter != nil:
			if e.AI == nil || !e.Blocks || !e.Alive {
				t.Errorf("monster %d (%s) must block, live and carry AI", i, e.Name)
			}
			if e.Fighter.OnDeath != domain.DeathMonster {
				t.Errorf("monster %d must use monster death behavior", i)
			}
		case e.Item != nil:
			if e.Blocks || e.AI != nil {
				t.Errorf("item %d (%s) must not block or act", i, e.Name)
			}
		default:
			t.Errorf("entity %d (%s) has neither fighter nor item", i, e.Name)
		}
	}
}

func TestBuildEntitiesOnWalkableTiles(t *testing.T) {
	world, entities := NewLevel(rand.New(rand.NewSource(3))).Build()

	for _, e := range entities {
		if world.At(e.Pos.X, e.Pos.Y).Blocked {
			t.Errorf("%s placed inside a wall at (%d,%d)", e.Name, e.Pos.X, e.Pos.Y)
		}
	}
}
