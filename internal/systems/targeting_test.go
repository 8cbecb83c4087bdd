package systems

import (
	"testing"

	"rogue-server/internal/domain"
)

func TestClosestMonsterPicksNearest(t *testing.T) {
	entities := []*domain.Entity{
		newPlayer(0, 0),
		newOrc("far", 4, 0),
		newOrc("near", 2, 0),
	}

	target := ClosestMonster(entities, stubFov(true), 5)
	if target == nil || target.ID != "near" {
		t.Fatalf("target = %v, want the nearest orc", target)
	}
}

func TestClosestMonsterTieGoesToLowerIndex(t *testing.T) {
	entities := []*domain.Entity{
		newPlayer(0, 0),
		newOrc("first", 3, 0),
		newOrc("second", 0, 3),
	}

	target := ClosestMonster(entities, stubFov(true), 5)
	if target == nil || target.ID != "first" {
		t.Fatalf("equal distances must keep the first candidate, got %v", target)
	}
}

func TestClosestMonsterRespectsRange(t *testing.T) {
	entities := []*domain.Entity{
		newPlayer(0, 0),
		newOrc("far", 7, 0),
	}

	if target := ClosestMonster(entities, stubFov(true), 5); target != nil {
		t.Errorf("monster beyond range must be ignored, got %v", target)
	}
	// Дистанция ровно maxRange проходит: порог best = maxRange+1.
	entities[1].Pos = domain.Position{X: 5, Y: 0}
	if target := ClosestMonster(entities, stubFov(true), 5); target == nil {
		t.Error("monster at exactly max range must be targetable")
	}
}

func TestClosestMonsterSkipsInvisibleAndInert(t *testing.T) {
	corpse := &domain.Entity{Name: "останки орк", Pos: domain.Position{X: 1, Y: 0}}
	item := &domain.Entity{
		Name: "зелье лечения",
		Pos:  domain.Position{X: 0, Y: 1},
		Item: &domain.ItemComponent{Kind: domain.ItemHeal},
	}
	entities := []*domain.Entity{newPlayer(0, 0), corpse, item}

	if target := ClosestMonster(entities, stubFov(true), 5); target != nil {
		t.Errorf("corpses and items are not targets, got %v", target)
	}

	entities = append(entities, newOrc("orc-1", 2, 0))
	if target := ClosestMonster(entities, stubFov(false), 5); target != nil {
		t.Errorf("invisible monster must be ignored, got %v", target)
	}
}
