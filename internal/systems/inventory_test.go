package systems

import (
	"strings"
	"testing"

	"rogue-server/internal/domain"
)

func newPotion(id string, x, y int) *domain.Entity {
	return &domain.Entity{
		ID:   id,
		Name: "зелье лечения",
		Pos:  domain.Position{X: x, Y: y},
		Item: &domain.ItemComponent{Kind: domain.ItemHeal},
	}
}

func TestPickUpMovesItemToInventory(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1), newPotion("pot-1", 1, 1)}
	inv := domain.NewInventory(domain.InventoryCapacity)
	log := domain.NewMessageLog()

	if !PickUp(1, &entities, inv, log) {
		t.Fatal("pickup must succeed")
	}
	if len(entities) != 1 {
		t.Errorf("item must leave the world, %d entities left", len(entities))
	}
	if len(inv.Items) != 1 || inv.Items[0].ID != "pot-1" {
		t.Errorf("item must land in the inventory: %+v", inv.Items)
	}
}

func TestPickUpIntoFullInventory(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1), newPotion("pot-extra", 1, 1)}
	inv := domain.NewInventory(2)
	inv.Add(newPotion("pot-1", 0, 0))
	inv.Add(newPotion("pot-2", 0, 0))
	log := domain.NewMessageLog()

	if PickUp(1, &entities, inv, log) {
		t.Fatal("pickup into a full inventory must fail")
	}
	if len(entities) != 2 {
		t.Error("rejected item must stay in the world")
	}
	if len(inv.Items) != 2 {
		t.Error("inventory must be unchanged")
	}
	if log.Len() != 1 || !strings.Contains(log.Messages[0].Text, "Инвентарь полон") {
		t.Errorf("full-inventory message missing: %+v", log.Messages)
	}
}

func TestUseHealAtFullHealthIsCancelled(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1)}
	inv := domain.NewInventory(domain.InventoryCapacity)
	inv.Add(newPotion("pot-1", 0, 0))
	log := domain.NewMessageLog()

	result := UseItem(0, entities, inv, stubFov(true), log)

	if result != domain.UseCancelled {
		t.Fatalf("heal at full HP must cancel, got %v", result)
	}
	if len(inv.Items) != 1 {
		t.Error("cancelled use must not consume the item")
	}
	if log.Len() != 2 || log.Messages[1].Text != "Отменено." {
		t.Errorf("cancel messages wrong: %+v", log.Messages)
	}
}

func TestUseHealRestoresCappedHP(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1)}
	entities[0].Fighter.HP = 10
	inv := domain.NewInventory(domain.InventoryCapacity)
	inv.Add(newPotion("pot-1", 0, 0))
	log := domain.NewMessageLog()

	result := UseItem(0, entities, inv, stubFov(true), log)

	if result != domain.UseConsumed {
		t.Fatalf("heal below max HP must consume, got %v", result)
	}
	if entities[0].Fighter.HP != 10+domain.HealAmount {
		t.Errorf("HP = %d, want %d", entities[0].Fighter.HP, 10+domain.HealAmount)
	}
	if len(inv.Items) != 0 {
		t.Error("consumed item must leave the inventory")
	}
}

func TestUseLightningWithoutTargetIsCancelled(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1)}
	inv := domain.NewInventory(domain.InventoryCapacity)
	inv.Add(&domain.Entity{
		ID:   "scr-1",
		Name: "свиток молнии",
		Item: &domain.ItemComponent{Kind: domain.ItemLightning},
	})
	log := domain.NewMessageLog()

	result := UseItem(0, entities, inv, stubFov(true), log)

	if result != domain.UseCancelled {
		t.Fatalf("lightning without a target must cancel, got %v", result)
	}
	if len(inv.Items) != 1 {
		t.Error("scroll must survive a cancelled cast")
	}
}

func TestUseLightningKillsWeakMonster(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1), newOrc("orc-1", 3, 1)}
	inv := domain.NewInventory(domain.InventoryCapacity)
	inv.Add(&domain.Entity{
		ID:   "scr-1",
		Name: "свиток молнии",
		Item: &domain.ItemComponent{Kind: domain.ItemLightning},
	})
	log := domain.NewMessageLog()

	result := UseItem(0, entities, inv, stubFov(true), log)

	if result != domain.UseConsumed {
		t.Fatalf("lightning with a target must consume, got %v", result)
	}
	if entities[1].Alive {
		t.Error("40 damage must kill an orc outright")
	}
}

func TestUseConfuseWrapsCurrentState(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1), newOrc("orc-1", 3, 1)}
	basic := entities[1].AI
	inv := domain.NewInventory(domain.InventoryCapacity)
	inv.Add(&domain.Entity{
		ID:   "scr-1",
		Name: "свиток замешательства",
		Item: &domain.ItemComponent{Kind: domain.ItemConfuse},
	})
	log := domain.NewMessageLog()

	result := UseItem(0, entities, inv, stubFov(true), log)

	if result != domain.UseConsumed {
		t.Fatalf("confuse with a target must consume, got %v", result)
	}
	ai := entities[1].AI
	if ai.Kind != domain.AIConfused || ai.Remaining != domain.ConfuseTurns {
		t.Fatalf("target AI = %+v, want fresh confusion", ai)
	}
	if ai.Previous != basic {
		t.Error("confusion must box the exact previous state")
	}
}

func TestUseConfuseStacksNestedConfusion(t *testing.T) {
	entities := []*domain.Entity{newPlayer(1, 1), newOrc("orc-1", 3, 1)}
	inner := domain.NewConfusedAI(domain.NewBasicAI(), 4)
	entities[1].AI = inner
	inv := domain.NewInventory(domain.InventoryCapacity)
	inv.Add(&domain.Entity{
		ID:   "scr-1",
		Name: "свиток замешательства",
		Item: &domain.ItemComponent{Kind: domain.ItemConfuse},
	})
	log := domain.NewMessageLog()

	UseItem(0, entities, inv, stubFov(true), log)

	ai := entities[1].AI
	if ai.Previous != inner {
		t.Error("repeat confusion must nest, not replace")
	}
}
