package systems

import (
	"fmt"

	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// PickUp переносит предмет из мира в инвентарь. При полном инвентаре
// предмет остаётся лежать на месте.
func PickUp(itemIdx int, entities *[]*domain.Entity, inv *domain.Inventory, log *domain.MessageLog) bool {
	item := (*entities)[itemIdx]

	if inv.IsFull() {
		log.Add(fmt.Sprintf("Инвентарь полон: %s не помещается.", item.Name), domain.ColorInfo)
		return false
	}

	*entities = domain.RemoveAt(*entities, itemIdx)
	inv.Add(item)
	log.Add(fmt.Sprintf("Вы подобрали %s!", item.Name), domain.ColorPickup)

	logger.Log.WithFields(logrus.Fields{
		"component": "inventory",
		"item":      item.ID,
	}).Debug("Item picked up")
	return true
}

// UseItem применяет предмет инвентаря. Потраченный предмет исчезает
// из инвентаря; отменённое применение оставляет всё как было и хода
// не стоит.
func UseItem(invIdx int, entities []*domain.Entity, inv *domain.Inventory, fov domain.Visibility, log *domain.MessageLog) domain.UseResult {
	item := inv.Items[invIdx]

	var result domain.UseResult
	switch item.Item.Kind {
	case domain.ItemHeal:
		result = castHeal(entities, log)
	case domain.ItemLightning:
		result = castLightning(entities, fov, log)
	case domain.ItemConfuse:
		result = castConfuse(entities, fov, log)
	default:
		result = domain.UseCancelled
	}

	switch result {
	case domain.UseConsumed:
		inv.RemoveAt(invIdx)
	case domain.UseCancelled:
		log.Add("Отменено.", domain.ColorInfo)
	}

	return result
}

// castHeal: лечение при полном здоровье отменяется, предмет цел.
func castHeal(entities []*domain.Entity, log *domain.MessageLog) domain.UseResult {
	player := entities[domain.PlayerIndex]

	if player.Fighter.HP >= player.Fighter.MaxHP {
		log.Add("Вы уже полностью здоровы.", domain.ColorInfo)
		return domain.UseCancelled
	}

	player.Fighter.Heal(domain.HealAmount)
	log.Add("Ваши раны затягиваются!", domain.ColorPickup)
	return domain.UseConsumed
}

// castLightning бьёт ближайшего видимого монстра в радиусе. Цель
// выбирается автоматически; без цели свиток не тратится.
func castLightning(entities []*domain.Entity, fov domain.Visibility, log *domain.MessageLog) domain.UseResult {
	target := ClosestMonster(entities, fov, domain.LightningRange)
	if target == nil {
		log.Add("Поблизости нет врага для удара.", domain.ColorInfo)
		return domain.UseCancelled
	}

	log.Add(fmt.Sprintf("Молния бьёт в %s! %d урона.", target.Name, domain.LightningDamage),
		domain.ColorCombat)
	TakeDamage(target, domain.LightningDamage, log)
	return domain.UseConsumed
}

// castConfuse оборачивает текущее состояние AI цели в замешательство.
// Повторное применение вкладывает состояния: монстр выходит из них в
// обратном порядке.
func castConfuse(entities []*domain.Entity, fov domain.Visibility, log *domain.MessageLog) domain.UseResult {
	target := ClosestMonster(entities, fov, domain.ConfuseRange)
	if target == nil {
		log.Add("Поблизости нет врага для удара.", domain.ColorInfo)
		return domain.UseCancelled
	}

	previous := target.AI
	if previous == nil {
		previous = domain.NewBasicAI()
	}
	target.AI = domain.NewConfusedAI(previous, domain.ConfuseTurns)

	log.Add(fmt.Sprintf("Глаза %s стекленеют, и он начинает бесцельно бродить!", target.Name),
		domain.ColorStatus)
	return domain.UseConsumed
}
