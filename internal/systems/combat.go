package systems

import (
	"fmt"

	"rogue-server/internal/core/types"
	"rogue-server/internal/domain"
	"rogue-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

const corpseColor = 0xBF0000

// Attack - детерминированная атака: урон = сила атакующего минус
// защита цели. Нулевой и отрицательный урон поглощается целиком.
func Attack(attacker, defender *domain.Entity, log *domain.MessageLog) {
	if attacker.Fighter == nil || defender.Fighter == nil {
		return
	}

	damage := attacker.Fighter.Power - defender.Fighter.Defense
	if damage > 0 {
		log.Add(fmt.Sprintf("%s атакует %s: %d урона.", attacker.Name, defender.Name, damage),
			domain.ColorCombat)
		TakeDamage(defender, damage, log)
	} else {
		log.Add(fmt.Sprintf("%s атакует %s, но безрезультатно.", attacker.Name, defender.Name),
			domain.ColorInfo)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"attacker":  attacker.ID,
		"defender":  defender.ID,
		"damage":    damage,
	}).Debug("Attack resolved")
}

// TakeDamage уменьшает HP и при переходе через ноль ровно один раз
// запускает поведение смерти. Повторный урон по мёртвому (Alive=false)
// смерть не перезапускает.
func TakeDamage(e *domain.Entity, amount int, log *domain.MessageLog) {
	if amount <= 0 || e.Fighter == nil {
		return
	}

	e.Fighter.HP -= amount
	if e.Fighter.HP > 0 || !e.Alive {
		return
	}

	e.Alive = false
	switch e.Fighter.OnDeath {
	case domain.DeathPlayer:
		playerDeath(e, log)
	case domain.DeathMonster:
		monsterDeath(e, log)
	}
}

// playerDeath: игрок остаётся в коллекции, сессия переходит в режим
// "смерть": обзор и выход, мир больше не двигается.
func playerDeath(e *domain.Entity, log *domain.MessageLog) {
	log.Add("Вы погибли!", domain.ColorAlert)
	e.Glyph = types.MakeGlyph(corpseColor, '%')

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"entity":    e.ID,
	}).Info("Player died")
}

// monsterDeath превращает монстра в останки: труп не блокирует проход,
// не дерётся и не ходит.
func monsterDeath(e *domain.Entity, log *domain.MessageLog) {
	log.Add(fmt.Sprintf("%s погибает!", e.Name), domain.ColorAlert)

	e.Glyph = types.MakeGlyph(corpseColor, '%')
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "останки " + e.Name

	logger.Log.WithFields(logrus.Fields{
		"component": "combat",
		"entity":    e.ID,
	}).Debug("Monster died")
}
