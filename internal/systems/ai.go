package systems

import (
	"fmt"
	"math/rand"

	"rogue-server/internal/domain"
)

// TakeAITurn разыгрывает ход монстра entities[idx]. Текущее состояние
// AI снимается, решает ход и возвращает состояние на следующий ход;
// так замешательство истекает и вложенные состояния разматываются без
// отдельной машины переходов.
func TakeAITurn(idx int, world *domain.GameMap, entities []*domain.Entity, fov domain.Visibility, log *domain.MessageLog, rng *rand.Rand) {
	monster := entities[idx]
	state := monster.AI
	if state == nil {
		return
	}

	switch state.Kind {
	case domain.AIBasic:
		monster.AI = basicTurn(idx, state, world, entities, fov, log)
	case domain.AIConfused:
		monster.AI = confusedTurn(idx, state, world, entities, log, rng)
	}
}

// basicTurn: монстр активен только пока стоит в поле зрения игрока.
// Дальше чем на соседнем тайле - шаг к игроку, вплотную - атака.
func basicTurn(idx int, state *domain.AIComponent, world *domain.GameMap, entities []*domain.Entity, fov domain.Visibility, log *domain.MessageLog) *domain.AIComponent {
	monster := entities[idx]
	if !fov.IsVisible(monster.Pos) {
		return state
	}

	player := entities[domain.PlayerIndex]
	if monster.Pos.DistanceTo(player.Pos) >= 2.0 {
		MoveToward(monster, player.Pos, world, entities)
	} else if player.Fighter != nil && player.Fighter.HP > 0 {
		m, p := domain.MutPair(entities, idx, domain.PlayerIndex)
		Attack(m, p, log)
	}

	return state
}

// confusedTurn: случайный шаг в одном из 8 направлений (или топтание
// на месте), счётчик тает на единицу. На нуле монстр приходит в себя
// и восстанавливает предыдущее состояние.
func confusedTurn(idx int, state *domain.AIComponent, world *domain.GameMap, entities []*domain.Entity, log *domain.MessageLog, rng *rand.Rand) *domain.AIComponent {
	monster := entities[idx]

	if state.Remaining >= 0 {
		MoveBy(monster, rng.Intn(3)-1, rng.Intn(3)-1, world, entities)
		return domain.NewConfusedAI(state.Previous, state.Remaining-1)
	}

	log.Add(fmt.Sprintf("%s приходит в себя!", monster.Name), domain.ColorStatus)
	if state.Previous == nil {
		return domain.NewBasicAI()
	}
	return state.Previous
}
