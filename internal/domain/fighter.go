package domain

// DeathBehavior - закрытый набор вариантов поведения при смерти.
// Вариант выбирается при создании сущности, без динамической диспетчеризации.
type DeathBehavior uint8

const (
	DeathPlayer DeathBehavior = iota
	DeathMonster
)

// FighterComponent - боевые характеристики сущности.
type FighterComponent struct {
	MaxHP   int           `json:"maxHp"`
	HP      int           `json:"hp"`
	Defense int           `json:"defense"`
	Power   int           `json:"power"`
	OnDeath DeathBehavior `json:"onDeath"`
}

// Heal восстанавливает здоровье, не превышая максимум.
func (f *FighterComponent) Heal(amount int) {
	f.HP += amount
	if f.HP > f.MaxHP {
		f.HP = f.MaxHP
	}
}
