package domain

// Баланс. Значения фиксированы на этапе компиляции, как и наборы
// вариантов AI/предметов.
const (
	PlayerHP      = 30
	PlayerDefense = 2
	PlayerPower   = 5

	OrcHP      = 10
	OrcDefense = 0
	OrcPower   = 3

	TrollHP      = 16
	TrollDefense = 1
	TrollPower   = 4

	HealAmount = 4

	LightningDamage = 40
	LightningRange  = 5

	ConfuseRange = 8
	ConfuseTurns = 10

	// InventoryCapacity - 9 слотов: внешнее меню выбора нумерует
	// опции одной цифрой.
	InventoryCapacity = 9
)

// Цвета сообщений лога (hex-формат протокола).
const (
	ColorInfo   = "#E5E7EB" // обычные события
	ColorCombat = "#F97316" // бой
	ColorAlert  = "#DC2626" // смерть, критические события
	ColorStatus = "#38BDF8" // эффекты состояний
	ColorPickup = "#4ADE80" // предметы
)

// Visibility - предикат "тайл сейчас виден". Ядро не считает поле зрения
// само: предикат поставляет внешний коллаборатор и он авторитетен как
// для отрисовки, так и для активации/прицеливания AI.
type Visibility interface {
	IsVisible(pos Position) bool
}
