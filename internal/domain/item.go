package domain

// ItemKind - тег, выбирающий функцию эффекта при использовании предмета.
// Набор закрыт и перечислен на этапе компиляции.
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemLightning
	ItemConfuse
)

// ItemComponent помечает сущность как расходуемый предмет.
type ItemComponent struct {
	Kind ItemKind `json:"kind"`
}

// UseResult - исход попытки использования предмета.
type UseResult uint8

const (
	// UseCancelled - эффект не сработал, предмет остаётся в инвентаре.
	UseCancelled UseResult = iota
	// UseConsumed - эффект сработал, предмет расходуется.
	UseConsumed
)

// Inventory - ограниченное хранилище предметов, отдельное от мировой
// коллекции сущностей: подобранный предмет переезжает сюда целиком.
type Inventory struct {
	Items    []*Entity `json:"items"`
	Capacity int       `json:"capacity"`
}

// NewInventory создает пустой инвентарь заданной вместимости.
func NewInventory(capacity int) *Inventory {
	return &Inventory{Items: make([]*Entity, 0, capacity), Capacity: capacity}
}

// IsFull сообщает, исчерпана ли вместимость.
func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= inv.Capacity
}

// Add кладет предмет в инвентарь. Возвращает false при переполнении,
// ничего не меняя.
func (inv *Inventory) Add(item *Entity) bool {
	if inv.IsFull() {
		return false
	}
	inv.Items = append(inv.Items, item)
	return true
}

// RemoveAt извлекает предмет по индексу, сохраняя порядок остальных.
// Возвращает nil для индекса вне диапазона.
func (inv *Inventory) RemoveAt(idx int) *Entity {
	if idx < 0 || idx >= len(inv.Items) {
		return nil
	}
	item := inv.Items[idx]
	inv.Items = append(inv.Items[:idx], inv.Items[idx+1:]...)
	return item
}
