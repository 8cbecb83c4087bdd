package domain

// AIKind - закрытый набор вариантов поведения.
type AIKind uint8

const (
	// AIBasic - преследование игрока и атака вплотную.
	AIBasic AIKind = iota
	// AIConfused - временное случайное блуждание с возвратом
	// к прежнему поведению.
	AIConfused
)

// AIComponent - состояние мозгов сущности. Рекурсивный вариант:
// Confused хранит полный снимок прежнего состояния в Previous, поэтому
// после окончания эффекта поведение восстанавливается в точности,
// включая вложенный Confused произвольной глубины. Это строго убывающее
// рекурсивное значение, а не циклический граф.
type AIComponent struct {
	Kind AIKind `json:"kind"`

	// Только для AIConfused:
	Previous  *AIComponent `json:"previous,omitempty"`
	Remaining int          `json:"remaining,omitempty"`
}

// NewBasicAI создает поведение преследования.
func NewBasicAI() *AIComponent {
	return &AIComponent{Kind: AIBasic}
}

// NewConfusedAI оборачивает прежнее поведение растерянностью
// на remaining ходов.
func NewConfusedAI(previous *AIComponent, remaining int) *AIComponent {
	return &AIComponent{Kind: AIConfused, Previous: previous, Remaining: remaining}
}
