package api

import "fmt"

// Validator - самопроверка payload после декодирования.
// Обёртка обработчика вызывает Validate автоматически.
type Validator interface {
	Validate() error
}

// Validate проверяет, что шаг строго ортогональный и единичный.
// Диагонали игроку не разрешены.
func (p *DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return fmt.Errorf("direction must be non-zero")
	}
	if p.Dx != 0 && p.Dy != 0 {
		return fmt.Errorf("diagonal steps are not allowed: dx=%d dy=%d", p.Dx, p.Dy)
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return fmt.Errorf("step must be a unit step: dx=%d dy=%d", p.Dx, p.Dy)
	}
	return nil
}

// Validate отсекает отрицательные индексы. Верхняя граница зависит от
// текущего размера инвентаря и проверяется самим обработчиком.
func (p *ItemPayload) Validate() error {
	if p.Index < 0 {
		return fmt.Errorf("item index must be non-negative: %d", p.Index)
	}
	return nil
}
