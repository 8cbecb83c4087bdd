package domain

import "math"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo возвращает евклидово расстояние до другой точки.
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(other.X - p.X)
	dy := float64(other.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Shift возвращает новую позицию со смещением, не меняя текущую.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// StepToward нормализует вектор к цели в единичный шаг: каждая ось делится
// на длину вектора и округляется к ближайшему из {-1, 0, 1}. Это нарочито
// приблизительный поиск пути - против одиночных препятствий сущность может
// застрять, и это принятое поведение.
func (p Position) StepToward(target Position) (int, int) {
	dx := float64(target.X - p.X)
	dy := float64(target.Y - p.Y)
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return 0, 0
	}
	return int(math.Round(dx / dist)), int(math.Round(dy / dist))
}
