package dungeon

// Rect - прямоугольная комната в координатах карты. Границы (X1,Y1)
// и (X2,Y2) включительно принадлежат комнате и остаются стенами;
// вырезается только внутренность.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect строит комнату по левому верхнему углу и размерам.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center возвращает центр комнаты (целочисленное деление).
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects - пересечение по включительным границам: комнаты,
// соприкасающиеся стенами, тоже считаются пересекающимися.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
