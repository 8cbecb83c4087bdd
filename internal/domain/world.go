package domain

// InBounds проверяет, лежит ли точка внутри карты.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index возвращает линейный индекс тайла (ключ для карт видимости).
func (m *GameMap) Index(x, y int) int {
	return y*m.Width + x
}

// At возвращает тайл. Выход за границы считается стеной, чтобы проверки
// движения и зрения не требовали отдельной проверки границ.
func (m *GameMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return WallTile()
	}
	return m.Tiles[y][x]
}

// Carve превращает тайл в пол. Флаг Explored не трогаем: он монотонен.
func (m *GameMap) Carve(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	t := &m.Tiles[y][x]
	t.Blocked = false
	t.BlockSight = false
}

// ExploreIndex помечает тайл исследованным по линейному индексу.
func (m *GameMap) ExploreIndex(idx int) {
	y := idx / m.Width
	x := idx % m.Width
	if m.InBounds(x, y) {
		m.Tiles[y][x].Explored = true
	}
}

// BlocksSight сообщает, перекрывает ли тайл обзор.
func (m *GameMap) BlocksSight(x, y int) bool {
	return m.At(x, y).BlockSight
}
