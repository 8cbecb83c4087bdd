package domain

// Tile - одна клетка карты.
// Explored монотонен: однажды исследованный тайл исследованным и остаётся.
type Tile struct {
	Blocked    bool `json:"blocked"`
	BlockSight bool `json:"blockSight"`
	Explored   bool `json:"explored"`
}

// WallTile возвращает канонический тайл-стену.
func WallTile() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// FloorTile возвращает канонический тайл-пол.
func FloorTile() Tile {
	return Tile{}
}

// GameMap - прямоугольная сетка тайлов фиксированного размера.
// Живёт ровно одну сессию: при регенерации уровня заменяется целиком.
type GameMap struct {
	Tiles  [][]Tile `json:"tiles"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
}

// NewGameMap создает карту, целиком заполненную стенами.
func NewGameMap(width, height int) *GameMap {
	tiles := make([][]Tile, height)
	for y := 0; y < height; y++ {
		row := make([]Tile, width)
		for x := 0; x < width; x++ {
			row[x] = WallTile()
		}
		tiles[y] = row
	}
	return &GameMap{Tiles: tiles, Width: width, Height: height}
}
