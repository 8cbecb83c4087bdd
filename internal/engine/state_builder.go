package engine

import (
	"rogue-server/internal/domain"
	"rogue-server/pkg/api"
)

// Палитра тайлов: видимые рисуются ярко, исследованные вне поля
// зрения - тускло (туман войны).
const (
	colorWallLit    = "#826E32"
	colorWallDark   = "#000064"
	colorGroundLit  = "#C8B432"
	colorGroundDark = "#323296"
)

// BuildSnapshot собирает снимок мира для клиента. В снимок попадает
// только то, что игрок разведал: неисследованные тайлы и невидимые
// сущности не покидают сервер.
func (g *Game) BuildSnapshot(respType string) *api.ServerResponse {
	player := g.Player()

	resp := &api.ServerResponse{
		Type:     respType,
		PlayerID: player.ID,
		Dead:     !player.Alive,
		Grid:     &api.GridMeta{Width: g.World.Width, Height: g.World.Height},
	}

	resp.Map = g.buildTiles()
	resp.Entities = g.buildEntities()
	resp.Inventory = g.buildInventory()

	// Клиенту уходят только записи, появившиеся после прошлого снимка.
	for _, m := range g.Log.Since(g.logCursor) {
		resp.Logs = append(resp.Logs, api.LogEntry{Text: m.Text, Color: m.Color})
	}
	g.logCursor = g.Log.Len()

	return resp
}

func (g *Game) buildTiles() []api.TileView {
	var tiles []api.TileView

	for y := 0; y < g.World.Height; y++ {
		for x := 0; x < g.World.Width; x++ {
			tile := g.World.At(x, y)
			if !tile.Explored {
				continue
			}

			visible := g.Fov.IsVisible(domain.Position{X: x, Y: y})

			view := api.TileView{
				X: x, Y: y,
				IsWall:     tile.Blocked,
				IsVisible:  visible,
				IsExplored: true,
			}
			switch {
			case tile.Blocked && visible:
				view.Symbol, view.Color = "#", colorWallLit
			case tile.Blocked:
				view.Symbol, view.Color = "#", colorWallDark
			case visible:
				view.Symbol, view.Color = ".", colorGroundLit
			default:
				view.Symbol, view.Color = ".", colorGroundDark
			}

			tiles = append(tiles, view)
		}
	}

	return tiles
}

// buildEntities отдаёт видимые сущности. Игрок присутствует всегда,
// даже если стоит на невидимом тайле (патологический случай пустой
// карты).
func (g *Game) buildEntities() []api.EntityView {
	var views []api.EntityView

	for i, e := range g.Entities {
		if i != domain.PlayerIndex && !g.Fov.IsVisible(e.Pos) {
			continue
		}

		view := api.EntityView{
			ID:     e.ID,
			Name:   e.Name,
			Symbol: e.Glyph.Symbol(),
			Color:  e.Glyph.HexColor(),
		}
		view.Pos.X = e.Pos.X
		view.Pos.Y = e.Pos.Y

		if e.Fighter != nil {
			view.Stats = &api.StatsView{
				HP:      e.Fighter.HP,
				MaxHP:   e.Fighter.MaxHP,
				Defense: e.Fighter.Defense,
				Power:   e.Fighter.Power,
				IsDead:  !e.Alive,
			}
		}

		views = append(views, view)
	}

	return views
}

func (g *Game) buildInventory() *api.InventoryView {
	view := &api.InventoryView{
		Items:    make([]api.InventoryItemView, 0, len(g.Inventory.Items)),
		Capacity: g.Inventory.Capacity,
	}

	for i, item := range g.Inventory.Items {
		view.Items = append(view.Items, api.InventoryItemView{
			Index:  i,
			Name:   item.Name,
			Symbol: item.Glyph.Symbol(),
			Color:  item.Glyph.HexColor(),
		})
	}

	return view
}
