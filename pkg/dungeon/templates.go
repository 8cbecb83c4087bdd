package dungeon

import (
	"math/rand"

	"rogue-server/internal/core/types"
	"rogue-server/internal/domain"
	"rogue-server/pkg/utils"
)

// Глифы сущностей. Цвет упакован вместе с символом, см. types.Glyph.
var (
	glyphPlayer = types.MakeGlyph(0xFFFFFF, '@')
	glyphOrc    = types.MakeGlyph(0x3F7F3F, 'o')
	glyphTroll  = types.MakeGlyph(0x007F00, 'T')
	glyphPotion = types.MakeGlyph(0x7F00FF, '!')
	glyphScroll = types.MakeGlyph(0xFFFF73, '#')
)

// MonsterTemplate - заготовка монстра для населения комнат.
type MonsterTemplate struct {
	Name    string
	Glyph   types.Glyph
	HP      int
	Defense int
	Power   int
}

// Spawn создаёт живого монстра в указанной точке.
func (t MonsterTemplate) Spawn(rng *rand.Rand, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     utils.GenerateDeterministicID(rng, "mon"),
		Name:   t.Name,
		Glyph:  t.Glyph,
		Pos:    pos,
		Blocks: true,
		Alive:  true,
		Fighter: &domain.FighterComponent{
			MaxHP:   t.HP,
			HP:      t.HP,
			Defense: t.Defense,
			Power:   t.Power,
			OnDeath: domain.DeathMonster,
		},
		AI: domain.NewBasicAI(),
	}
}

// ItemTemplate - заготовка предмета.
type ItemTemplate struct {
	Name  string
	Glyph types.Glyph
	Kind  domain.ItemKind
}

// Spawn создаёт лежащий на полу предмет. Предметы не блокируют проход
// и ходят вне очереди: у них нет ни Fighter, ни AI.
func (t ItemTemplate) Spawn(rng *rand.Rand, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:    utils.GenerateDeterministicID(rng, "itm"),
		Name:  t.Name,
		Glyph: t.Glyph,
		Pos:   pos,
		Item:  &domain.ItemComponent{Kind: t.Kind},
	}
}

var (
	templateOrc = MonsterTemplate{
		Name:    "орк",
		Glyph:   glyphOrc,
		HP:      domain.OrcHP,
		Defense: domain.OrcDefense,
		Power:   domain.OrcPower,
	}
	templateTroll = MonsterTemplate{
		Name:    "тролль",
		Glyph:   glyphTroll,
		HP:      domain.TrollHP,
		Defense: domain.TrollDefense,
		Power:   domain.TrollPower,
	}

	templateHealPotion = ItemTemplate{
		Name:  "зелье лечения",
		Glyph: glyphPotion,
		Kind:  domain.ItemHeal,
	}
	templateLightning = ItemTemplate{
		Name:  "свиток молнии",
		Glyph: glyphScroll,
		Kind:  domain.ItemLightning,
	}
	templateConfuse = ItemTemplate{
		Name:  "свиток замешательства",
		Glyph: glyphScroll,
		Kind:  domain.ItemConfuse,
	}
)

// CreatePlayer создаёт сущность игрока. Позиция назначается билдером
// после размещения первой комнаты.
func CreatePlayer(rng *rand.Rand) *domain.Entity {
	return &domain.Entity{
		ID:     utils.GenerateDeterministicID(rng, "plr"),
		Name:   "игрок",
		Glyph:  glyphPlayer,
		Blocks: true,
		Alive:  true,
		Fighter: &domain.FighterComponent{
			MaxHP:   domain.PlayerHP,
			HP:      domain.PlayerHP,
			Defense: domain.PlayerDefense,
			Power:   domain.PlayerPower,
			OnDeath: domain.DeathPlayer,
		},
	}
}

// pickMonster: 80% орк, 20% тролль.
func pickMonster(rng *rand.Rand) MonsterTemplate {
	if rng.Float64() < 0.8 {
		return templateOrc
	}
	return templateTroll
}

// pickItem: 70% зелье лечения, 10% молния, 20% замешательство.
func pickItem(rng *rand.Rand) ItemTemplate {
	roll := rng.Float64()
	switch {
	case roll < 0.7:
		return templateHealPotion
	case roll < 0.8:
		return templateLightning
	default:
		return templateConfuse
	}
}
