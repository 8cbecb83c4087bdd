package types

import "fmt"

// Glyph - упакованное представление цветного символа: внешний вид
// сущности или тайла в одном uint32.
//
//	[0:8]  - символ (1 байт)
//	[8:32] - RGB-цвет (3 байта)
type Glyph uint32

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph собирает Glyph из RGB-цвета (0xRRGGBB) и ASCII-символа.
// Лишние биты обоих аргументов отбрасываются.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// Color извлекает 24-битный RGB-цвет в формате 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// WithChar возвращает копию Glyph с заменённым символом (цвет сохраняется).
func (g Glyph) WithChar(char byte) Glyph {
	return MakeGlyph(g.Color(), char)
}

// HexColor возвращает цвет строкой вида "#RRGGBB" (формат протокола).
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

// Symbol возвращает символ строкой. Непечатаемые байты заменяются на "?".
func (g Glyph) Symbol() string {
	c := g.Char()
	if c < 32 || c > 126 {
		return "?"
	}
	return string([]byte{c})
}

// String реализует fmt.Stringer (для логов).
func (g Glyph) String() string {
	return fmt.Sprintf("Glyph{char=%q, color=%s}", g.Symbol(), g.HexColor())
}
