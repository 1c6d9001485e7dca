package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sarada/constants"
)

// Palette, Tokyo Night base
var (
	RgbBackground = colorful.Color{R: 26 / 255.0, G: 27 / 255.0, B: 38 / 255.0}
	RgbField      = colorful.Color{R: 36 / 255.0, G: 40 / 255.0, B: 59 / 255.0}

	RgbPlate     = colorful.Color{R: 220 / 255.0, G: 220 / 255.0, B: 230 / 255.0}
	RgbFood      = colorful.Color{R: 255 / 255.0, G: 158 / 255.0, B: 100 / 255.0}
	RgbFoodEaten = colorful.Color{R: 86 / 255.0, G: 95 / 255.0, B: 137 / 255.0}

	RgbEnemy         = colorful.Color{R: 247 / 255.0, G: 118 / 255.0, B: 142 / 255.0}
	RgbEnemyCarrying = colorful.Color{R: 255 / 255.0, G: 0 / 255.0, B: 80 / 255.0}
	RgbBubble        = colorful.Color{R: 192 / 255.0, G: 202 / 255.0, B: 245 / 255.0}
	RgbBubbleLocked  = colorful.Color{R: 255 / 255.0, G: 224 / 255.0, B: 102 / 255.0}
	RgbKeyPending    = colorful.Color{R: 169 / 255.0, G: 177 / 255.0, B: 214 / 255.0}
	RgbKeyTyped      = colorful.Color{R: 158 / 255.0, G: 206 / 255.0, B: 106 / 255.0}

	RgbHUD       = colorful.Color{R: 1, G: 1, B: 1}
	RgbHUDDim    = colorful.Color{R: 122 / 255.0, G: 162 / 255.0, B: 247 / 255.0}
	RgbCombo     = colorful.Color{R: 224 / 255.0, G: 175 / 255.0, B: 104 / 255.0}
	RgbInput     = colorful.Color{R: 1, G: 1, B: 1}
	RgbInputMiss = colorful.Color{R: 1, G: 0, B: 0}
	RgbInputBox  = colorful.Color{R: 65 / 255.0, G: 72 / 255.0, B: 104 / 255.0}

	RgbOverlayBg    = colorful.Color{R: 22 / 255.0, G: 22 / 255.0, B: 30 / 255.0}
	RgbOverlayTitle = colorful.Color{R: 255 / 255.0, G: 158 / 255.0, B: 100 / 255.0}
	RgbOverlayText  = colorful.Color{R: 192 / 255.0, G: 202 / 255.0, B: 245 / 255.0}
	RgbSelected     = colorful.Color{R: 158 / 255.0, G: 206 / 255.0, B: 106 / 255.0}
	RgbGameOver     = colorful.Color{R: 247 / 255.0, G: 118 / 255.0, B: 142 / 255.0}
	RgbClear        = colorful.Color{R: 158 / 255.0, G: 206 / 255.0, B: 106 / 255.0}
)

// ParticlePalette is indexed by particle colour; the last entry is typing-only
var ParticlePalette = [constants.ParticlePaletteSize]colorful.Color{
	{R: 255 / 255.0, G: 107 / 255.0, B: 107 / 255.0},
	{R: 255 / 255.0, G: 217 / 255.0, B: 61 / 255.0},
	{R: 107 / 255.0, G: 203 / 255.0, B: 119 / 255.0},
	{R: 77 / 255.0, G: 150 / 255.0, B: 255 / 255.0},
}

// Fade mixes c toward bg; alpha 1 keeps c, 0 yields bg
func Fade(c, bg colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return bg
	}
	return bg.BlendLab(c, alpha).Clamped()
}

// ToTcell converts a palette colour for the screen
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
