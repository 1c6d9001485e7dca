package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/render"
)

const (
	foodGlyph  = '●'
	eatenGlyph = '·'
)

// PlateRenderer draws the plate with one food per remaining life
type PlateRenderer struct{}

func NewPlateRenderer() *PlateRenderer {
	return &PlateRenderer{}
}

func (r *PlateRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hud := ctx.Snap.HUD
	if hud.State == core.StateMenu {
		return
	}

	cx, cy := ctx.ToCell(ctx.Snap.Board.Center())

	// Foods sit one row above the rim, spaced by one column
	span := 2*hud.MaxLives - 1
	x := cx - span/2
	for i := 0; i < hud.MaxLives; i++ {
		if i < hud.Lives {
			buf.SetFgOnly(x+2*i, cy, foodGlyph, render.RgbFood, tcell.AttrBold)
		} else {
			buf.SetFgOnly(x+2*i, cy, eatenGlyph, render.RgbFoodEaten, tcell.AttrNone)
		}
	}

	rim := plateRim(span + 2)
	buf.DrawTextCentered(cx, cy+1, rim, render.RgbPlate, tcell.AttrNone)
}

// plateRim is a shallow dish of the given inner width
func plateRim(inner int) string {
	rs := make([]rune, 0, inner+2)
	rs = append(rs, '\\')
	for i := 0; i < inner; i++ {
		rs = append(rs, '_')
	}
	rs = append(rs, '/')
	return string(rs)
}
