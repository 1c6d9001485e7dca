package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/engine"
	"github.com/lixenwraith/sarada/render"
)

const (
	enemyGlyph   = '@'
	stolenGlyph  = '●'
	bubblePadCol = 1
)

// EnemyRenderer draws each enemy with its word bubble and key progress
// Layout, top to bottom: bubble, key, body
type EnemyRenderer struct{}

func NewEnemyRenderer() *EnemyRenderer {
	return &EnemyRenderer{}
}

func (r *EnemyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, e := range ctx.Snap.Enemies {
		if e.State == core.EnemyEscaped {
			continue
		}
		x, y := ctx.ToCell(e.Pos)
		r.drawBody(buf, e, x, y)
		if e.State == core.EnemyCarrying {
			continue
		}
		r.drawKey(buf, e, x, y-1)
		r.drawBubble(buf, e, x, y-2)
	}
}

func (r *EnemyRenderer) drawBody(buf *render.RenderBuffer, e engine.EnemyView, x, y int) {
	attrs := tcell.AttrNone
	if e.Scale > 1.2 {
		attrs = tcell.AttrBold
	}
	switch e.State {
	case core.EnemyCarrying:
		buf.SetFgOnly(x, y, enemyGlyph, render.RgbEnemyCarrying, tcell.AttrBold)
		buf.SetFgOnly(x+1, y, stolenGlyph, render.RgbFood, tcell.AttrNone)
	default:
		buf.SetFgOnly(x, y, enemyGlyph, render.Fade(render.RgbEnemy, render.RgbField, e.Alpha), attrs)
	}
}

// drawKey colours the typed prefix separately from the pending suffix
func (r *EnemyRenderer) drawKey(buf *render.RenderBuffer, e engine.EnemyView, cx, y int) {
	keyRunes := []rune(e.Key)
	typed := min(max(e.Typed, 0), len(keyRunes))

	attrs := tcell.AttrNone
	if e.Locked {
		attrs = tcell.AttrBold | tcell.AttrUnderline
	}

	typedColor := render.Fade(render.RgbKeyTyped, render.RgbField, e.Alpha)
	pendingColor := render.Fade(render.RgbKeyPending, render.RgbField, e.Alpha)

	x := cx - runewidth.StringWidth(e.Key)/2
	x += buf.DrawText(x, y, string(keyRunes[:typed]), typedColor, attrs)
	buf.DrawText(x, y, string(keyRunes[typed:]), pendingColor, attrs)
}

func (r *EnemyRenderer) drawBubble(buf *render.RenderBuffer, e engine.EnemyView, cx, y int) {
	w := runewidth.StringWidth(e.Display)
	left := cx - w/2 - bubblePadCol

	fg := render.RgbBubble
	attrs := tcell.AttrNone
	if e.Locked {
		fg = render.RgbBubbleLocked
		attrs = tcell.AttrBold
	}

	buf.FillBg(left, y, w+2*bubblePadCol, 1, render.Fade(render.RgbInputBox, render.RgbField, e.Alpha))
	buf.DrawText(left+bubblePadCol, y, e.Display, render.Fade(fg, render.RgbInputBox, e.Alpha), attrs)
}
