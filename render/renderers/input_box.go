package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/render"
)

const (
	inputBoxWidth  = 32
	inputPrompt    = "> "
	inputCursor    = '_'
	inputTrimGlyph = "…"
)

// InputRenderer draws the typed buffer; it shakes red after a miss
type InputRenderer struct{}

func NewInputRenderer() *InputRenderer {
	return &InputRenderer{}
}

func (r *InputRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Snap.HUD.State != core.StatePlaying {
		return
	}

	y := ctx.ScreenHeight - constants.InputAnchorRows
	width := min(inputBoxWidth, ctx.ScreenWidth)
	left := (ctx.ScreenWidth-width)/2 + ctx.InputShakeOffset()

	fg := render.RgbInput
	if ctx.Snap.InputShake > 0 {
		fg = render.RgbInputMiss
	}

	buf.FillBg(left, y, width, 1, render.RgbInputBox)

	// Keep the tail visible when the buffer outgrows the box
	text := ctx.Snap.Input
	room := width - runewidth.StringWidth(inputPrompt) - 2
	if runewidth.StringWidth(text) > room {
		text = inputTrimGlyph + tail(text, room-1)
	}

	x := left + 1
	x += buf.DrawText(x, y, inputPrompt, render.RgbHUDDim, tcell.AttrNone)
	x += buf.DrawText(x, y, text, fg, tcell.AttrBold)
	buf.SetFgOnly(x, y, inputCursor, fg, tcell.AttrBlink)
}

// tail returns the last n runes of s
func tail(s string, n int) string {
	rs := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(rs) <= n {
		return s
	}
	return string(rs[len(rs)-n:])
}
