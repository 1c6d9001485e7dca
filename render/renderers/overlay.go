package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/engine"
	"github.com/lixenwraith/sarada/render"
)

const (
	overlayWidth = 48
)

type overlayLine struct {
	text  string
	fg    colorful.Color
	attrs tcell.AttrMask
}

// OverlayRenderer draws the menu and the result panels
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	var lines []overlayLine
	switch ctx.Snap.HUD.State {
	case core.StateMenu:
		lines = menuLines(ctx.Host.Selected)
	case core.StateGameOver:
		lines = gameOverLines(ctx.Snap.HUD)
	case core.StateClear:
		lines = clearLines(ctx.Snap.HUD)
	default:
		return
	}

	width := min(overlayWidth, ctx.ScreenWidth)
	height := len(lines) + 2
	left := (ctx.ScreenWidth - width) / 2
	top := (ctx.ScreenHeight - height) / 2
	cx := ctx.ScreenWidth / 2

	buf.FillPanel(left, top, width, height, render.RgbOverlayText, render.RgbOverlayBg)
	for i, l := range lines {
		buf.DrawTextCentered(cx, top+1+i, l.text, l.fg, l.attrs)
	}
}

func menuLines(selected core.Difficulty) []overlayLine {
	lines := []overlayLine{
		{"SARADA", render.RgbOverlayTitle, tcell.AttrBold},
		{"Defend the plate from food thieves", render.RgbOverlayText, tcell.AttrNone},
		{"Type the romaji under each thief", render.RgbOverlayText, tcell.AttrNone},
		{"", render.RgbOverlayText, tcell.AttrNone},
	}
	for d := core.Difficulty(0); d < core.DifficultyCount; d++ {
		text := fmt.Sprintf("  %d  %-6s  ", int(d)+1, d.String())
		fg, attrs := render.RgbOverlayText, tcell.AttrNone
		if d == selected {
			text = fmt.Sprintf("> %d  %-6s <", int(d)+1, d.String())
			fg, attrs = render.RgbSelected, tcell.AttrBold
		}
		lines = append(lines, overlayLine{text, fg, attrs})
	}
	return append(lines,
		overlayLine{"", render.RgbOverlayText, tcell.AttrNone},
		overlayLine{"Enter start  Ctrl-S mute  Esc quit", render.RgbHUDDim, tcell.AttrNone},
	)
}

func gameOverLines(hud engine.HUD) []overlayLine {
	return []overlayLine{
		{"GAME OVER", render.RgbGameOver, tcell.AttrBold},
		{"", render.RgbOverlayText, tcell.AttrNone},
		{fmt.Sprintf("Score      %6d", hud.Score), render.RgbOverlayText, tcell.AttrNone},
		{fmt.Sprintf("Max combo  %6d", hud.MaxCombo), render.RgbOverlayText, tcell.AttrNone},
		{fmt.Sprintf("Defeated   %6d", hud.Defeated), render.RgbOverlayText, tcell.AttrNone},
		{"", render.RgbOverlayText, tcell.AttrNone},
		{"r retry  m menu  q quit", render.RgbHUDDim, tcell.AttrNone},
	}
}

func clearLines(hud engine.HUD) []overlayLine {
	return []overlayLine{
		{"STAGE CLEAR!", render.RgbClear, tcell.AttrBold},
		{"", render.RgbOverlayText, tcell.AttrNone},
		{fmt.Sprintf("Life bonus +%6d", hud.ClearBonus), render.RgbCombo, tcell.AttrNone},
		{fmt.Sprintf("Score      %6d", hud.Score), render.RgbOverlayText, tcell.AttrNone},
		{fmt.Sprintf("Max combo  %6d", hud.MaxCombo), render.RgbOverlayText, tcell.AttrNone},
		{"", render.RgbOverlayText, tcell.AttrNone},
		{"r play again  m menu  q quit", render.RgbHUDDim, tcell.AttrNone},
	}
}
