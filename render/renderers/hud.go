package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/render"
)

// HUDRenderer draws the status line on the top row
type HUDRenderer struct{}

func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hud := ctx.Snap.HUD
	if hud.State == core.StateMenu {
		return
	}

	buf.FillBg(0, 0, ctx.ScreenWidth, 1, render.RgbInputBox)

	x := 1
	x += buf.DrawText(x, 0, fmt.Sprintf("SCORE %06d", hud.Score), render.RgbHUD, tcell.AttrBold) + 2
	x += buf.DrawText(x, 0, "LIVES ", render.RgbHUDDim, tcell.AttrNone)
	x += buf.DrawText(x, 0, livesGauge(hud.Lives, hud.MaxLives), render.RgbFood, tcell.AttrNone) + 2
	x += buf.DrawText(x, 0, fmt.Sprintf("STAGE %d/%d", hud.StageProgress, hud.StageGoal), render.RgbHUDDim, tcell.AttrNone) + 2
	buf.DrawText(x, 0, strings.ToUpper(hud.Difficulty.String()), render.RgbHUDDim, tcell.AttrNone)

	right := ctx.ScreenWidth - 1
	if ctx.Host.Muted {
		right -= buf.DrawText(right-runewidth.StringWidth("MUTED"), 0, "MUTED", render.RgbHUDDim, tcell.AttrNone) + 2
	}
	if hud.Combo >= constants.ComboDisplayMin {
		combo := fmt.Sprintf("COMBO x%d", hud.Combo)
		buf.DrawText(right-runewidth.StringWidth(combo), 0, combo, render.RgbCombo, tcell.AttrBold)
	}
}

func livesGauge(lives, maxLives int) string {
	var sb strings.Builder
	for i := 0; i < maxLives; i++ {
		if i < lives {
			sb.WriteRune(foodGlyph)
		} else {
			sb.WriteRune('○')
		}
	}
	return sb.String()
}
