package renderers

import (
	"github.com/lixenwraith/sarada/render"
)

// FieldRenderer paints the playfield background
type FieldRenderer struct{}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	buf.FillBg(0, 0, ctx.ScreenWidth, ctx.ScreenHeight, render.RgbField)
}
