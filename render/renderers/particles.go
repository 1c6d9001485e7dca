package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sarada/render"
)

// ParticleRenderer draws decorative sparks, fading with remaining life
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, p := range ctx.Snap.Particles {
		x, y := ctx.ToCell(p.Pos)
		c := render.ParticlePalette[p.Color%len(render.ParticlePalette)]
		buf.SetFgOnly(x, y, particleGlyph(p.Size), render.Fade(c, render.RgbField, p.Alpha), tcell.AttrNone)
	}
}

func particleGlyph(size float64) rune {
	switch {
	case size >= 6:
		return '*'
	case size >= 4:
		return '•'
	default:
		return '·'
	}
}
