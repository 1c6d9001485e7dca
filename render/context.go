package render

import (
	"math"

	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/engine"
)

// HostState is UI state owned by the host rather than the engine
type HostState struct {
	Selected core.Difficulty // menu cursor
	Muted    bool
}

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap engine.Snapshot
	Host HostState

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Cells per board unit
	ScaleX float64
	ScaleY float64

	// Screen shake offset in cells, applied to the playfield only
	ShakeX int
	ShakeY int
}

// shakePattern is a fixed jitter sequence indexed by frame
var shakePattern = [...][2]int{{1, 0}, {-1, 1}, {2, -1}, {-2, 0}, {0, 1}, {1, -1}}

// NewRenderContext derives cell scale and shake from the snapshot
func NewRenderContext(snap engine.Snapshot, host HostState, width, height int) RenderContext {
	ctx := RenderContext{
		Snap:         snap,
		Host:         host,
		ScreenWidth:  width,
		ScreenHeight: height,
	}
	if snap.Board.Width > 0 && snap.Board.Height > 0 {
		ctx.ScaleX = float64(width) / snap.Board.Width
		ctx.ScaleY = float64(height) / snap.Board.Height
	}
	if snap.ScreenShake > 0 {
		p := shakePattern[snap.Frame%uint64(len(shakePattern))]
		amp := math.Ceil(snap.ScreenShake * 2)
		ctx.ShakeX = int(float64(p[0]) * amp)
		ctx.ShakeY = int(float64(p[1]) * amp / 2)
	}
	return ctx
}

// ToCell maps a board position to a screen cell, shake included
func (c RenderContext) ToCell(v core.Vec2) (int, int) {
	x := int(math.Floor(v.X*c.ScaleX)) + c.ShakeX
	y := int(math.Floor(v.Y*c.ScaleY)) + c.ShakeY
	return x, y
}

// InputShakeOffset is the horizontal jitter of the input box after a miss
func (c RenderContext) InputShakeOffset() int {
	if c.Snap.InputShake <= 0 {
		return 0
	}
	p := shakePattern[c.Snap.Frame%uint64(len(shakePattern))]
	return int(math.Round(float64(p[0]) * c.Snap.InputShake * 2))
}
