package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the tick and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDeltaMs caps a single tick's delta after a stall (suspend, resize storm)
	MaxFrameDeltaMs = 250.0

	// EventChannelSize is the host's buffered terminal event channel
	EventChannelSize = 256
)

// Board Geometry
// The engine works in board units; one terminal cell is CellWidth x CellHeight units
const (
	CellWidth  = 10.0
	CellHeight = 20.0

	// DefaultBoardWidth and DefaultBoardHeight match an 80x24 terminal
	DefaultBoardWidth  = 80 * CellWidth
	DefaultBoardHeight = 24 * CellHeight

	// InputAnchorRows is how far above the bottom edge the input box sits, in rows
	InputAnchorRows = 3
)
