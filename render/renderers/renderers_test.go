package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/engine"
	"github.com/lixenwraith/sarada/render"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestOrchestrator(t *testing.T) (*render.RenderOrchestrator, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t)
	o := render.NewRenderOrchestrator(screen)
	RegisterDefaults(o)
	return o, screen
}

// baseSnapshot maps one board unit pair per cell at 80x24
func baseSnapshot(state core.SessionState) engine.Snapshot {
	return engine.Snapshot{
		Frame: 1,
		Board: engine.Board{Width: 80 * constants.CellWidth, Height: 24 * constants.CellHeight},
		HUD: engine.HUD{
			State:         state,
			Difficulty:    core.DifficultyNormal,
			Score:         120,
			Lives:         3,
			MaxLives:      5,
			StageProgress: 4,
			StageGoal:     25,
		},
	}
}

func rowString(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenContains(screen tcell.SimulationScreen, s string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowString(screen, y), s) {
			return true
		}
	}
	return false
}

func TestHUDRendering(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.HUD.Combo = 3

	o.RenderFrame(snap)

	row := rowString(screen, 0)
	for _, want := range []string{"SCORE 000120", "LIVES ●●●○○", "STAGE 4/25", "NORMAL", "COMBO x3"} {
		if !strings.Contains(row, want) {
			t.Errorf("HUD row missing %q: %q", want, row)
		}
	}
}

func TestHUDHidesSmallCombo(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.HUD.Combo = 1

	o.SetHostState(render.HostState{Muted: true})
	o.RenderFrame(snap)

	row := rowString(screen, 0)
	if strings.Contains(row, "COMBO") {
		t.Errorf("Combo below threshold shown: %q", row)
	}
	if !strings.Contains(row, "MUTED") {
		t.Errorf("Expected mute indicator: %q", row)
	}
}

func TestEnemyRendering(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.Enemies = []engine.EnemyView{{
		ID:      1,
		Display: "sushi",
		Key:     "sushi",
		Typed:   2,
		State:   core.EnemyApproaching,
		Pos:     core.Vec2{X: 20 * constants.CellWidth, Y: 10 * constants.CellHeight},
		Alpha:   1,
		Scale:   1,
		Locked:  true,
	}}

	o.RenderFrame(snap)

	if r, _, _, _ := screen.GetContent(20, 10); r != '@' {
		t.Errorf("Expected body at (20,10), got %q", r)
	}
	if row := rowString(screen, 9); !strings.Contains(row, "sushi") {
		t.Errorf("Expected key row, got %q", row)
	}
	if row := rowString(screen, 8); !strings.Contains(row, "sushi") {
		t.Errorf("Expected bubble row, got %q", row)
	}

	// Key starts at 20 - 5/2 = 18; first two runes typed
	_, _, typedStyle, _ := screen.GetContent(18, 9)
	_, _, pendingStyle, _ := screen.GetContent(20, 9)
	typedFg, _, attrs := typedStyle.Decompose()
	pendingFg, _, _ := pendingStyle.Decompose()
	if typedFg != render.ToTcell(render.RgbKeyTyped) {
		t.Errorf("Expected typed colour on first rune, got %v", typedFg)
	}
	if pendingFg != render.ToTcell(render.RgbKeyPending) {
		t.Errorf("Expected pending colour on third rune, got %v", pendingFg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("Expected locked key in bold")
	}
}

func TestCarryingEnemyHidesKey(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.Enemies = []engine.EnemyView{{
		Display: "sake", Key: "sake", State: core.EnemyCarrying,
		Pos:   core.Vec2{X: 10 * constants.CellWidth, Y: 5 * constants.CellHeight},
		Alpha: 1, Scale: 1,
	}}

	o.RenderFrame(snap)

	if r, _, _, _ := screen.GetContent(11, 5); r != '●' {
		t.Errorf("Expected stolen food beside carrier, got %q", r)
	}
	if strings.Contains(rowString(screen, 4), "sake") {
		t.Error("Carrying enemy must not show its key")
	}
}

func TestPlateShowsLives(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.HUD.Lives = 2

	o.RenderFrame(snap)

	// Centre (40,12); five slots span 9 columns from x=36
	row := rowString(screen, 12)
	if got := strings.Count(row, "●"); got != 2 {
		t.Errorf("Expected 2 foods on plate, got %d in %q", got, row)
	}
	if !strings.Contains(rowString(screen, 13), `\___________/`) {
		t.Errorf("Expected plate rim, got %q", rowString(screen, 13))
	}
}

func TestInputBox(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.Input = "sus"

	o.RenderFrame(snap)

	y := 24 - constants.InputAnchorRows
	if row := rowString(screen, y); !strings.Contains(row, "> sus_") {
		t.Errorf("Expected input box, got %q", row)
	}

	snap.InputShake = 1
	o.RenderFrame(snap)
	x := strings.Index(rowString(screen, y), "sus")
	if x < 0 {
		t.Fatal("Input missing while shaking")
	}
	_, _, style, _ := screen.GetContent(x, y)
	if fg, _, _ := style.Decompose(); fg != render.ToTcell(render.RgbInputMiss) {
		t.Errorf("Expected miss colour while shaking, got %v", fg)
	}
}

func TestInputBoxTrimsLongBuffer(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.Input = strings.Repeat("a", 60) + "end"

	o.RenderFrame(snap)

	row := rowString(screen, 24-constants.InputAnchorRows)
	if !strings.Contains(row, "…") || !strings.Contains(row, "end_") {
		t.Errorf("Expected trimmed tail, got %q", row)
	}
}

func TestMenuOverlay(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	o.SetHostState(render.HostState{Selected: core.DifficultyHard})

	o.RenderFrame(baseSnapshot(core.StateMenu))

	for _, want := range []string{"SARADA", "> 3  hard   <", "1  easy", "Enter start"} {
		if !screenContains(screen, want) {
			t.Errorf("Menu missing %q", want)
		}
	}
	if screenContains(screen, "SCORE") {
		t.Error("HUD must be hidden in menu")
	}
}

func TestResultOverlays(t *testing.T) {
	tests := []struct {
		state core.SessionState
		want  []string
	}{
		{core.StateGameOver, []string{"GAME OVER", "Score         120", "r retry"}},
		{core.StateClear, []string{"STAGE CLEAR!", "Life bonus +  1500", "r play again"}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			o, screen := newTestOrchestrator(t)
			snap := baseSnapshot(tt.state)
			snap.HUD.ClearBonus = 1500

			o.RenderFrame(snap)

			for _, want := range tt.want {
				if !screenContains(screen, want) {
					t.Errorf("Overlay missing %q", want)
				}
			}
			if strings.Contains(rowString(screen, 24-constants.InputAnchorRows), "> ") {
				t.Error("Input box drawn outside Playing")
			}
		})
	}
}

func TestResultPanelHidesField(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StateGameOver)
	snap.Enemies = []engine.EnemyView{{
		ID:      1,
		Display: "sushi",
		Key:     "sushi",
		State:   core.EnemyCarrying,
		Pos:     core.Vec2{X: 20 * constants.CellWidth, Y: 10 * constants.CellHeight},
		Alpha:   1,
		Scale:   1,
	}}

	o.RenderFrame(snap)

	// Panel spans columns 16..63, rows 7..15 at 80x24
	r, _, style, _ := screen.GetContent(20, 10)
	if r != ' ' {
		t.Errorf("Expected panel to cover the enemy, got %q", r)
	}
	if _, bg, _ := style.Decompose(); bg != render.ToTcell(render.RgbOverlayBg) {
		t.Errorf("Expected overlay background, got %v", bg)
	}
}

func TestParticleRendering(t *testing.T) {
	o, screen := newTestOrchestrator(t)
	snap := baseSnapshot(core.StatePlaying)
	snap.Particles = []engine.ParticleView{
		{Pos: core.Vec2{X: 5 * constants.CellWidth, Y: 3 * constants.CellHeight}, Size: 7, Color: 1, Alpha: 1},
		{Pos: core.Vec2{X: 6 * constants.CellWidth, Y: 3 * constants.CellHeight}, Size: 2, Color: 0, Alpha: 0.5},
	}

	o.RenderFrame(snap)

	r, _, style, _ := screen.GetContent(5, 3)
	if r != '*' {
		t.Errorf("Expected large spark glyph, got %q", r)
	}
	if fg, _, _ := style.Decompose(); fg != render.ToTcell(render.ParticlePalette[1]) {
		t.Errorf("Expected palette colour, got %v", fg)
	}
	if r, _, _, _ := screen.GetContent(6, 3); r != '·' {
		t.Errorf("Expected small spark glyph, got %q", r)
	}
}
