package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	zlog "github.com/rs/zerolog/log"

	"github.com/lixenwraith/sarada/audio"
	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/engine"
	"github.com/lixenwraith/sarada/render"
	"github.com/lixenwraith/sarada/render/renderers"
	"github.com/lixenwraith/sarada/status"
	"github.com/lixenwraith/sarada/words"
)

const envWordsFile = "SARADA_WORDS_FILE"

var (
	difficultyFlag = flag.String("difficulty", "normal", "Preselected difficulty: easy, normal, hard")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/sarada.log")
	wordsFlag      = flag.String("words", "", "Word list file (display<TAB>key[<TAB>level] per line)")
	muteFlag       = flag.Bool("mute", false, "Start with audio muted")
	fpsFlag        = flag.Int("fps", 0, "Frame rate override (0 uses the default ~60)")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSARADA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	_ = godotenv.Load()
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger := zlog.Logger

	selected, ok := core.ParseDifficulty(*difficultyFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown difficulty %q, using %s\n", *difficultyFlag, selected)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	bank, err := loadBank(*wordsFlag, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load word list: %v\n", err)
		os.Exit(1)
	}

	// Audio failures are not fatal: the game runs silent
	var sound muter
	sm := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sm.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	} else {
		defer sm.Cleanup()
		if *muteFlag {
			sm.SetMuted(true)
		}
		sound = sm
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	reg := status.NewRegistry()
	engineLog := logger.With().Str("component", "engine").Logger()
	w, h := screen.Size()
	loop := engine.NewLoop(engine.Config{
		Bank:   bank,
		Cues:   sm,
		Rand:   rng,
		Logger: &engineLog,
		Status: reg,
		Board:  boardFor(w, h),
	})

	orchestrator := render.NewRenderOrchestrator(screen)
	renderers.RegisterDefaults(orchestrator)

	a := newApp(loop, sound, selected, reg, logger)

	interval := constants.FrameUpdateInterval
	if *fpsFlag > 0 {
		interval = time.Second / time.Duration(*fpsFlag)
	}
	frameTicker := time.NewTicker(interval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, constants.EventChannelSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// PollEvent returns nil once the screen is finalized
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	logger.Info().Str("difficulty", selected.String()).Int("width", w).Int("height", h).Msg("sarada started")

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev) {
					logStats(reg)
					return
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				orchestrator.Resize(w, h)
				board := boardFor(w, h)
				loop.Resize(board.Width, board.Height)
			}

		case now := <-frameTicker.C:
			loop.Tick(float64(now.Sub(last)) / float64(time.Millisecond))
			last = now

			orchestrator.SetHostState(a.hostState())
			orchestrator.RenderFrame(loop.Snapshot())
		}
	}
}

// loadBank prefers the -words flag, then SARADA_WORDS_FILE, then the embedded list
// A broken user file falls back to the embedded list
func loadBank(path string, rng *rand.Rand) (*words.WeightedBank, error) {
	if path == "" {
		path = os.Getenv(envWordsFile)
	}
	if path != "" {
		entries, err := words.LoadFile(path)
		if err == nil {
			var bank *words.WeightedBank
			if bank, err = words.NewWeightedBank(entries, rng); err == nil {
				zlog.Info().Str("path", path).Int("entries", len(entries)).Msg("word list loaded")
				return bank, nil
			}
		}
		zlog.Warn().Err(err).Str("path", path).Msg("word list rejected, using embedded list")
	}
	return words.Default(rng)
}

// boardFor converts a terminal size in cells to board units
func boardFor(cols, rows int) engine.Board {
	return engine.Board{
		Width:  float64(cols) * constants.CellWidth,
		Height: float64(rows) * constants.CellHeight,
	}
}

func logStats(reg *status.Registry) {
	ev := zlog.Info().Int("metrics", reg.TotalCount())
	for name, n := range reg.Counts() {
		ev = ev.Int64(name, n)
	}
	for name, on := range reg.Flags() {
		ev = ev.Bool(name, on)
	}
	ev.Msg("session stats")
}
