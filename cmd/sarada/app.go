package main

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/engine"
	"github.com/lixenwraith/sarada/input"
	"github.com/lixenwraith/sarada/render"
	"github.com/lixenwraith/sarada/status"
)

// muter is the part of the sound manager the host controls directly
type muter interface {
	ToggleMute() bool
	Muted() bool
}

// app applies translated key intents to the loop between ticks
// It owns host-side state the engine does not model: the menu cursor and mute
type app struct {
	loop       *engine.Loop
	translator *input.Translator
	sound      muter // nil when audio is unavailable
	selected   core.Difficulty
	log        zerolog.Logger

	statMuted *atomic.Bool
}

func newApp(loop *engine.Loop, sound muter, selected core.Difficulty, reg *status.Registry, logger zerolog.Logger) *app {
	a := &app{
		loop:       loop,
		translator: input.NewTranslator(nil),
		sound:      sound,
		selected:   selected,
		log:        logger,
		statMuted:  reg.Bools.Get("audio.muted"),
	}
	reg.Bools.Get("audio.available").Store(sound != nil)
	a.statMuted.Store(sound == nil || sound.Muted())
	return a
}

// handleKey returns false when the player quits
func (a *app) handleKey(ev *tcell.EventKey) bool {
	return a.apply(a.translator.Translate(ev, a.loop.Session().State))
}

func (a *app) apply(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentToggleMute:
		if a.sound != nil {
			muted := a.sound.ToggleMute()
			a.statMuted.Store(muted)
			a.log.Info().Bool("muted", muted).Msg("audio toggled")
		}

	case input.IntentChar:
		a.loop.SubmitChar(in.Char)
	case input.IntentCancel:
		a.loop.CancelInput()
	case input.IntentBackspace:
		a.loop.Backspace()

	case input.IntentSelectPrev:
		a.selected = (a.selected + core.DifficultyCount - 1) % core.DifficultyCount
	case input.IntentSelectNext:
		a.selected = (a.selected + 1) % core.DifficultyCount
	case input.IntentConfirmDifficulty:
		if in.HasDifficulty {
			a.selected = in.Difficulty
		}
		a.loop.StartGame(a.selected)

	case input.IntentRetry:
		a.loop.Restart()
	case input.IntentMenu:
		a.selected = a.loop.Session().Difficulty
		a.loop.ReturnToMenu()
	}
	return true
}

// hostState is what the renderer needs from the host
func (a *app) hostState() render.HostState {
	muted := true
	if a.sound != nil {
		muted = a.sound.Muted()
	}
	return render.HostState{Selected: a.selected, Muted: muted}
}
