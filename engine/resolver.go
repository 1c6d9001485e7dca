package engine

import (
	"unicode"

	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/events"
	"github.com/lixenwraith/sarada/words"
)

// SubmitChar resolves one keystroke against the locked enemy
// Characters outside the input alphabet, or any key while not Playing, are ignored
func (l *Loop) SubmitChar(c rune) {
	if l.session.State != core.StatePlaying {
		return
	}
	c = unicode.ToLower(c)
	if !words.AcceptedRune(c) {
		return
	}
	l.statKeys.Add(1)

	if l.locked == nil || l.locked.State != core.EnemyApproaching {
		l.unlock()
		l.locked = l.findTarget(c)
		if l.locked == nil {
			l.emitMiss(c, false)
			l.router.DispatchAll(l)
			return
		}
	}

	switch result, ev := l.locked.CheckInput(c); result {
	case core.InputCorrect:
		l.buffer = append(l.buffer, c)
		l.particles.Burst(l.board.InputAnchor())
		l.play(core.CueTyped)
	case core.InputComplete:
		l.emitEnemy(ev, l.locked)
		l.unlock()
	default:
		// Lock survives a rejection
		l.emitMiss(c, true)
	}
	l.router.DispatchAll(l)
}

// CancelInput drops the lock and typed buffer without penalty
func (l *Loop) CancelInput() {
	if l.locked == nil {
		return
	}
	l.unlock()
}

// Backspace trims the displayed buffer only; enemy progress is kept
func (l *Loop) Backspace() {
	if l.session.State != core.StatePlaying || len(l.buffer) == 0 {
		return
	}
	l.buffer = l.buffer[:len(l.buffer)-1]
}

// LockedID returns the locked enemy, if any
func (l *Loop) LockedID() (uint64, bool) {
	if l.locked == nil {
		return 0, false
	}
	return l.locked.ID, true
}

// findTarget returns the earliest-spawned enemy expecting c
func (l *Loop) findTarget(c rune) *Enemy {
	for _, e := range l.enemies {
		if e.Expects(c) {
			return e
		}
	}
	return nil
}

func (l *Loop) unlock() {
	l.locked = nil
	l.buffer = l.buffer[:0]
}

func (l *Loop) emitMiss(c rune, locked bool) {
	l.push(events.GameEvent{
		Type:    events.EventInputMiss,
		Payload: &events.MissPayload{Char: c, Locked: locked},
		Frame:   l.frame,
	})
}
