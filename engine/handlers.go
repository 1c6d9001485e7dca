package engine

import (
	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/events"
)

// registerHandlers binds session callbacks to enemy and input events
func registerHandlers(r *events.Router[*Loop]) {
	r.Register(events.HandlerFunc[*Loop]{
		Types: []events.EventType{events.EventEnemyArrived},
		Fn:    (*Loop).onFoodStolen,
	})
	r.Register(events.HandlerFunc[*Loop]{
		Types: []events.EventType{events.EventEnemyDefeated},
		Fn:    (*Loop).onEnemyDefeated,
	})
	r.Register(events.HandlerFunc[*Loop]{
		Types: []events.EventType{events.EventInputMiss},
		Fn:    (*Loop).onMiss,
	})
	r.Register(events.HandlerFunc[*Loop]{
		Types: []events.EventType{events.EventStateChanged},
		Fn:    (*Loop).onStateChanged,
	})
}

// onFoodStolen costs a life; arrivals after game over in the same tick are ignored
func (l *Loop) onFoodStolen(ev events.GameEvent) {
	if l.session.State != core.StatePlaying {
		return
	}
	p, _ := ev.Payload.(*events.EnemyPayload)

	dead := l.session.loseLife()
	l.statStolen.Add(1)
	l.screenShake = constants.ScreenShakeMs
	l.play(core.CueStolen)

	if p != nil {
		l.log.Debug().Uint64("enemy", p.EnemyID).Int("lives", l.session.Lives).Msg("food stolen")
	}

	if dead {
		l.log.Info().
			Int("score", l.session.Score).
			Int("max_combo", l.session.MaxCombo).
			Int("defeated", l.session.Defeated).
			Msg("game over")
		l.setState(core.StateGameOver)
		l.play(core.CueGameOver)
	}
}

func (l *Loop) onEnemyDefeated(ev events.GameEvent) {
	p, ok := ev.Payload.(*events.EnemyPayload)
	if !ok {
		return
	}

	gained := l.session.awardDefeat(p.KeyLen)
	l.statDefeated.Add(1)
	l.particles.Ring(p.Pos)
	l.play(core.CueDefeated)

	l.log.Debug().
		Uint64("enemy", p.EnemyID).
		Int("gained", gained).
		Int("combo", l.session.Combo).
		Msg("defeated")
}

func (l *Loop) onMiss(ev events.GameEvent) {
	l.session.resetCombo()
	l.statMisses.Add(1)
	l.inputShake = constants.InputShakeMs
	l.play(core.CueMiss)
}

func (l *Loop) onStateChanged(ev events.GameEvent) {
	p, ok := ev.Payload.(*events.StateChangedPayload)
	if !ok {
		return
	}
	l.log.Info().
		Str("from", p.From.String()).
		Str("to", p.To.String()).
		Str("difficulty", l.session.Difficulty.String()).
		Msg("session state")
}
