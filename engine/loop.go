package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/sarada/constants"
	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/events"
	"github.com/lixenwraith/sarada/status"
	"github.com/lixenwraith/sarada/words"
)

// CuePlayer receives fire-and-forget feedback cues
type CuePlayer interface {
	Play(cue core.Cue)
}

// Board is the playfield in board units; the plate sits at its centre
type Board struct {
	Width, Height float64
}

func (b Board) Center() core.Vec2 {
	return core.Vec2{X: b.Width / 2, Y: b.Height / 2}
}

// InputAnchor is where typing sparks originate
func (b Board) InputAnchor() core.Vec2 {
	return core.Vec2{X: b.Width / 2, Y: b.Height - constants.InputAnchorRows*constants.CellHeight}
}

// Config wires a Loop to its collaborators
type Config struct {
	Bank     words.Bank // required
	Cues     CuePlayer  // optional
	Rand     *rand.Rand // optional, time-seeded when nil
	Logger   *zerolog.Logger
	Status   *status.Registry
	Board    Board
	MaxLives int
}

// Loop is the single-threaded frame driver
// All entry points must be called from one goroutine; the host serialises
// input events between ticks
type Loop struct {
	session Session
	board   *Board

	enemies   []*Enemy // insertion order
	particles *ParticleSystem
	locked    *Enemy
	buffer    []rune // cosmetic echo of typed characters

	nextID     uint64
	sinceSpawn float64
	frame      uint64

	inputShake  float64
	screenShake float64

	queue  *events.EventQueue
	router *events.Router[*Loop]

	bank words.Bank
	cues CuePlayer
	rng  *rand.Rand
	log  zerolog.Logger

	statTicks    *atomic.Int64
	statSpawned  *atomic.Int64
	statDefeated *atomic.Int64
	statStolen   *atomic.Int64
	statKeys     *atomic.Int64
	statMisses   *atomic.Int64
}

// NewLoop creates a loop in the Menu state
func NewLoop(cfg Config) *Loop {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	reg := cfg.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	board := cfg.Board
	if board.Width <= 0 || board.Height <= 0 {
		board = Board{Width: constants.DefaultBoardWidth, Height: constants.DefaultBoardHeight}
	}
	maxLives := cfg.MaxLives
	if maxLives <= 0 {
		maxLives = constants.MaxLives
	}

	l := &Loop{
		board:        &board,
		particles:    NewParticleSystem(rng),
		buffer:       make([]rune, 0, 32),
		queue:        events.NewEventQueue(),
		bank:         cfg.Bank,
		cues:         cfg.Cues,
		rng:          rng,
		log:          logger,
		statTicks:    reg.Ints.Get("engine.ticks"),
		statSpawned:  reg.Ints.Get("enemy.spawned"),
		statDefeated: reg.Ints.Get("enemy.defeated"),
		statStolen:   reg.Ints.Get("enemy.stolen"),
		statKeys:     reg.Ints.Get("input.keys"),
		statMisses:   reg.Ints.Get("input.misses"),
	}
	l.session.reset(core.DifficultyNormal, maxLives)
	l.session.State = core.StateMenu

	l.router = events.NewRouter[*Loop](l.queue)
	registerHandlers(l.router)

	return l
}

// Tick runs one frame: spawn, update, dispatch, remove, win check
func (l *Loop) Tick(dtMs float64) {
	if dtMs < 0 {
		dtMs = 0
	} else if dtMs > constants.MaxFrameDeltaMs {
		dtMs = constants.MaxFrameDeltaMs
	}

	l.frame++
	l.statTicks.Add(1)
	l.decayFeedback(dtMs)

	if l.session.State != core.StatePlaying {
		return
	}

	// 1. Spawn
	l.sinceSpawn += dtMs
	s := &l.session
	if l.sinceSpawn >= s.Settings.SpawnIntervalMs &&
		len(l.enemies) < s.Settings.MaxConcurrentEnemies &&
		s.StageProgress < s.Settings.StageGoal {
		if !l.spawnEnemy() {
			// No typeable word: the slot still counts toward the goal
			s.StageProgress++
			l.log.Error().Int("progress", s.StageProgress).Msg("no typeable word drawn, spawn slot forfeited")
		}
		l.sinceSpawn = 0
	}

	// 2. Update, then remove what finished
	for _, e := range l.enemies {
		if ev := e.Update(); ev != events.EventNone {
			l.emitEnemy(ev, e)
		}
	}
	l.particles.Update(dtMs)
	l.router.DispatchAll(l)
	l.removeFinished()

	// 3. Win check after removal
	if s.State == core.StatePlaying && s.stageComplete() && len(l.enemies) == 0 {
		bonus := s.grantClearBonus()
		l.log.Info().Int("bonus", bonus).Int("score", s.Score).Msg("stage clear")
		l.setState(core.StateClear)
		l.play(core.CueClear)
		l.router.DispatchAll(l)
	}
}

// StartGame resets the session and begins play at difficulty d
func (l *Loop) StartGame(d core.Difficulty) {
	if d >= core.DifficultyCount {
		d = core.DifficultyNormal
	}
	l.clearField()
	l.session.reset(d, l.session.MaxLives)
	l.sinceSpawn = 0
	l.setState(core.StatePlaying)
	l.router.DispatchAll(l)
}

// Restart replays the current difficulty
func (l *Loop) Restart() {
	l.StartGame(l.session.Difficulty)
}

// ReturnToMenu drops all entities and the lock unconditionally
func (l *Loop) ReturnToMenu() {
	l.clearField()
	l.setState(core.StateMenu)
	l.router.DispatchAll(l)
}

// Resize updates the playfield; existing targets keep their plate position
func (l *Loop) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	l.board.Width = width
	l.board.Height = height
}

// Session returns a copy of the session state
func (l *Loop) Session() Session {
	return l.session
}

// Board returns the current playfield
func (l *Loop) Board() Board {
	return *l.board
}

// ActiveCount returns the number of live enemies
func (l *Loop) ActiveCount() int {
	return len(l.enemies)
}

// spawnEnemy redraws untypeable words a bounded number of times
// Returns false when every draw was rejected
func (l *Loop) spawnEnemy() bool {
	var word words.WordData
	for attempt := 0; ; attempt++ {
		if attempt == constants.SpawnRedrawLimit {
			return false
		}
		word = l.bank.RandomWord(l.session.Difficulty)
		if words.ValidKey(string(toLowerKey(word.Key))) {
			break
		}
		l.log.Warn().Str("display", word.Display).Str("key", word.Key).Msg("skipping untypeable word")
	}

	l.nextID++
	e := newEnemy(l.nextID, word, l.board, l.session.Difficulty, l.rng)
	l.enemies = append(l.enemies, e)
	l.session.StageProgress++
	l.statSpawned.Add(1)

	l.log.Debug().
		Uint64("enemy", e.ID).
		Str("key", e.Key).
		Float64("speed", e.Speed).
		Int("progress", l.session.StageProgress).
		Msg("spawn")
	return true
}

// removeFinished filters in place, keeping insertion order
func (l *Loop) removeFinished() {
	live := l.enemies[:0]
	for _, e := range l.enemies {
		if e.Removable() {
			if e == l.locked {
				l.unlock()
			}
			continue
		}
		live = append(live, e)
	}
	for i := len(live); i < len(l.enemies); i++ {
		l.enemies[i] = nil
	}
	l.enemies = live
}

func (l *Loop) clearField() {
	l.enemies = nil
	l.particles.Clear()
	l.unlock()
	l.queue.Clear()
	l.inputShake = 0
	l.screenShake = 0
}

func (l *Loop) setState(to core.SessionState) {
	from := l.session.State
	if from == to {
		return
	}
	l.session.State = to
	l.push(events.GameEvent{
		Type:    events.EventStateChanged,
		Payload: &events.StateChangedPayload{From: from, To: to},
		Frame:   l.frame,
	})
}

func (l *Loop) emitEnemy(et events.EventType, e *Enemy) {
	l.push(events.GameEvent{
		Type:    et,
		Payload: &events.EnemyPayload{EnemyID: e.ID, KeyLen: e.KeyLen(), Pos: e.Pos},
		Frame:   l.frame,
	})
}

// push queues ev for the next dispatch; types nothing handles are dropped
func (l *Loop) push(ev events.GameEvent) {
	if !l.router.HasHandlers(ev.Type) {
		l.log.Debug().Stringer("event", ev.Type).Uint64("frame", ev.Frame).Msg("unrouted event dropped")
		return
	}
	l.queue.Push(ev)
}

func (l *Loop) play(cue core.Cue) {
	if l.cues != nil {
		l.cues.Play(cue)
	}
}

func (l *Loop) decayFeedback(dtMs float64) {
	l.inputShake = max(0, l.inputShake-dtMs)
	l.screenShake = max(0, l.screenShake-dtMs)
}
