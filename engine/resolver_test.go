package engine

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/sarada/core"
)

// TestResolverLocksEarliestSpawn covers the aka/ao/midori scenario on Easy
func TestResolverLocksEarliestSpawn(t *testing.T) {
	l, rec := newTestLoop(t, core.DifficultyEasy, "aka", "ao", "midori")

	s := l.Session()
	if s.Settings.StageGoal != 15 || s.Settings.MaxConcurrentEnemies != 3 {
		t.Fatalf("Unexpected easy settings: %+v", s.Settings)
	}

	enemies := spawnN(l, 3)
	aka, ao := enemies[0], enemies[1]

	l.SubmitChar('a')
	id, ok := l.LockedID()
	if !ok || id != aka.ID {
		t.Fatalf("Expected lock on aka (%d), got %d (locked=%v)", aka.ID, id, ok)
	}
	if ao.Typed != 0 {
		t.Errorf("Unlocked enemy advanced: typed=%d", ao.Typed)
	}

	typeString(l, "ka")

	if aka.State != core.EnemyDefeated {
		t.Errorf("Expected aka Defeated, got %s", aka.State)
	}
	if _, ok := l.LockedID(); ok {
		t.Error("Expected lock cleared after completion")
	}
	if got := rec.count(core.CueDefeated); got != 1 {
		t.Errorf("Expected exactly 1 defeat cue, got %d", got)
	}
	if got := l.Session().Defeated; got != 1 {
		t.Errorf("Expected 1 defeat, got %d", got)
	}
	if l.Snapshot().Input != "" {
		t.Error("Expected input buffer cleared on completion")
	}
}

// TestResolverMissOnEmptySet verifies a keystroke with no enemies is a miss
func TestResolverMissOnEmptySet(t *testing.T) {
	l, rec := newTestLoop(t, core.DifficultyNormal)
	l.session.Combo = 4

	l.SubmitChar('a')

	if l.Session().Combo != 0 {
		t.Errorf("Expected combo reset, got %d", l.Session().Combo)
	}
	if _, ok := l.LockedID(); ok {
		t.Error("Expected no lock")
	}
	if rec.count(core.CueMiss) != 1 {
		t.Error("Expected a miss cue")
	}
	if l.Snapshot().InputShake <= 0 {
		t.Error("Expected input shake after miss")
	}
}

// TestResolverMissNoCandidate verifies no matching next character leaves the lock unset
func TestResolverMissNoCandidate(t *testing.T) {
	l, _ := newTestLoop(t, core.DifficultyNormal, "sushi", "sake")
	spawnN(l, 2)
	l.session.Combo = 2

	l.SubmitChar('z')

	if l.Session().Combo != 0 {
		t.Errorf("Expected combo reset, got %d", l.Session().Combo)
	}
	if _, ok := l.LockedID(); ok {
		t.Error("Expected lock to remain unset")
	}
	for _, e := range l.enemies {
		if e.Typed != 0 {
			t.Errorf("Enemy %q advanced on a miss", e.Key)
		}
	}
}

// TestResolverRejectKeepsLock verifies a rejection against the locked enemy keeps the lock
func TestResolverRejectKeepsLock(t *testing.T) {
	l, rec := newTestLoop(t, core.DifficultyNormal, "sushi", "sake")
	enemies := spawnN(l, 2)
	sushi := enemies[0]

	typeString(l, "su")
	l.session.Combo = 3

	// 'a' would match "sake" from scratch but the lock holds
	l.SubmitChar('a')

	id, ok := l.LockedID()
	if !ok || id != sushi.ID {
		t.Fatalf("Expected lock kept on sushi, got %d (%v)", id, ok)
	}
	if l.Session().Combo != 0 {
		t.Error("Expected combo reset on rejection")
	}
	if enemies[1].Typed != 0 {
		t.Error("Rejected key must not advance another enemy")
	}
	if rec.count(core.CueMiss) != 1 {
		t.Errorf("Expected 1 miss cue, got %d", rec.count(core.CueMiss))
	}

	typeString(l, "shi")
	if sushi.State != core.EnemyDefeated {
		t.Errorf("Expected sushi defeated after continuing, got %s", sushi.State)
	}
}

// TestResolverRelocksWhenTargetStopsApproaching verifies a stale lock is re-resolved
func TestResolverRelocksWhenTargetStopsApproaching(t *testing.T) {
	l, _ := newTestLoop(t, core.DifficultyNormal, "sushi", "sake")
	enemies := spawnN(l, 2)

	l.SubmitChar('s')
	enemies[0].State = core.EnemyCarrying

	l.SubmitChar('s')
	id, ok := l.LockedID()
	if !ok || id != enemies[1].ID {
		t.Fatalf("Expected relock on sake, got %d (%v)", id, ok)
	}
	if got := l.Snapshot().Input; got != "s" {
		t.Errorf("Expected buffer to restart with the new target, got %q", got)
	}
}

// TestCancelInputIdempotent verifies cancel without a lock changes nothing
func TestCancelInputIdempotent(t *testing.T) {
	l, rec := newTestLoop(t, core.DifficultyNormal, "sushi")
	spawnN(l, 1)
	l.session.Combo = 5
	before := l.Session()

	l.CancelInput()
	l.CancelInput()

	if l.Session() != before {
		t.Errorf("Cancel without lock changed session: %+v -> %+v", before, l.Session())
	}
	if len(rec.cues) != 0 {
		t.Errorf("Cancel produced cues: %v", rec.cues)
	}
}

func TestCancelInputClearsLock(t *testing.T) {
	l, _ := newTestLoop(t, core.DifficultyNormal, "sushi")
	e := spawnN(l, 1)[0]
	typeString(l, "su")
	l.session.Combo = 2

	l.CancelInput()

	if _, ok := l.LockedID(); ok {
		t.Error("Expected lock cleared")
	}
	if l.Snapshot().Input != "" {
		t.Error("Expected buffer cleared")
	}
	if l.Session().Combo != 2 {
		t.Error("Cancel must not penalise combo")
	}
	if e.Typed != 2 {
		t.Errorf("Cancel must not change enemy progress, typed=%d", e.Typed)
	}
}

// TestBackspaceIsCosmetic verifies backspace never reduces enemy progress
func TestBackspaceIsCosmetic(t *testing.T) {
	l, _ := newTestLoop(t, core.DifficultyNormal, "sushi")
	e := spawnN(l, 1)[0]
	typeString(l, "sus")

	l.Backspace()
	l.Backspace()

	if got := l.Snapshot().Input; got != "s" {
		t.Errorf("Expected buffer %q, got %q", "s", got)
	}
	if e.Typed != 3 {
		t.Errorf("Expected typed to stay 3, got %d", e.Typed)
	}
	if _, ok := l.LockedID(); !ok {
		t.Error("Backspace must not drop the lock")
	}

	typeString(l, "hi")
	if e.State != core.EnemyDefeated {
		t.Error("Expected progress to continue from the real typed index")
	}
}

func TestSubmitCharIgnored(t *testing.T) {
	l, rec := newTestLoop(t, core.DifficultyNormal, "sushi")
	spawnN(l, 1)
	l.session.Combo = 3

	for _, c := range []rune{'1', ' ', '!', '寿'} {
		l.SubmitChar(c)
	}
	if l.Session().Combo != 3 || len(rec.cues) != 0 {
		t.Error("Characters outside the alphabet must be ignored")
	}

	l.ReturnToMenu()
	l.SubmitChar('s')
	if len(rec.cues) != 0 {
		t.Error("Keystrokes outside Playing must be ignored")
	}
}

// TestTypedIndexMonotonic types random characters and checks the typed invariants
func TestTypedIndexMonotonic(t *testing.T) {
	l, _ := newTestLoop(t, core.DifficultyHard, "aka", "ao", "midori", "ra-men", "sake")
	spawnN(l, 6)

	prev := make(map[uint64]int)
	rng := rand.New(rand.NewSource(99))
	alphabet := []rune("akomidrens-hx")

	for i := 0; i < 2000; i++ {
		l.SubmitChar(alphabet[rng.Intn(len(alphabet))])
		for _, e := range l.enemies {
			if e.Typed > e.KeyLen() {
				t.Fatalf("Enemy %d typed %d > len %d", e.ID, e.Typed, e.KeyLen())
			}
			if e.Typed < prev[e.ID] {
				t.Fatalf("Enemy %d typed decreased %d -> %d", e.ID, prev[e.ID], e.Typed)
			}
			if e.Typed == e.KeyLen() && e.State != core.EnemyDefeated {
				t.Fatalf("Enemy %d completed but is %s", e.ID, e.State)
			}
			prev[e.ID] = e.Typed
		}
	}
}
