package engine

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/sarada/core"
	"github.com/lixenwraith/sarada/words"
)

// sequenceBank hands out keys in order, cycling
type sequenceBank struct {
	keys []string
	next int
}

func (b *sequenceBank) RandomWord(core.Difficulty) words.WordData {
	k := b.keys[b.next%len(b.keys)]
	b.next++
	return words.WordData{Display: "<" + k + ">", Key: k}
}

// cueRecorder captures played cues in order
type cueRecorder struct {
	cues []core.Cue
}

func (r *cueRecorder) Play(c core.Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c core.Cue) int {
	n := 0
	for _, x := range r.cues {
		if x == c {
			n++
		}
	}
	return n
}

// newTestLoop builds a seeded loop already playing at difficulty d
func newTestLoop(t *testing.T, d core.Difficulty, keys ...string) (*Loop, *cueRecorder) {
	t.Helper()
	if len(keys) == 0 {
		keys = []string{"sushi"}
	}
	rec := &cueRecorder{}
	l := NewLoop(Config{
		Bank: &sequenceBank{keys: keys},
		Cues: rec,
		Rand: rand.New(rand.NewSource(1)),
	})
	l.StartGame(d)
	return l, rec
}

// spawnN bypasses the spawn timer and concurrency cap
func spawnN(l *Loop, n int) []*Enemy {
	for i := 0; i < n; i++ {
		l.spawnEnemy()
	}
	return l.enemies[len(l.enemies)-n:]
}

func typeString(l *Loop, s string) {
	for _, c := range s {
		l.SubmitChar(c)
	}
}
