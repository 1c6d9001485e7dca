// Package words supplies (display, phonetic key) pairs weighted by difficulty.
//
// The bundled list is embedded; a file with the same format can replace it.
// Each non-comment line holds a display string, its romanized key and an
// optional level (1-3). Keys are lowercased on load.
package words

import (
	_ "embed"
	"errors"
	"math/rand"

	"github.com/lixenwraith/sarada/core"
)

//go:embed default_words.txt
var embeddedWords string

// Level buckets, 1-based in files
const (
	MinLevel   = 1
	MaxLevel   = 3
	levelCount = MaxLevel - MinLevel + 1
)

// levelWeights[difficulty][level-1]: relative pick weight of each level
var levelWeights = [core.DifficultyCount][levelCount]int{
	{6, 3, 1},
	{3, 5, 2},
	{1, 4, 5},
}

var (
	ErrEmptyBank     = errors.New("word bank is empty")
	ErrMalformedLine = errors.New("malformed word line")
)

// WordData is an immutable display/key pair
type WordData struct {
	Display string
	Key     string
}

// Entry is a word with its difficulty level
type Entry struct {
	WordData
	Level int
}

// Bank is the contract the engine draws words from
type Bank interface {
	RandomWord(d core.Difficulty) WordData
}

// WeightedBank picks a level by difficulty weight, then a word uniformly within it
// Not safe for concurrent use; the engine is single-threaded
type WeightedBank struct {
	levels [levelCount][]WordData
	rng    *rand.Rand
}

// NewWeightedBank builds a bank from entries; rng may be nil for a time-seeded source
func NewWeightedBank(entries []Entry, rng *rand.Rand) (*WeightedBank, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyBank
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	b := &WeightedBank{rng: rng}
	for _, e := range entries {
		lvl := clampLevel(e.Level)
		b.levels[lvl-MinLevel] = append(b.levels[lvl-MinLevel], e.WordData)
	}
	return b, nil
}

// Default returns a bank over the embedded list
func Default(rng *rand.Rand) (*WeightedBank, error) {
	entries, err := Parse(embeddedWords)
	if err != nil {
		return nil, err
	}
	return NewWeightedBank(entries, rng)
}

// RandomWord may repeat words; empty levels donate their weight to the others
func (b *WeightedBank) RandomWord(d core.Difficulty) WordData {
	if d >= core.DifficultyCount {
		d = core.DifficultyNormal
	}

	total := 0
	for i, ws := range b.levels {
		if len(ws) > 0 {
			total += levelWeights[d][i]
		}
	}

	pick := b.rng.Intn(total)
	for i, ws := range b.levels {
		if len(ws) == 0 {
			continue
		}
		pick -= levelWeights[d][i]
		if pick < 0 {
			return ws[b.rng.Intn(len(ws))]
		}
	}

	// Unreachable with a non-empty bank
	return WordData{}
}

// Size returns the number of words per level
func (b *WeightedBank) Size() (counts [levelCount]int) {
	for i, ws := range b.levels {
		counts[i] = len(ws)
	}
	return counts
}

func clampLevel(l int) int {
	if l < MinLevel {
		return MinLevel
	}
	if l > MaxLevel {
		return MaxLevel
	}
	return l
}
