package status

import (
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("engine.ticks")
	b := r.Ints.Get("engine.ticks")
	if a != b {
		t.Fatal("Expected the same pointer for repeated Get")
	}

	a.Add(3)
	if got := r.Counts()["engine.ticks"]; got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestRegistryRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.second").Store(2)
	r.Ints.Get("a.first").Store(1)
	r.Bools.Get("audio.muted").Store(true)

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) { keys = append(keys, key) })
	if len(keys) != 2 || keys[0] != "a.first" || keys[1] != "b.second" {
		t.Errorf("Expected sorted keys, got %v", keys)
	}
	if r.TotalCount() != 3 {
		t.Errorf("Expected 3 metrics, got %d", r.TotalCount())
	}
}

func TestRegistryFlags(t *testing.T) {
	r := NewRegistry()
	muted := r.Bools.Get("audio.muted")
	r.Bools.Get("audio.available")

	muted.Store(true)
	flags := r.Flags()
	if !flags["audio.muted"] || flags["audio.available"] {
		t.Errorf("Unexpected flags: %v", flags)
	}
	if r.Bools.Get("audio.muted") != muted {
		t.Error("Expected the cached flag pointer")
	}
}
