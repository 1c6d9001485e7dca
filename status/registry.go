package status

import "sync/atomic"

// Registry is the central metrics facade
// The loop caches counter pointers at construction; the host owns the flags
// and reads everything back on exit
type Registry struct {
	Ints  *MetricMap[atomic.Int64]
	Bools *MetricMap[atomic.Bool]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:  NewMetricMap[atomic.Int64](),
		Bools: NewMetricMap[atomic.Bool](),
	}
}

// Counts returns a copy of every integer metric
func (r *Registry) Counts() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// Flags returns a copy of every boolean metric
func (r *Registry) Flags() map[string]bool {
	out := make(map[string]bool, r.Bools.Count())
	r.Bools.Range(func(key string, ptr *atomic.Bool) {
		out[key] = ptr.Load()
	})
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Bools.Count()
}
