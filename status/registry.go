// Package status holds lock-free metrics written by the gallery loop and read by front-ends
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry groups metric maps by value type
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float]
	Labels *MetricMap[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float](),
		Labels: NewMetricMap[Label](),
	}
}

// TotalCount returns the number of metrics across all maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Entry is one formatted metric
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped bools, ints, floats then labels
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *Float) {
		out = append(out, Entry{k, fmt.Sprintf("%.3f", v.Get())})
	})
	r.Labels.Range(func(k string, v *Label) {
		out = append(out, Entry{k, v.Load()})
	})
	return out
}
