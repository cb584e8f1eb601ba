// Package input filters raw key event streams.
package input

// Filter suppresses the release half of raw key events. Keyboard sources
// that report presses and releases separately deliver two events per
// keystroke for the same key; only the first of each pair is an edge that
// should trigger an action. The filter counts events per key and passes
// odd occurrences.
type Filter struct {
	counts map[string]int
}

// NewFilter returns an empty filter.
func NewFilter() *Filter {
	return &Filter{counts: make(map[string]int)}
}

// Observe records one raw event for key and reports whether it is the
// press edge.
func (f *Filter) Observe(key string) bool {
	f.counts[key]++
	return f.counts[key]%2 == 1
}

// Keystroke records a completed press/release pair, as reported by terminal
// drivers that collapse the two edges into one event, and reports whether
// the press edge should trigger an action.
func (f *Filter) Keystroke(key string) bool {
	act := f.Observe(key)
	f.Observe(key)
	return act
}
