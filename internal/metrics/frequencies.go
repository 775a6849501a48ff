package metrics

// Frequencies is a detached, read-only view of per-length word counts.
// It has no mutating methods, and changes to the aggregator after the
// snapshot was taken are not reflected in it.
type Frequencies struct {
	lengths []int
	counts  map[int]int64
}

// Len returns the number of distinct word lengths.
func (f Frequencies) Len() int {
	return len(f.lengths)
}

// Get returns the count for length.
func (f Frequencies) Get(length int) (int64, bool) {
	n, ok := f.counts[length]
	return n, ok
}

// Lengths returns the distinct word lengths in ascending order. The slice
// is a copy.
func (f Frequencies) Lengths() []int {
	out := make([]int, len(f.lengths))
	copy(out, f.lengths)
	return out
}

// Each calls fn for every length in ascending order until fn returns false.
func (f Frequencies) Each(fn func(length int, count int64) bool) {
	for _, length := range f.lengths {
		if !fn(length, f.counts[length]) {
			return
		}
	}
}

// Map returns a copy of the counts keyed by length.
func (f Frequencies) Map() map[int]int64 {
	out := make(map[int]int64, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}
