// Package metrics accumulates word-length statistics.
//
// WordLengths is written from many goroutines at once while a text source
// is being analysed and read once the analysis has finished. Writes are
// lock-free: each length bucket is an atomic counter stored in a sync.Map,
// and the running totals are atomics of their own.
package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
)

// WordLengths records how many words of each length have been seen.
//
// After any sequence of registrations the word total equals the sum of the
// bucket counts, the character total equals the sum of length*count, and
// no bucket holds zero.
type WordLengths struct {
	buckets    sync.Map // int -> *atomic.Int64
	words      atomic.Int64
	characters atomic.Int64
}

// New returns an empty aggregator.
func New() *WordLengths {
	return &WordLengths{}
}

// RegisterWordOccurrence records one word of the given length. Lengths
// below one are ignored.
func (w *WordLengths) RegisterWordOccurrence(length int) {
	if length <= 0 {
		return
	}

	counter, ok := w.buckets.Load(length)
	if !ok {
		counter, _ = w.buckets.LoadOrStore(length, new(atomic.Int64))
	}
	counter.(*atomic.Int64).Add(1)

	w.words.Add(1)
	w.characters.Add(int64(length))
}

// HasData reports whether at least one word has been registered. It is
// safe to call on a nil receiver.
func (w *WordLengths) HasData() bool {
	return w != nil && w.words.Load() > 0
}

// TotalWordCount returns the number of registered words.
func (w *WordLengths) TotalWordCount() int64 {
	return w.words.Load()
}

// TotalCharacterCount returns the summed length of all registered words.
func (w *WordLengths) TotalCharacterCount() int64 {
	return w.characters.Load()
}

// AverageWordLength returns the unrounded mean word length, or 0 when no
// words have been registered.
func (w *WordLengths) AverageWordLength() float64 {
	words := w.words.Load()
	if words == 0 {
		return 0
	}
	return float64(w.characters.Load()) / float64(words)
}

// FrequencySnapshot copies the current per-length counts.
func (w *WordLengths) FrequencySnapshot() Frequencies {
	counts := make(map[int]int64)
	w.buckets.Range(func(key, value any) bool {
		if n := value.(*atomic.Int64).Load(); n > 0 {
			counts[key.(int)] = n
		}
		return true
	})

	lengths := make([]int, 0, len(counts))
	for length := range counts {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	return Frequencies{lengths: lengths, counts: counts}
}

// HighestFrequency returns the largest per-length count. The second result
// is false when nothing has been registered.
func (w *WordLengths) HighestFrequency() (int64, bool) {
	var highest int64
	w.buckets.Range(func(_, value any) bool {
		if n := value.(*atomic.Int64).Load(); n > highest {
			highest = n
		}
		return true
	})
	return highest, highest > 0
}

// LengthsWithFrequency returns, in ascending order, every word length whose
// count equals target.
func (w *WordLengths) LengthsWithFrequency(target int64) []int {
	lengths := []int{}
	w.buckets.Range(func(key, value any) bool {
		if value.(*atomic.Int64).Load() == target {
			lengths = append(lengths, key.(int))
		}
		return true
	})
	sort.Ints(lengths)
	return lengths
}
