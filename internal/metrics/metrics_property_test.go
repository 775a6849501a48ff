//go:build property

package metrics

import (
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestWordLengthsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("totals equal bucket sums", prop.ForAll(
		func(lengths []int) bool {
			w := New()
			for _, l := range lengths {
				w.RegisterWordOccurrence(l)
			}

			var words, chars int64
			ok := true
			w.FrequencySnapshot().Each(func(length int, count int64) bool {
				if count <= 0 {
					ok = false
				}
				words += count
				chars += int64(length) * count
				return true
			})
			return ok && words == w.TotalWordCount() && chars == w.TotalCharacterCount()
		},
		gen.SliceOf(gen.IntRange(-2, 30)),
	))

	properties.Property("highest frequency is the true maximum", prop.ForAll(
		func(lengths []int) bool {
			w := New()
			expected := map[int]int64{}
			for _, l := range lengths {
				w.RegisterWordOccurrence(l)
				expected[l]++
			}

			var max int64
			for _, n := range expected {
				if n > max {
					max = n
				}
			}

			highest, ok := w.HighestFrequency()
			if len(lengths) == 0 {
				return !ok
			}
			if !ok || highest != max {
				return false
			}
			for _, l := range w.LengthsWithFrequency(highest) {
				if expected[l] != max {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 20)),
	))

	properties.Property("concurrent registrations are never lost", prop.ForAll(
		func(goroutines, perRoutine int) bool {
			w := New()
			var wg sync.WaitGroup
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < perRoutine; i++ {
						w.RegisterWordOccurrence(3)
					}
				}()
			}
			wg.Wait()

			n := int64(goroutines * perRoutine)
			return w.TotalWordCount() == n && w.TotalCharacterCount() == 3*n
		},
		gen.IntRange(1, 16),
		gen.IntRange(0, 500),
	))

	properties.TestingRun(t)
}
