//go:build property

package tokenizer

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// lineAlphabet biases generated lines towards the characters the splitting
// rules care about.
var lineAlphabet = []rune("ab7 09,.!?:;\t&/xé")

func genLine() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, len(lineAlphabet)-1)).Map(func(idx []int) string {
		var sb strings.Builder
		for _, i := range idx {
			sb.WriteRune(lineAlphabet[i])
		}
		return sb.String()
	})
}

func TestWordsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1234)
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("no token is empty", prop.ForAll(
		func(line string) bool {
			for _, w := range Words(line) {
				if w == "" {
					return false
				}
			}
			return true
		},
		genLine(),
	))

	properties.Property("non-delimiter characters are preserved in order", prop.ForAll(
		func(line string) bool {
			var kept strings.Builder
			for i := 0; i < len(line); i++ {
				if !isDelimiter(line, i) {
					kept.WriteByte(line[i])
				}
			}
			return strings.Join(Words(line), "") == kept.String()
		},
		genLine(),
	))

	properties.Property("digit-flanked separators never split", prop.ForAll(
		func(a, b int, sep bool) bool {
			s := ","
			if sep {
				s = "."
			}
			line := strings.Repeat("1", a+1) + s + strings.Repeat("2", b+1)
			words := Words(line)
			return len(words) == 1 && words[0] == line
		},
		gen.IntRange(0, 8),
		gen.IntRange(0, 8),
		gen.Bool(),
	))

	properties.Property("separators next to a non-digit always split", prop.ForAll(
		func(left, right string, sep bool) bool {
			s := ","
			if sep {
				s = "."
			}
			words := Words(left + "x" + s + right)
			return len(words) == 2 && words[0] == left+"x" && words[1] == right
		},
		gen.AlphaString().SuchThat(func(s string) bool { return !strings.ContainsAny(s, ",.") }),
		gen.Identifier(),
		gen.Bool(),
	))

	properties.Property("Each agrees with Words", prop.ForAll(
		func(line string) bool {
			var lengths []int
			Each(line, func(n int) { lengths = append(lengths, n) })
			words := Words(line)
			if len(words) != len(lengths) {
				return false
			}
			for i, w := range words {
				if Len(w) != lengths[i] {
					return false
				}
			}
			return true
		},
		genLine(),
	))

	properties.TestingRun(t)
}
