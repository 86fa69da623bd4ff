package objects

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// MakeWord builds a word from letters placed at positions:
//
//	MakeWord(map{"a": [0, 1], "b": [2, 3], "c": [4, 5]}) => "aabbcc"
//
// Letters are concatenated in position order; positions not covered by any
// letter contribute nothing, negative positions are ignored. Memory use
// depends on the number of positions given, not on their magnitude. If two
// letters claim the same position, the result is unspecified.
func MakeWord(letters map[string][]int) string {
	placed := make(map[int]string)
	for letter, positions := range letters {
		for _, p := range positions {
			if p >= 0 {
				placed[p] = letter
			}
		}
	}
	order := lo.Keys(placed)
	sort.Ints(order)
	var b strings.Builder
	for _, p := range order {
		b.WriteString(placed[p])
	}
	return b.String()
}
