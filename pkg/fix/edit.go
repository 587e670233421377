// Package fix provides text edit types and application logic for auto-fixing.
package fix

import "sort"

// TextEdit represents a single text replacement in a file: the bytes in
// [Start, End) are replaced with NewText.
type TextEdit struct {
	Start   int
	End     int
	NewText string
}

// Apply applies a set of non-overlapping edits to src and returns the new
// content. Edits are applied in descending start order so earlier offsets
// stay valid while later spans are rewritten. src is not mutated.
func Apply(src []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return src
	}

	ordered := make([]TextEdit, len(edits))
	copy(ordered, edits)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	out := make([]byte, len(src))
	copy(out, src)
	for _, e := range ordered {
		if e.Start < 0 || e.End > len(out) || e.Start > e.End {
			continue
		}
		var next []byte
		next = append(next, out[:e.Start]...)
		next = append(next, e.NewText...)
		next = append(next, out[e.End:]...)
		out = next
	}
	return out
}
