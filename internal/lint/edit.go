package lint

import "sort"

// Edit replaces Source[Start:End] with Text.
type Edit struct {
	Start int
	End   int
	Text  string
}

// ApplyEdits returns a copy of source with edits applied. Edits are sorted
// by position; an edit that overlaps an earlier one or falls outside source
// is dropped.
func ApplyEdits(source []byte, edits []Edit) []byte {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	out := make([]byte, 0, len(source))
	pos := 0
	for _, e := range sorted {
		if e.Start < pos || e.End < e.Start || e.End > len(source) {
			continue
		}
		out = append(out, source[pos:e.Start]...)
		out = append(out, e.Text...)
		pos = e.End
	}
	return append(out, source[pos:]...)
}

// FixEdits collects the edits of every fixable diagnostic in order.
func FixEdits(diags []Diagnostic) []Edit {
	var edits []Edit
	for _, d := range diags {
		edits = append(edits, d.Fix...)
	}
	return edits
}
