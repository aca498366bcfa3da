package tabulate

import "strings"

// colonSegment draws one column of a pipe table's header underline, marking
// the alignment with colons: ":---" left, "---:" right, ":--:" center.
func colonSegment(fill string, a Alignment, w int) string {
	switch a {
	case AlignRight, AlignDecimal:
		return strings.Repeat(fill, max(0, w-1)) + ":"
	case AlignCenter:
		return ":" + strings.Repeat(fill, max(0, w-2)) + ":"
	case AlignLeft:
		return ":" + strings.Repeat(fill, max(0, w-1))
	default:
		return strings.Repeat(fill, w)
	}
}
