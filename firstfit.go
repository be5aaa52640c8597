package wrap

// WrapFirstFit arranges fragments into lines using a greedy
// algorithm: fragments are appended to the current line as long as
// they fit, and a new line starts with the first fragment that does
// not.
//
// lineWidth maps line numbers (starting at 0) to the target width of
// that line.  The returned lines are subslices of fragments, in
// order, and together they cover fragments completely.
//
// This is faster than WrapOptimalFit, but it optimizes each line in
// isolation and can leave very ragged paragraphs.  A fragment wider
// than its line's target still gets placed, alone on a line if
// necessary, and overflows the target.
func WrapFirstFit[T Fragment](fragments []T, lineWidth func(lineNo int) int) [][]T {
	var lines [][]T
	start := 0
	width := 0
	for idx, frag := range fragments {
		if idx > start && width+frag.Width()+frag.PenaltyWidth() > lineWidth(len(lines)) {
			lines = append(lines, fragments[start:idx:idx])
			start = idx
			width = 0
		}
		width += frag.Width() + frag.WhitespaceWidth()
	}
	if start < len(fragments) {
		lines = append(lines, fragments[start:])
	}
	return lines
}
