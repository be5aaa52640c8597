package wrap

import (
	"slices"

	"seehuhn.de/go/wrap/smawk"
)

// lineNumbers caches the line number of every fragment boundary while
// the minima table is still being built.  Without the cache, looking
// up line numbers would walk the predecessor chain on every cost
// evaluation and make the search quadratic.
type lineNumbers struct {
	numbers []int
}

func newLineNumbers(n int) *lineNumbers {
	numbers := make([]int, 1, n+1)
	return &lineNumbers{numbers: numbers}
}

// get returns the number of the line which starts at fragment
// boundary i.  The minima table must already contain entries for all
// boundaries up to i; predecessors always precede their entry, so the
// fill loop below only reads numbers which are already present.
func (ln *lineNumbers) get(i int, minima []smawk.Entry[float64]) int {
	for len(ln.numbers) <= i {
		pos := len(ln.numbers)
		ln.numbers = append(ln.numbers, ln.numbers[minima[pos].Row]+1)
	}
	return ln.numbers[i]
}

// Cost of every line.  This makes it expensive to use more lines than
// necessary.
const nlinePenalty = 1000.0

// Cost of a line with the largest possible gap, i.e. an empty line.
const maxLinePenalty = 10000.0

// Cost per cell by which a line overflows the target width.
const overflowPenalty = 2 * maxLinePenalty

// The last line counts as short if it is narrower than 1/4 of the
// target width.
const shortLineFraction = 4

// Extra cost of a short last line.
const shortLastLinePenalty = 125.0

// Extra cost of a line which ends in a break marker.
const hyphenPenalty = 150.0

// linePenalty returns the total cost of breaking fragments[:j] into
// lines such that the last line holds fragments[i:j].  lineWidth is
// the pre-computed width of that line, minimumCost the optimal cost
// of breaking fragments[:i].
func linePenalty[T Fragment](i, j int, fragments []T, lineWidth, targetWidth int, minimumCost float64) float64 {
	cost := minimumCost + nlinePenalty

	if lineWidth > targetWidth {
		// Lines which overflow the target width get a hefty penalty.
		cost += float64(lineWidth-targetWidth) * overflowPenalty
	} else if j < len(fragments) {
		// All other lines except the last get a penalty which grows
		// quadratically from 0 to maxLinePenalty with the gap they
		// leave at the target width.
		gap := float64(targetWidth-lineWidth) / float64(targetWidth)
		cost += gap * gap * maxLinePenalty
	} else if i+1 == j && lineWidth < targetWidth/shortLineFraction {
		// The last line may leave any gap, but a single fragment
		// stranded on a very short last line is penalized.
		cost += shortLastLinePenalty
	}

	if fragments[j-1].PenaltyWidth() > 0 {
		// TODO(voss): use a per-fragment penalty value instead of a
		// global constant.
		cost += hyphenPenalty
	}

	return cost
}

// WrapOptimalFit arranges fragments into lines, minimizing the cost
// of the paragraph as a whole.
//
// lineWidth maps line numbers (starting at 0) to the target width of
// that line, which allows for hanging indentation.  The returned
// lines are subslices of fragments, in order, and together they cover
// fragments completely.
//
// Every line is charged for the gap it leaves at the target width,
// quadratically, so that one very loose line costs more than several
// slightly loose ones.  For "To be, or not to be: that is the
// question" at width 10, WrapFirstFit produces
//
//	"To be, or"   1² =  1
//	"not to be:"  0² =  0
//	"that is"     3² =  9
//	"the"         7² = 49
//	"question"    2² =  4
//
// with a total squared gap of 63, while the minimum over all 512
// possible break sequences is 41:
//
//	"To be,"     4² = 16
//	"or not to"  1² =  1
//	"be: that"   2² =  4
//	"is the"     4² = 16
//	"question"   2² =  4
//
// Additional penalties discourage extra lines, overflowing lines,
// lines ending in a break marker, and a single short fragment on the
// last line.  Such global optimization goes back to the line breaking
// algorithm of TeX, described by Knuth and Plass in "Breaking
// Paragraphs into Lines" (1981).
//
// The minimum is not found by enumeration: the per-line cost makes
// the cost matrix over all (start, end) pairs totally monotone, so
// the break points are column minima which the smawk package finds in
// time linear in the number of fragments.
//
// Fragments must already have their final widths.  A fragment wider
// than the target width is placed on a line of its own and overflows
// it; WrapOptimalFit cannot split fragments.
func WrapOptimalFit[T Fragment](fragments []T, lineWidth func(lineNo int) int) [][]T {
	widths := make([]int, 1, len(fragments)+1)
	width := 0
	for _, frag := range fragments {
		width += frag.Width() + frag.WhitespaceWidth()
		widths = append(widths, width)
	}

	lineNums := newLineNumbers(len(fragments))
	minima := smawk.OnlineColumnMinima(0.0, len(widths),
		func(minima []smawk.Entry[float64], i, j int) float64 {
			lineNo := lineNums.get(i, minima)
			targetWidth := max(1, lineWidth(lineNo))

			// The width of a line holding fragments[i:j], in constant
			// time: drop the trailing whitespace of the last fragment
			// and show its break marker instead.
			w := widths[j] - widths[i] -
				fragments[j-1].WhitespaceWidth() + fragments[j-1].PenaltyWidth()

			return linePenalty(i, j, fragments, w, targetWidth, minima[i].Value)
		})

	lines := make([][]T, 0, lineNums.get(len(fragments), minima))
	pos := len(fragments)
	for pos > 0 {
		prev := minima[pos].Row
		lines = append(lines, fragments[prev:pos:pos])
		pos = prev
	}
	slices.Reverse(lines)
	return lines
}
