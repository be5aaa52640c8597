package wrap

import (
	"math"
	"strings"
	"testing"
)

// renderLine joins one line of words: inner words keep their
// whitespace, the final word shows its penalty instead.
func renderLine(line []Word) string {
	var sb strings.Builder
	for k, w := range line {
		sb.WriteString(w.Text)
		if k < len(line)-1 {
			sb.WriteString(w.Whitespace)
		} else {
			sb.WriteString(w.Penalty)
		}
	}
	return sb.String()
}

func renderLines(lines [][]Word) []string {
	res := make([]string, len(lines))
	for k, line := range lines {
		res[k] = renderLine(line)
	}
	return res
}

// displayWidth returns the width of a line of words, without the
// trailing whitespace but including the final break marker.
func displayWidth(line []Word) int {
	w := 0
	for k, f := range line {
		w += f.Width()
		if k < len(line)-1 {
			w += f.WhitespaceWidth()
		} else {
			w += f.PenaltyWidth()
		}
	}
	return w
}

// partitionCost computes the total cost of a given line partition
// independently of the solver, using the same per-line cost model.
func partitionCost(words []Word, lines [][]Word, lineWidth func(int) int) float64 {
	cost := 0.0
	pos := 0
	for lineNo, line := range lines {
		i := pos
		j := pos + len(line)
		target := max(1, lineWidth(lineNo))
		cost = linePenalty(i, j, words, displayWidth(line), target, cost)
		pos = j
	}
	return cost
}

func checkCoverage(t *testing.T, words []Word, lines [][]Word) {
	t.Helper()
	total := 0
	for k, line := range lines {
		if len(line) == 0 {
			t.Fatalf("line %d is empty", k)
		}
		for _, w := range line {
			if total >= len(words) || w != words[total] {
				t.Fatalf("line %d does not continue the input at fragment %d", k, total)
			}
			total++
		}
	}
	if total != len(words) {
		t.Errorf("lines cover %d of %d fragments", total, len(words))
	}
}

func constWidth(w int) func(int) int {
	return func(int) int { return w }
}

func TestWrapOptimalFitEmpty(t *testing.T) {
	lines := WrapOptimalFit([]Word{}, constWidth(10))
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestWrapOptimalFitSingleFragment(t *testing.T) {
	word := NewWord("incomprehensibilities", "", "")
	for _, width := range []int{1, 5, 100} {
		lines := WrapOptimalFit([]Word{word}, constWidth(width))
		if len(lines) != 1 || len(lines[0]) != 1 || lines[0][0] != word {
			t.Errorf("width %d: expected one line with one word, got %v",
				width, renderLines(lines))
		}
	}
}

func TestWrapOptimalFitHamlet(t *testing.T) {
	words := SplitWords("To be, or not to be: that is the question")
	if len(words) != 10 {
		t.Fatalf("expected 10 words, got %d", len(words))
	}

	optimal := WrapOptimalFit(words, constWidth(10))
	checkCoverage(t, words, optimal)
	want := []string{"To be,", "or not to", "be: that", "is the", "question"}
	got := renderLines(optimal)
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), got)
	}
	for k := range want {
		if got[k] != want[k] {
			t.Errorf("line %d: expected %q, got %q", k, want[k], got[k])
		}
	}

	greedy := WrapFirstFit(words, constWidth(10))
	checkCoverage(t, words, greedy)

	if opt, grd := sumSquaredGaps(optimal, 10), sumSquaredGaps(greedy, 10); opt != 41 || grd != 63 {
		t.Errorf("expected squared gaps 41 (optimal) and 63 (greedy), got %d and %d",
			opt, grd)
	}
}

func sumSquaredGaps(lines [][]Word, target int) int {
	total := 0
	for _, line := range lines {
		gap := target - displayWidth(line)
		total += gap * gap
	}
	return total
}

func TestWrapOptimalFitBruteForce(t *testing.T) {
	hyphenated := []Word{
		NewWord("in", "", "-"),
		NewWord("com", "", "-"),
		NewWord("pre", "", "-"),
		NewWord("hen", "", "-"),
		NewWord("si", "", "-"),
		NewWord("ble", " ", ""),
		NewWord("fun", "", ""),
	}
	indent := func(lineNo int) int {
		if lineNo == 0 {
			return 6
		}
		return 4
	}

	cases := []struct {
		name      string
		words     []Word
		lineWidth func(int) int
	}{
		{"plain/1", SplitWords("a bb ccc dddd ee f gg hhh"), constWidth(1)},
		{"plain/3", SplitWords("a bb ccc dddd ee f gg hhh"), constWidth(3)},
		{"plain/5", SplitWords("a bb ccc dddd ee f gg hhh"), constWidth(5)},
		{"plain/8", SplitWords("a bb ccc dddd ee f gg hhh"), constWidth(8)},
		{"plain/12", SplitWords("a bb ccc dddd ee f gg hhh"), constWidth(12)},
		{"hyphens/4", hyphenated, constWidth(4)},
		{"hyphens/6", hyphenated, constWidth(6)},
		{"hyphens/10", hyphenated, constWidth(10)},
		{"indent", SplitWords("a bb ccc dddd ee f gg hhh"), indent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			words := c.words
			n := len(words)

			best := math.Inf(+1)
			for mask := 0; mask < 1<<(n-1); mask++ {
				var lines [][]Word
				start := 0
				for k := 0; k < n-1; k++ {
					if mask&(1<<k) != 0 {
						lines = append(lines, words[start:k+1])
						start = k + 1
					}
				}
				lines = append(lines, words[start:])
				if cost := partitionCost(words, lines, c.lineWidth); cost < best {
					best = cost
				}
			}

			got := WrapOptimalFit(words, c.lineWidth)
			checkCoverage(t, words, got)
			cost := partitionCost(words, got, c.lineWidth)
			if math.Abs(cost-best) > 1e-9 {
				t.Errorf("expected minimal cost %g, got %g for %v",
					best, cost, renderLines(got))
			}
		})
	}
}

func TestWrapOptimalFitOverflow(t *testing.T) {
	words := SplitWords("a incomprehensibilities b")
	lines := WrapOptimalFit(words, constWidth(8))
	checkCoverage(t, words, lines)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %v", renderLines(lines))
	}
	if len(lines[1]) != 1 || lines[1][0].Text != "incomprehensibilities" {
		t.Errorf("expected the overflowing word alone on line 1, got %v",
			renderLines(lines))
	}
}

func TestWrapOptimalFitHangingIndent(t *testing.T) {
	words := SplitWords(strings.Repeat("aa ", 20))
	if len(words) != 20 {
		t.Fatalf("expected 20 words, got %d", len(words))
	}

	wide0 := func(lineNo int) int {
		if lineNo == 0 {
			return 40
		}
		return 20
	}
	lines := WrapOptimalFit(words, wide0)
	checkCoverage(t, words, lines)
	if len(lines) != 2 || len(lines[0]) != 13 || len(lines[1]) != 7 {
		t.Fatalf("expected lines of 13 and 7 words, got %v", renderLines(lines))
	}

	narrow0 := func(lineNo int) int {
		if lineNo == 0 {
			return 20
		}
		return 40
	}
	lines = WrapOptimalFit(words, narrow0)
	checkCoverage(t, words, lines)
	if len(lines) != 2 || len(lines[0]) != 7 || len(lines[1]) != 13 {
		t.Fatalf("expected lines of 7 and 13 words, got %v", renderLines(lines))
	}
}

func TestWrapOptimalFitDegenerateWidth(t *testing.T) {
	// a target width of 0 is clamped to 1 instead of dividing by zero
	words := SplitWords("a b c")
	lines := WrapOptimalFit(words, constWidth(0))
	checkCoverage(t, words, lines)
	if len(lines) != 3 {
		t.Errorf("expected 3 lines at width 0, got %v", renderLines(lines))
	}
}

func TestLinePenalty(t *testing.T) {
	words := SplitWords("aa bb")

	// a non-final line is charged quadratically for its gap
	got := linePenalty(0, 1, words, 5, 10, 0)
	want := nlinePenalty + 0.5*0.5*maxLinePenalty
	if got != want {
		t.Errorf("gap penalty: expected %g, got %g", want, got)
	}

	// overflow is charged per cell
	got = linePenalty(0, 1, words, 15, 10, 0)
	want = nlinePenalty + 5*overflowPenalty
	if got != want {
		t.Errorf("overflow penalty: expected %g, got %g", want, got)
	}

	// a single short fragment on the final line pays extra ...
	got = linePenalty(1, 2, words, 2, 20, 0)
	want = nlinePenalty + shortLastLinePenalty
	if got != want {
		t.Errorf("short last line: expected %g, got %g", want, got)
	}

	// ... but an equally short final line with two fragments does not
	got = linePenalty(0, 2, words, 5, 20, 0)
	want = nlinePenalty
	if got != want {
		t.Errorf("two-fragment last line: expected %g, got %g", want, got)
	}

	// lines ending in a break marker pay the hyphen penalty
	hyph := []Word{NewWord("hy", "", "-"), NewWord("phen", "", "")}
	got = linePenalty(0, 1, hyph, 3, 10, 0)
	want = nlinePenalty + (7.0/10.0)*(7.0/10.0)*maxLinePenalty + hyphenPenalty
	if got != want {
		t.Errorf("hyphen penalty: expected %g, got %g", want, got)
	}

	// earlier cost is carried through
	got = linePenalty(0, 1, words, 10, 10, 500)
	want = 500 + nlinePenalty
	if got != want {
		t.Errorf("carried cost: expected %g, got %g", want, got)
	}
}

func TestWrapOptimalFitHyphenated(t *testing.T) {
	parts := []Word{
		NewWord("in", "", "-"),
		NewWord("com", "", "-"),
		NewWord("pre", "", "-"),
		NewWord("hen", "", "-"),
		NewWord("si", "", "-"),
		NewWord("ble", "", ""),
	}
	lines := WrapOptimalFit(parts, constWidth(6))
	checkCoverage(t, parts, lines)
	for k, line := range lines {
		if w := displayWidth(line); w > 6 {
			t.Errorf("line %d %q is %d cells wide", k, renderLine(line), w)
		}
	}
	last := lines[len(lines)-1]
	if last[len(last)-1].Text != "ble" {
		t.Errorf("expected the last line to end in %q, got %v", "ble", renderLines(lines))
	}
}
