// seehuhn.de/go/wrap - line wrapping with pre-measured text fragments
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package wrap

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// BreakWords splits words wider than lineWidth into pieces of at most
// lineWidth cells each, cutting only between grapheme clusters.  The
// last piece of a broken word keeps the original whitespace and
// penalty, the other pieces have neither.
//
// A single grapheme cluster wider than lineWidth is left intact, so
// pieces can still overflow a degenerate target width.
func BreakWords(words []Word, lineWidth int) []Word {
	if lineWidth < 1 {
		lineWidth = 1
	}
	broken := make([]Word, 0, len(words))
	for _, w := range words {
		if w.width <= lineWidth {
			broken = append(broken, w)
			continue
		}

		var pieces []string
		start := 0
		width := 0
		g := uniseg.NewGraphemes(w.Text)
		for g.Next() {
			cw := runewidth.StringWidth(g.Str())
			if width+cw > lineWidth && width > 0 {
				from, _ := g.Positions()
				pieces = append(pieces, w.Text[start:from])
				start = from
				width = 0
			}
			width += cw
		}
		pieces = append(pieces, w.Text[start:])

		for k, piece := range pieces {
			if k == len(pieces)-1 {
				broken = append(broken, NewWord(piece, w.Whitespace, w.Penalty))
			} else {
				broken = append(broken, NewWord(piece, "", ""))
			}
		}
	}
	return broken
}
