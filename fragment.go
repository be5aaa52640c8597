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

// Package wrap breaks sequences of pre-measured text fragments into
// lines.  The package provides a greedy wrapper, WrapFirstFit, and an
// optimal wrapper, WrapOptimalFit, which minimizes the raggedness of
// the paragraph as a whole.
//
// Fragments only expose their display widths, so the wrappers are
// independent of how text is measured.  The Word type implements
// Fragment for text shown in terminal cells, and SplitWords,
// SplitUAX14, BreakWords and SplitWord turn raw text into fragments.
package wrap

import "github.com/mattn/go-runewidth"

// A Fragment is an atomic, pre-measured unit of text.  The wrappers
// arrange fragments into lines, they never split them.
//
// All widths are non-negative.  A fragment of width zero is valid,
// for example an invisible break marker.
type Fragment interface {
	// Width returns the display width of the fragment's visible
	// content.
	Width() int

	// WhitespaceWidth returns the display width of the whitespace
	// following the fragment.  The whitespace is only shown when the
	// fragment does not end its line.
	WhitespaceWidth() int

	// PenaltyWidth returns the display width of the text shown when
	// the fragment ends a line, for example a hyphen.
	PenaltyWidth() int
}

// A Word is a piece of user text together with the whitespace which
// followed it.  Widths are measured in terminal cells.
type Word struct {
	Text       string // the visible content
	Whitespace string // trailing whitespace, dropped at the end of a line
	Penalty    string // shown only at the end of a line, normally "-" or ""

	width           int
	whitespaceWidth int
	penaltyWidth    int
}

// NewWord measures the given strings and returns the corresponding
// Word.
func NewWord(text, whitespace, penalty string) Word {
	return Word{
		Text:            text,
		Whitespace:      whitespace,
		Penalty:         penalty,
		width:           runewidth.StringWidth(text),
		whitespaceWidth: runewidth.StringWidth(whitespace),
		penaltyWidth:    runewidth.StringWidth(penalty),
	}
}

// Width implements the Fragment interface.
func (w Word) Width() int {
	return w.width
}

// WhitespaceWidth implements the Fragment interface.
func (w Word) WhitespaceWidth() int {
	return w.whitespaceWidth
}

// PenaltyWidth implements the Fragment interface.
func (w Word) PenaltyWidth() int {
	return w.penaltyWidth
}
