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
	"io"

	"github.com/speedata/hyphenation"
	"golang.org/x/text/language"
)

// A Hyphenator reports the positions inside a word where a line break
// is allowed.  Positions are ascending rune offsets into the word;
// offsets at or before the first rune and at or after the end of the
// word are ignored.
type Hyphenator interface {
	Hyphenate(word string) []int
}

// A Dictionary determines hyphenation points using the TeX
// hyphenation patterns for one language.  It implements the
// Hyphenator interface.
type Dictionary struct {
	// Language identifies the language the patterns are for.
	Language language.Tag

	lang *hyphenation.Lang
}

// LoadDictionary reads a TeX hyphenation pattern file, for example
// "hyph-en-us.pat.txt" from the hyph-utf8 project.
func LoadDictionary(tag language.Tag, r io.Reader) (*Dictionary, error) {
	lang, err := hyphenation.New(r)
	if err != nil {
		return nil, err
	}
	return &Dictionary{Language: tag, lang: lang}, nil
}

// Hyphenate implements the Hyphenator interface.
func (d *Dictionary) Hyphenate(word string) []int {
	return d.lang.Hyphenate(word)
}

// SplitWord splits one word at the break points reported by h.  Every
// part except the last ends with a "-" penalty and carries no
// whitespace; the last part keeps the word's original whitespace and
// penalty.  If h reports no usable break points, the word is returned
// unchanged.
func SplitWord(w Word, h Hyphenator) []Word {
	breaks := h.Hyphenate(w.Text)
	if len(breaks) == 0 {
		return []Word{w}
	}

	runes := []rune(w.Text)
	var parts []Word
	start := 0
	for _, br := range breaks {
		if br <= start || br >= len(runes) {
			continue
		}
		parts = append(parts, NewWord(string(runes[start:br]), "", "-"))
		start = br
	}
	parts = append(parts, NewWord(string(runes[start:]), w.Whitespace, w.Penalty))
	return parts
}
