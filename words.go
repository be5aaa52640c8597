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
	"bufio"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax14"
)

// SplitWords splits text into words.  Every word keeps the run of
// whitespace which followed it, so that inter-word gaps keep their
// true width when lines are assembled.  Whitespace before the first
// word is dropped.
func SplitWords(text string) []Word {
	var words []Word
	pos := skipSpace(text, 0)
	for pos < len(text) {
		end := pos
		for end < len(text) {
			r, size := utf8.DecodeRuneInString(text[end:])
			if unicode.IsSpace(r) {
				break
			}
			end += size
		}
		wsEnd := skipSpace(text, end)
		words = append(words, NewWord(text[pos:end], text[end:wsEnd], ""))
		pos = wsEnd
	}
	return words
}

// uax14SplitFunc adapts uax14.NextBreak to the bufio.SplitFunc
// interface.  A break at the end of the data may only exist because
// the data is truncated, so more input is requested in that case.
func uax14SplitFunc(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	advance, _ = uax14.NextBreak(data)
	if advance >= len(data) && !atEOF {
		return 0, nil, nil
	}
	return advance, data[:advance], nil
}

func skipSpace(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

// SplitUAX14 splits text at the line break opportunities of Unicode
// Standard Annex #14.  Compared to SplitWords this also allows breaks
// after hyphens and dashes and between CJK characters.  Trailing
// whitespace of each segment is moved into the word's whitespace.
func SplitUAX14(text string) []Word {
	var words []Word
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Split(uax14SplitFunc)
	for scanner.Scan() {
		seg := scanner.Text()
		cut := len(seg)
		for cut > 0 {
			r, size := utf8.DecodeLastRuneInString(seg[:cut])
			if !unicode.IsSpace(r) {
				break
			}
			cut -= size
		}
		if cut == 0 {
			// a segment of pure whitespace extends the previous word;
			// whitespace before the first word is dropped
			if len(words) > 0 {
				prev := words[len(words)-1]
				words[len(words)-1] = NewWord(prev.Text, prev.Whitespace+seg, prev.Penalty)
			}
			continue
		}
		words = append(words, NewWord(seg[:cut], seg[cut:], ""))
	}
	return words
}
