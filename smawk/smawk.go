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

// Package smawk finds column minima in implicit, totally monotone
// matrices using a number of matrix evaluations linear in the matrix
// size.
//
// A matrix M is totally monotone, if for all i1 < i2 and j1 < j2
// with M[i1,j1] > M[i2,j1] we also have M[i1,j2] > M[i2,j2]: once a
// later row has taken the lead in some column, it keeps the lead in
// all later columns.  Matrices of this kind come up in optimization
// problems over sequences, for example when breaking a paragraph of
// text into lines.
//
// The batch algorithm is the one of Aggarwal, Klawe, Moran, Shor and
// Wilber (1987), the online variant follows Galil and Park (1992).
package smawk

import "cmp"

// An Entry records the minimum found in one matrix column: the row
// where the minimum is attained, together with the value found there.
type Entry[V cmp.Ordered] struct {
	Row   int
	Value V
}

// OnlineColumnMinima returns the column minima of the upper triangle
// of an implicit size×size matrix, finalized left to right.
//
// The matrix is given by the cost function, which is only ever called
// with i < j.  The slice passed to cost holds the minima of all
// columns finalized so far, so the value of a cell may depend on the
// results for earlier columns.  This is what makes dynamic programs
// of the form
//
//	m[j] = min over i < j of m[i] + c(i, j)
//
// expressible: use cost = minima[i].Value + c(i, j).
//
// Entry 0 of the result is (0, initial), the remaining entries are
// the column minima.  The matrix must be totally monotone, otherwise
// the returned values may not be minimal.
func OnlineColumnMinima[V cmp.Ordered](initial V, size int, cost func(minima []Entry[V], i, j int) V) []Entry[V] {
	result := []Entry[V]{{Row: 0, Value: initial}}

	// Rows before base cannot hold the minimum of any column after
	// finished.  Columns up to tentative carry candidate minima over
	// the rows inspected so far.
	finished := 0
	base := 0
	tentative := 0

	m := func(i, j int) V {
		return cost(result[:finished+1], i, j)
	}

	for finished < size-1 {
		i := finished + 1

		if i > tentative {
			// No candidate for column i yet.  Run the batch
			// algorithm on the largest square block of rows and
			// columns below the base to obtain new candidates.
			rows := spanIndices(base, finished+1)
			tentative = min(finished+len(rows), size-1)
			cols := spanIndices(finished+1, tentative+1)
			minima := ColumnMinima(m, rows, cols)
			for k, col := range cols {
				row := minima[k]
				value := m(row, col)
				if col >= len(result) {
					result = append(result, Entry[V]{row, value})
				} else if value < result[col].Value {
					result[col] = Entry[V]{row, value}
				}
			}
			finished = i
			continue
		}

		if d := m(i-1, i); d < result[i].Value {
			// The minimum of column i is on the diagonal.  Every
			// later column minimum is then in row i-1 or below, so
			// all earlier rows and all tentative values are obsolete.
			result[i] = Entry[V]{i - 1, d}
			base = i - 1
			tentative = i
			finished = i
			continue
		}

		if m(i-1, tentative) >= result[tentative].Value {
			// Row i-1 does not take the lead at column tentative and
			// thus supplies no minimum before it.  The candidate for
			// column i is final.
			finished = i
			continue
		}

		// Row i-1 takes the lead at column tentative, so the rows
		// above it are out of the running from there on.  Restart
		// with a fresh base.
		base = i - 1
		tentative = i
		finished = i
	}

	return result
}

// ColumnMinima returns, for every column in cols, the row from rows
// where the value of the matrix is smallest.  Both index slices must
// be strictly increasing, and the matrix must be totally monotone on
// the sub-matrix they select.
func ColumnMinima[V cmp.Ordered](matrix func(i, j int) V, rows, cols []int) []int {
	if len(cols) == 0 {
		return nil
	}

	// Reduce: drop rows which cannot hold any column minimum.  At
	// most len(cols) rows survive.
	reduced := make([]int, 0, len(cols))
	for _, r := range rows {
		for len(reduced) > 0 {
			c := cols[len(reduced)-1]
			if matrix(reduced[len(reduced)-1], c) <= matrix(r, c) {
				break
			}
			reduced = reduced[:len(reduced)-1]
		}
		if len(reduced) != len(cols) {
			reduced = append(reduced, r)
		}
	}

	// Recurse on the odd-numbered columns ...
	odd := make([]int, 0, len(cols)/2)
	for k := 1; k < len(cols); k += 2 {
		odd = append(odd, cols[k])
	}
	oddMinima := ColumnMinima(matrix, reduced, odd)

	// ... and interpolate the even-numbered ones: the minimum of an
	// even column lies between the minima of its odd neighbours.
	minima := make([]int, len(cols))
	for k, row := range oddMinima {
		minima[2*k+1] = row
	}
	r := 0
	for k := 0; k < len(cols); k += 2 {
		col := cols[k]
		lastRow := reduced[len(reduced)-1]
		if k+1 < len(cols) {
			lastRow = minima[k+1]
		}
		row := reduced[r]
		best := row
		bestVal := matrix(row, col)
		for row != lastRow {
			r++
			row = reduced[r]
			if v := matrix(row, col); v < bestVal {
				best = row
				bestVal = v
			}
		}
		minima[k] = best
	}
	return minima
}

func spanIndices(lo, hi int) []int {
	res := make([]int, hi-lo)
	for k := range res {
		res[k] = lo + k
	}
	return res
}
