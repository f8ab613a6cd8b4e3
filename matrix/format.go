// SPDX-License-Identifier: MIT

// Package matrix - fixed-decimal text rendering for debugging.
//
// Layout (not a parseable format):
//
//	1.00 2.00 \n
//	3.00 4.00 \n
//	\n
//
// Every value is followed by one space, every row by a newline, and the
// matrix by one blank line.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const opFprint = "Fprint"

// Fprint writes m to w with fixed decimals (DefaultPrecision unless WithPrecision).
// Implementation:
//   - Stage 1: validate m; resolve options and build the "%.<p>f " verb once.
//   - Stage 2: stream rows through a bufio.Writer; flush at the end.
//
// Behavior highlights:
//   - WithLocale(tag) formats through an x/text message printer (digit grouping).
//
// Errors:
//   - ErrNilMatrix; the first write error of w.
//
// Complexity:
//   - Time O(r*c), Space O(1) besides the writer buffer.
func Fprint(w io.Writer, m Matrix, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opFprint, err)
	}
	o := gatherOptions(opts...)
	verb := fmt.Sprintf("%%.%df ", o.precision)

	format := fmt.Sprintf
	if o.locale != language.Und {
		p := message.NewPrinter(o.locale)
		format = func(key string, a ...any) string { return p.Sprintf(key, a...) }
	}

	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf(opFprint, err)
			}
			if _, err = bw.WriteString(format(verb, v)); err != nil {
				return matrixErrorf(opFprint, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return matrixErrorf(opFprint, err)
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return matrixErrorf(opFprint, err)
	}

	return bw.Flush()
}

// Print writes m to standard output; see Fprint.
func Print(m Matrix, opts ...Option) error {
	return Fprint(os.Stdout, m, opts...)
}
