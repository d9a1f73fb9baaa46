// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import (
	"bytes"
	"io"
	"strconv"
)

// String constructs the textual representation of this polynomial, from the
// highest exponent down.  Each nonzero term is rendered as a space, a sign, an
// explicit magnitude (including 1), then "x" and "^n" as appropriate.  For
// example, 2x^2 - x + 5 is rendered as " +2x^2 -1x +5", whilst the zero
// polynomial is rendered as "0".
func (p *Polynomial) String() string {
	var buf bytes.Buffer
	//
	p.format(&buf)
	//
	return buf.String()
}

// WriteTo writes the textual representation of this polynomial (as given by
// String) to a given writer.
func (p *Polynomial) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

// FormatPairs constructs the pair-list representation of this polynomial.  This
// consists of a "coefficient exponent" pair for each nonzero term (from the
// highest exponent down), followed by the terminating pair "-1 -1".  The result
// can be read back with ParsePairs.
func (p *Polynomial) FormatPairs() string {
	var buf bytes.Buffer
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if c := p.coeffs[i]; c != 0 {
			buf.WriteString(strconv.FormatInt(c, 10))
			buf.WriteString(" ")
			buf.WriteString(strconv.Itoa(i))
			buf.WriteString(" ")
		}
	}
	//
	buf.WriteString("-1 -1")
	//
	return buf.String()
}

func (p *Polynomial) format(buf *bytes.Buffer) {
	var empty = true
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		coeff := p.coeffs[i]
		//
		if coeff == 0 {
			continue
		}
		// Sign and magnitude are written separately.  Observe that negating
		// math.MinInt64 gives itself, which converts to the right magnitude.
		magnitude := uint64(coeff)
		//
		if coeff < 0 {
			buf.WriteString(" -")
			magnitude = uint64(-coeff)
		} else {
			buf.WriteString(" +")
		}
		//
		buf.WriteString(strconv.FormatUint(magnitude, 10))
		//
		if i > 0 {
			buf.WriteString("x")
		}
		//
		if i > 1 {
			buf.WriteString("^")
			buf.WriteString(strconv.Itoa(i))
		}
		//
		empty = false
	}
	//
	if empty {
		buf.WriteString("0")
	}
}
