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
	"math"
	"strconv"

	"github.com/consensys/go-intpoly/pkg/util/source"
)

// ParseTerms parses a polynomial written as a sum of terms, such as the output
// of String (e.g. " +2x^2 -1x +5").  Each term has an optional sign (required
// for all but the first term), an optional magnitude, and an optional "x" with
// an optional "^n".  Terms with the same exponent are summed, so "x+x" is 2x.
// The polynomial must be written on a single line, though blank lines are
// permitted before and after.
func ParseTerms(srcfile *source.File, opts Options) (*Polynomial, []source.SyntaxError) {
	parser, errs := newTermParser(srcfile, opts)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	parser.skipNewlines()
	//
	if parser.atEnd() {
		return nil, parser.syntaxErrors(parser.lookahead(), "empty polynomial")
	}
	//
	poly, errs := parser.parseLine()
	//
	if parser.skipNewlines(); len(errs) == 0 && !parser.atEnd() {
		return nil, parser.syntaxErrors(parser.lookahead(), "unexpected text after polynomial")
	}
	//
	return poly, errs
}

// ParseAllTerms parses zero or more polynomials, each written as a sum of terms
// (see ParseTerms) on its own line.  Blank lines are ignored.
func ParseAllTerms(srcfile *source.File, opts Options) ([]*Polynomial, []source.SyntaxError) {
	var polys []*Polynomial
	//
	parser, errs := newTermParser(srcfile, opts)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for parser.skipNewlines(); !parser.atEnd(); parser.skipNewlines() {
		poly, lineErrs := parser.parseLine()
		//
		errs = append(errs, lineErrs...)
		polys = append(polys, poly)
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return polys, nil
}

type termParser struct {
	pairParser
}

func newTermParser(srcfile *source.File, opts Options) (*termParser, []source.SyntaxError) {
	tokens, err := source.Tokenize(srcfile, scanner, WSPACE)
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	return &termParser{pairParser{srcfile, tokens, 0, opts}}, nil
}

// Parse the terms of a single polynomial up to the end of the current line.
func (p *termParser) parseLine() (*Polynomial, []source.SyntaxError) {
	var (
		poly = New()
		errs []source.SyntaxError
	)
	//
	for first := true; !p.atEndOfLine(); first = false {
		coeff, exp, err := p.parseTerm(first)
		//
		if err != nil {
			p.skipLine()
			return nil, append(errs, *err)
		} else if p.opts.exceeds(exp.value) {
			errs = append(errs, *p.srcfile.SyntaxError(exp.span, "exponent too large"))
		} else {
			e := int(exp.value)
			poly.SetCoefficient(poly.Coefficient(e)+coeff, e)
		}
	}
	//
	if len(errs) > 0 {
		return nil, errs
	}
	//
	return poly, nil
}

func (p *termParser) atEndOfLine() bool {
	kind := p.lookahead().Kind
	return kind == END_OF || kind == NEWLINE
}

func (p *termParser) skipNewlines() {
	for p.lookahead().Kind == NEWLINE {
		p.next()
	}
}

// Skip the remainder of the current line, such that parsing can resume on the
// next.
func (p *termParser) skipLine() {
	for !p.atEndOfLine() {
		p.next()
	}
}

type exponent struct {
	value int64
	span  source.Span
}

// Parse a single term, returning its (signed) coefficient and exponent.
func (p *termParser) parseTerm(first bool) (int64, exponent, *source.SyntaxError) {
	var (
		start     = p.lookahead()
		negative  = false
		magnitude = uint64(1)
		exp       = exponent{0, start.Span}
		explicit  = false
	)
	// Sign
	switch start.Kind {
	case PLUS, MINUS:
		negative = p.next().Kind == MINUS
	default:
		if !first {
			return 0, exp, p.srcfile.SyntaxError(start.Span, "expected sign")
		}
	}
	// Magnitude
	if tok := p.lookahead(); tok.Kind == NUMBER {
		var err error
		//
		explicit = true
		//
		if magnitude, err = strconv.ParseUint(p.srcfile.Text(tok.Span), 10, 64); err != nil {
			return 0, exp, p.srcfile.SyntaxError(tok.Span, "integer out of range")
		}
		//
		p.next()
	}
	// Variable and exponent
	if tok := p.lookahead(); tok.Kind == VARIABLE {
		p.next()
		//
		exp = exponent{1, tok.Span}
		//
		if p.lookahead().Kind == CARET {
			p.next()
			//
			if tok = p.lookahead(); tok.Kind != NUMBER {
				return 0, exp, p.srcfile.SyntaxError(tok.Span, "expected exponent")
			}
			//
			val, err := strconv.ParseInt(p.srcfile.Text(tok.Span), 10, 64)
			if err != nil {
				return 0, exp, p.srcfile.SyntaxError(tok.Span, "exponent too large")
			}
			//
			exp = exponent{val, p.next().Span}
		}
	} else if !explicit {
		return 0, exp, p.srcfile.SyntaxError(tok.Span, "expected term")
	}
	//
	coeff, err := signed(negative, magnitude, start.Span, p.srcfile)
	//
	return coeff, exp, err
}

// Apply a sign to a magnitude, checking it fits.
func signed(negative bool, magnitude uint64, span source.Span, srcfile *source.File) (int64, *source.SyntaxError) {
	switch {
	case negative && magnitude <= math.MaxInt64+1:
		return int64(-magnitude), nil
	case !negative && magnitude <= math.MaxInt64:
		return int64(magnitude), nil
	default:
		return 0, srcfile.SyntaxError(span, "integer out of range")
	}
}
