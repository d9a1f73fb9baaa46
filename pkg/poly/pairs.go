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
	log "github.com/sirupsen/logrus"
)

// DefaultMaxExponent is the largest exponent accepted by DefaultOptions.  This
// bounds how much storage a single line of input can cause to be allocated.
const DefaultMaxExponent = 1 << 20

// Options control how textual input is turned into polynomials.
type Options struct {
	// Strict reports negative exponents (other than in the terminating pair)
	// as syntax errors, rather than silently dropping them.
	Strict bool
	// MaxExponent is the largest exponent accepted.  Zero (or a negative
	// value) indicates no limit.
	MaxExponent int
}

// DefaultOptions returns lenient options with the default exponent bound.
func DefaultOptions() Options {
	return Options{Strict: false, MaxExponent: DefaultMaxExponent}
}

// Token kinds used when lexing polynomial text.
const (
	END_OF uint = iota
	WSPACE
	NEWLINE
	PLUS
	MINUS
	NUMBER
	VARIABLE
	CARET
)

// Variable used when reading and writing polynomials.
const variable = 'x'

var scanner source.Scanner[rune] = source.Or(
	source.One(PLUS, '+'),
	source.One(MINUS, '-'),
	source.One(VARIABLE, variable),
	source.One(CARET, '^'),
	source.Many(WSPACE, ' ', '\t', '\r'),
	source.Many(NEWLINE, '\n'),
	source.ManyWith(NUMBER, '0', '9'),
	source.Eof[rune](END_OF))

// ParsePairs parses a single polynomial given as a sequence of integer
// "coefficient exponent" pairs, terminated by the pair "-1 -1".  Each pair is
// applied in turn as though by SetCoefficient, hence later pairs overwrite
// earlier ones with the same exponent.  Anything other than whitespace after
// the terminating pair is reported as an error.
func ParsePairs(srcfile *source.File, opts Options) (*Polynomial, []source.SyntaxError) {
	parser, errs := newPairParser(srcfile, opts)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	poly, errs := parser.parsePolynomial()
	//
	if len(errs) == 0 && !parser.atEnd() {
		return nil, parser.syntaxErrors(parser.lookahead(), "unexpected text after terminator")
	}
	//
	return poly, errs
}

// ParseAllPairs parses zero or more consecutive polynomials, each given as a
// sentinel-terminated pair list (see ParsePairs).
func ParseAllPairs(srcfile *source.File, opts Options) ([]*Polynomial, []source.SyntaxError) {
	var polys []*Polynomial
	//
	parser, errs := newPairParser(srcfile, opts)
	if len(errs) > 0 {
		return nil, errs
	}
	//
	for !parser.atEnd() {
		poly, errs := parser.parsePolynomial()
		if len(errs) > 0 {
			return nil, errs
		}
		//
		polys = append(polys, poly)
	}
	//
	return polys, nil
}

type pairParser struct {
	srcfile *source.File
	tokens  []source.Token
	index   int
	opts    Options
}

func newPairParser(srcfile *source.File, opts Options) (*pairParser, []source.SyntaxError) {
	tokens, err := source.Tokenize(srcfile, scanner, WSPACE, NEWLINE)
	if err != nil {
		return nil, []source.SyntaxError{*err}
	}
	//
	return &pairParser{srcfile, tokens, 0, opts}, nil
}

func (p *pairParser) parsePolynomial() (*Polynomial, []source.SyntaxError) {
	var (
		poly = New()
		errs []source.SyntaxError
	)
	//
	for {
		start := p.lookahead()
		//
		if start.Kind == END_OF {
			return nil, p.syntaxErrors(start, "missing terminator (-1 -1)")
		}
		//
		coeff, span, err := p.parseInteger()
		if err != nil {
			return nil, append(errs, *err)
		} else if p.lookahead().Kind == END_OF {
			return nil, p.syntaxErrors(p.lookahead(), "missing exponent")
		}
		//
		exp, expSpan, err := p.parseInteger()
		if err != nil {
			return nil, append(errs, *err)
		}
		//
		switch {
		case coeff == -1 && exp == -1 && len(errs) > 0:
			return nil, errs
		case coeff == -1 && exp == -1:
			return poly, nil
		case exp < 0 && p.opts.Strict:
			errs = append(errs, *p.srcfile.SyntaxError(expSpan, "negative exponent"))
		case exp < 0:
			log.Debugf("dropping term %s with negative exponent", p.srcfile.Text(span.Join(expSpan)))
		case p.opts.exceeds(exp):
			errs = append(errs, *p.srcfile.SyntaxError(expSpan, "exponent too large"))
		default:
			poly.SetCoefficient(coeff, int(exp))
		}
	}
}

// Parse an optionally signed integer.
func (p *pairParser) parseInteger() (int64, source.Span, *source.SyntaxError) {
	var (
		first = p.next()
		span  = first.Span
	)
	//
	if first.Kind == PLUS || first.Kind == MINUS {
		digits := p.lookahead()
		// Sign must be immediately followed by digits
		if digits.Kind != NUMBER || digits.Span.Start() != span.End() {
			return 0, span, p.srcfile.SyntaxError(span, "expected integer")
		}
		//
		span = span.Join(p.next().Span)
	} else if first.Kind != NUMBER {
		return 0, span, p.srcfile.SyntaxError(span, "expected integer")
	}
	//
	val, err := strconv.ParseInt(p.srcfile.Text(span), 10, 64)
	if err != nil {
		return 0, span, p.srcfile.SyntaxError(span, "integer out of range")
	}
	//
	return val, span, nil
}

// Determine the bound on exponents as understood by TrySetCoefficient.
func (o Options) limit() int {
	if o.MaxExponent <= 0 {
		return -1
	}
	//
	return o.MaxExponent
}

// Check whether a given (nonnegative) exponent is beyond the bound.
func (o Options) exceeds(exp int64) bool {
	if exp > math.MaxInt32 {
		// Too large for storage, regardless of any bound
		return true
	}
	//
	return o.limit() >= 0 && exp > int64(o.limit())
}

func (p *pairParser) atEnd() bool {
	return p.lookahead().Kind == END_OF
}

func (p *pairParser) lookahead() source.Token {
	return p.tokens[p.index]
}

// Consume the next token.  The final END_OF token is never consumed.
func (p *pairParser) next() source.Token {
	tok := p.tokens[p.index]
	//
	if tok.Kind != END_OF {
		p.index++
	}
	//
	return tok
}

func (p *pairParser) syntaxErrors(tok source.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(tok.Span, msg)}
}
