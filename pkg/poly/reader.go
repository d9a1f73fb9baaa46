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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// ErrMalformedInput is reported by a Reader when its input does not consist of
// sentinel-terminated integer pairs.
var ErrMalformedInput = errors.New("malformed input")

// Reader reads consecutive pair-list polynomials (see ParsePairs) from an
// underlying stream.  Unlike ParsePairs, a reader consumes only as much input
// as it needs, so a polynomial is available as soon as its terminating pair
// has been read.  This suits interactive input.
type Reader struct {
	words *bufio.Scanner
	opts  Options
	// Number of words consumed so far, used for error reporting.
	count int
}

// NewReader constructs a reader over a given stream.
func NewReader(r io.Reader, opts Options) *Reader {
	words := bufio.NewScanner(r)
	words.Split(bufio.ScanWords)
	//
	return &Reader{words, opts, 0}
}

// Read the next polynomial from the stream.  This returns io.EOF when the
// stream is exhausted before any further input, and io.ErrUnexpectedEOF when
// it ends part way through a polynomial.
func (r *Reader) Read() (*Polynomial, error) {
	var poly = New()
	//
	for pairs := 0; ; pairs++ {
		coeff, err := r.readInteger()
		if errors.Is(err, io.EOF) && pairs == 0 {
			return nil, io.EOF
		} else if err != nil {
			return nil, unexpectedEOF(err)
		}
		//
		exp, err := r.readInteger()
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		//
		switch {
		case coeff == -1 && exp == -1:
			return poly, nil
		case exp < 0 && r.opts.Strict:
			return nil, fmt.Errorf("%w: negative exponent %d (word %d)", ErrMalformedInput, exp, r.count)
		case exp < 0:
			log.Debugf("dropping term %d with negative exponent %d", coeff, exp)
		case r.opts.exceeds(exp):
			return nil, fmt.Errorf("%w: %w (word %d)", ErrMalformedInput, ErrExponentTooLarge, r.count)
		default:
			poly.SetCoefficient(coeff, int(exp))
		}
	}
}

// ReadAll reads every remaining polynomial from the stream.
func (r *Reader) ReadAll() ([]*Polynomial, error) {
	var polys []*Polynomial
	//
	for {
		poly, err := r.Read()
		if errors.Is(err, io.EOF) {
			return polys, nil
		} else if err != nil {
			return polys, err
		}
		//
		polys = append(polys, poly)
	}
}

func (r *Reader) readInteger() (int64, error) {
	if !r.words.Scan() {
		if err := r.words.Err(); err != nil {
			return 0, err
		}
		//
		return 0, io.EOF
	}
	//
	r.count++
	word := r.words.Text()
	//
	val, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: expected integer, found %q (word %d)", ErrMalformedInput, word, r.count)
	}
	//
	return val, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	//
	return err
}
