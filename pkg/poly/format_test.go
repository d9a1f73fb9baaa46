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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-intpoly/pkg/util/source"
)

func Test_Format_01(t *testing.T) {
	checkFormat(t, New(), "0")
	checkFormat(t, NewFromCoefficients(0, 0, 0), "0")
}

func Test_Format_02(t *testing.T) {
	checkFormat(t, NewConstant(5), " +5")
	checkFormat(t, NewConstant(-5), " -5")
	checkFormat(t, NewConstant(1), " +1")
}

func Test_Format_03(t *testing.T) {
	checkFormat(t, NewFromCoefficients(5, -1, 2), " +2x^2 -1x +5")
}

func Test_Format_04(t *testing.T) {
	checkFormat(t, NewTerm(1, 1), " +1x")
	checkFormat(t, NewTerm(-1, 10), " -1x^10")
	checkFormat(t, NewFromCoefficients(0, 0, -30, 0, 0), " -30x^2")
}

func Test_Format_05(t *testing.T) {
	checkFormat(t, NewFromCoefficients(math.MinInt64, math.MaxInt64), " +9223372036854775807x -9223372036854775808")
}

func Test_Format_06(t *testing.T) {
	var buf bytes.Buffer
	//
	n, err := NewFromCoefficients(3, 0, 1).WriteTo(&buf)
	//
	if err != nil || n != int64(buf.Len()) || buf.String() != " +1x^2 +3" {
		t.Errorf("unexpected write (%d, %v): %q", n, err, buf.String())
	}
}

func Test_FormatPairs_01(t *testing.T) {
	checkFormatPairs(t, New(), "-1 -1")
	checkFormatPairs(t, NewTerm(5, 3), "5 3 -1 -1")
	checkFormatPairs(t, NewFromCoefficients(5, -1, 2), "2 2 -1 1 5 0 -1 -1")
}

func Test_RoundTrip_Pairs(t *testing.T) {
	var rng = rand.New(rand.NewPCG(7, 11))
	//
	for i := 0; i < 100; i++ {
		p := randomPoly(rng)
		q, errs := ParsePairs(newSourceFile(p.FormatPairs()), DefaultOptions())
		//
		if len(errs) > 0 {
			t.Fatalf("failed parsing %q: %s", p.FormatPairs(), errs[0].Message())
		} else if !p.Equal(q) {
			t.Fatalf("round trip of %s gave %s", p, q)
		}
	}
}

func Test_RoundTrip_Terms(t *testing.T) {
	var rng = rand.New(rand.NewPCG(13, 17))
	//
	for i := 0; i < 100; i++ {
		p := randomPoly(rng)
		q, errs := ParseTerms(newSourceFile(p.String()), DefaultOptions())
		//
		if len(errs) > 0 {
			t.Fatalf("failed parsing %q: %s", p.String(), errs[0].Message())
		} else if !p.Equal(q) {
			t.Fatalf("round trip of %s gave %s", p, q)
		}
	}
}

// =========================================================================================

func checkFormat(t *testing.T, p *Polynomial, expected string) {
	t.Helper()
	//
	if actual := p.String(); actual != expected {
		t.Errorf("formatted as %q, expected %q", actual, expected)
	}
}

func checkFormatPairs(t *testing.T, p *Polynomial, expected string) {
	t.Helper()
	//
	if actual := p.FormatPairs(); actual != expected {
		t.Errorf("formatted as %q, expected %q", actual, expected)
	}
}

func newSourceFile(text string) *source.File {
	return source.NewSourceFile("test", []byte(text))
}
