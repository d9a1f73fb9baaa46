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
	"testing"
)

func Test_Terms_01(t *testing.T) {
	checkTerms(t, "0", New())
	checkTerms(t, " +0x^3", New())
}

func Test_Terms_02(t *testing.T) {
	checkTerms(t, " +2x^2 -1x +5", NewFromCoefficients(5, -1, 2))
}

func Test_Terms_03(t *testing.T) {
	checkTerms(t, "3x^2-x+1", NewFromCoefficients(1, -1, 3))
}

func Test_Terms_04(t *testing.T) {
	checkTerms(t, "x", NewTerm(1, 1))
	checkTerms(t, "-x^3", NewTerm(-1, 3))
	checkTerms(t, "+7", NewConstant(7))
}

func Test_Terms_05(t *testing.T) {
	// like terms are summed
	checkTerms(t, "x + x", NewTerm(2, 1))
	checkTerms(t, "5 + 2x - 5", NewTerm(2, 1))
	checkTerms(t, "x^2 - x^2", New())
}

func Test_Terms_06(t *testing.T) {
	checkTerms(t, "-9223372036854775808", NewConstant(math.MinInt64))
	checkTerms(t, "9223372036854775807x", NewTerm(math.MaxInt64, 1))
}

func Test_Terms_Invalid_01(t *testing.T) {
	checkTermsFails(t, "", "empty polynomial", 0)
	checkTermsFails(t, "  ", "empty polynomial", 2)
}

func Test_Terms_Invalid_02(t *testing.T) {
	checkTermsFails(t, "2 3", "expected sign", 2)
	checkTermsFails(t, "x^2^3", "expected sign", 3)
}

func Test_Terms_Invalid_03(t *testing.T) {
	checkTermsFails(t, "x^", "expected exponent", 2)
	checkTermsFails(t, "x^-1", "expected exponent", 2)
}

func Test_Terms_Invalid_04(t *testing.T) {
	checkTermsFails(t, "+", "expected term", 1)
	checkTermsFails(t, "2x -", "expected term", 4)
}

func Test_Terms_Invalid_05(t *testing.T) {
	checkTermsFails(t, "9223372036854775808", "integer out of range", 0)
	checkTermsFails(t, "x^1048577", "exponent too large", 2)
}

func Test_Terms_Invalid_06(t *testing.T) {
	checkTermsFails(t, "2y", "unknown text encountered", 1)
}

func Test_Terms_Lines_01(t *testing.T) {
	checkTerms(t, "\n\n x^2 + 1\n\n", NewFromCoefficients(1, 0, 1))
	checkTermsFails(t, "x\n2", "unexpected text after polynomial", 2)
}

func Test_Terms_All_01(t *testing.T) {
	polys, errs := ParseAllTerms(newSourceFile(" +1x^2 -3\n\n0\r\n-x\n"), DefaultOptions())
	//
	if len(errs) > 0 {
		t.Fatalf("unexpected error: %s", errs[0].Message())
	} else if len(polys) != 3 {
		t.Fatalf("expected 3 polynomials, got %d", len(polys))
	}
	//
	checkEqual(t, polys[0], NewFromCoefficients(-3, 0, 1))
	checkEqual(t, polys[1], New())
	checkEqual(t, polys[2], NewTerm(-1, 1))
}

func Test_Terms_All_02(t *testing.T) {
	// errors on separate lines are all reported
	_, errs := ParseAllTerms(newSourceFile("x^\n1\n2 3\n"), DefaultOptions())
	checkErrors(t, errs, "expected exponent", "expected sign")
}

func Test_Terms_All_03(t *testing.T) {
	if polys, errs := ParseAllTerms(newSourceFile("\n \n"), DefaultOptions()); len(errs) > 0 || len(polys) != 0 {
		t.Errorf("expected no polynomials and no errors")
	}
}

// =========================================================================================

func checkTerms(t *testing.T, input string, expected *Polynomial) {
	t.Helper()
	//
	p, errs := ParseTerms(newSourceFile(input), DefaultOptions())
	//
	if len(errs) > 0 {
		t.Errorf("unexpected error parsing %q: %s", input, errs[0].Message())
	} else {
		checkEqual(t, p, expected)
	}
}

func checkTermsFails(t *testing.T, input string, msg string, start int) {
	t.Helper()
	//
	_, errs := ParseTerms(newSourceFile(input), DefaultOptions())
	//
	checkErrors(t, errs, msg)
	//
	if span := errs[0].Span(); span.Start() != start {
		t.Errorf("error for %q reported at %d, expected %d", input, span.Start(), start)
	}
}
