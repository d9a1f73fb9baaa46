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
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func Test_Poly_New_01(t *testing.T) {
	checkCoefficients(t, New(), 0)
}

func Test_Poly_New_02(t *testing.T) {
	checkCoefficients(t, NewConstant(-7), -7)
}

func Test_Poly_New_03(t *testing.T) {
	checkCoefficients(t, NewTerm(5, 3), 0, 0, 0, 5)
}

func Test_Poly_New_04(t *testing.T) {
	checkCoefficients(t, NewTerm(2, 0), 2)
}

func Test_Poly_New_05(t *testing.T) {
	checkCoefficients(t, NewFromCoefficients(), 0)
	checkCoefficients(t, NewFromCoefficients(1, 2, 0), 1, 2, 0)
}

func Test_Poly_New_06(t *testing.T) {
	// uninitialised polynomials are zero
	var p Polynomial
	//
	checkCoefficients(t, &p, 0)
	//
	if !p.Equal(New()) || !p.IsZero() {
		t.Errorf("uninitialised polynomial is not zero")
	}
}

func Test_Poly_New_07(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for negative exponent")
		}
	}()
	//
	NewTerm(1, -1)
}

func Test_Poly_Coefficient_01(t *testing.T) {
	p := NewTerm(5, 3)
	//
	checkCoefficient(t, p, 0, 0)
	checkCoefficient(t, p, 3, 5)
	checkCoefficient(t, p, 7, 0)
	checkCoefficient(t, p, -1, 0)
}

func Test_Poly_SetCoefficient_01(t *testing.T) {
	var p = New()
	//
	for _, e := range []int{0, 3, 1, 10, 2, 10} {
		c := int64(e*7 - 20)
		//
		if !p.SetCoefficient(c, e) {
			t.Fatalf("failed setting coefficient of x^%d", e)
		}
		//
		checkCoefficient(t, p, e, c)
	}
	//
	checkLen(t, p, 11)
}

func Test_Poly_SetCoefficient_02(t *testing.T) {
	var p = NewFromCoefficients(1, 2, 3)
	//
	if p.SetCoefficient(9, -1) {
		t.Errorf("negative exponent accepted")
	}
	//
	checkCoefficients(t, p, 1, 2, 3)
}

func Test_Poly_SetCoefficient_03(t *testing.T) {
	// growing preserves existing coefficients
	var p = New()
	//
	p.SetCoefficient(4, 1)
	p.SetCoefficient(-3, 6)
	//
	checkCoefficients(t, p, 0, 4, 0, 0, 0, 0, -3)
}

func Test_Poly_SetCoefficient_04(t *testing.T) {
	// assigning zero never shrinks
	var p = NewTerm(3, 4)
	//
	p.SetCoefficient(0, 4)
	//
	checkLen(t, p, 5)
	//
	if !p.IsZero() || p.Degree() != 0 {
		t.Errorf("expected zero polynomial, got %s", p)
	}
}

func Test_Poly_SetCoefficient_05(t *testing.T) {
	var rng = rand.New(rand.NewPCG(1, 2))
	//
	for i := 0; i < 100; i++ {
		var (
			p = randomPoly(rng)
			c = rng.Int64N(2001) - 1000
			e = rng.IntN(20)
		)
		//
		p.SetCoefficient(c, e)
		checkCoefficient(t, p, e, c)
	}
}

func Test_Poly_TrySetCoefficient_01(t *testing.T) {
	var p = NewTerm(1, 2)
	//
	if err := p.TrySetCoefficient(5, -3, 10); !errors.Is(err, ErrNegativeExponent) {
		t.Errorf("expected negative exponent error, got %v", err)
	}
	//
	if err := p.TrySetCoefficient(5, 11, 10); !errors.Is(err, ErrExponentTooLarge) {
		t.Errorf("expected exponent too large error, got %v", err)
	}
	//
	checkCoefficients(t, p, 0, 0, 1)
	//
	if err := p.TrySetCoefficient(5, 10, 10); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	//
	if err := p.TrySetCoefficient(6, 100, -1); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	//
	checkCoefficient(t, p, 10, 5)
	checkCoefficient(t, p, 100, 6)
}

func Test_Poly_Set_01(t *testing.T) {
	var p = NewFromCoefficients(1, 2, 3)
	// self assignment
	if p.Set(p) != p {
		t.Errorf("self assignment returned a different polynomial")
	}
	//
	checkCoefficients(t, p, 1, 2, 3)
}

func Test_Poly_Set_02(t *testing.T) {
	var (
		p = NewFromCoefficients(1, 2, 3)
		q = NewTerm(9, 6)
	)
	//
	q.Set(p)
	checkCoefficients(t, q, 1, 2, 3)
	// independence
	q.SetCoefficient(7, 1)
	p.SetCoefficient(8, 5)
	//
	checkCoefficients(t, p, 1, 2, 3, 0, 0, 8)
	checkCoefficients(t, q, 1, 7, 3)
}

func Test_Poly_Clone_01(t *testing.T) {
	var (
		p = NewFromCoefficients(4, 0, -2)
		q = p.Clone()
	)
	//
	if !p.Equal(q) {
		t.Fatalf("clone %s differs from %s", q, p)
	}
	//
	q.SetCoefficient(1, 0)
	q.SetCoefficient(1, 9)
	checkCoefficients(t, p, 4, 0, -2)
	//
	p.SetCoefficient(3, 1)
	checkCoefficients(t, q, 1, 0, -2, 0, 0, 0, 0, 0, 0, 1)
}

func Test_Poly_Coefficients_01(t *testing.T) {
	var (
		p      = NewFromCoefficients(4, 5)
		coeffs = p.Coefficients()
	)
	//
	coeffs[0] = 100
	checkCoefficients(t, p, 4, 5)
}

func Test_Poly_Degree_01(t *testing.T) {
	checkDegree(t, New(), 0)
	checkDegree(t, NewConstant(3), 0)
	checkDegree(t, NewTerm(3, 4), 4)
	checkDegree(t, NewFromCoefficients(1, 2, 0, 0), 1)
}

func Test_Poly_Trim_01(t *testing.T) {
	checkCoefficients(t, NewFromCoefficients(1, 2, 0, 0).Trim(), 1, 2)
	checkCoefficients(t, NewFromCoefficients(0, 0, 0).Trim(), 0)
	checkCoefficients(t, NewTerm(7, 2).Trim(), 0, 0, 7)
}

// =========================================================================================

func checkCoefficients(t *testing.T, p *Polynomial, expected ...int64) {
	t.Helper()
	//
	if actual := p.Coefficients(); !slices.Equal(actual, expected) {
		t.Errorf("coefficients %v, expected %v", actual, expected)
	}
	//
	checkLen(t, p, len(expected))
}

func checkCoefficient(t *testing.T, p *Polynomial, exp int, expected int64) {
	t.Helper()
	//
	if actual := p.Coefficient(exp); actual != expected {
		t.Errorf("coefficient of x^%d in %s is %d, expected %d", exp, p, actual, expected)
	}
}

func checkLen(t *testing.T, p *Polynomial, expected int) {
	t.Helper()
	//
	if p.Len() != expected {
		t.Errorf("length of %s is %d, expected %d", p, p.Len(), expected)
	}
}

func checkDegree(t *testing.T, p *Polynomial, expected int) {
	t.Helper()
	//
	if p.Degree() != expected {
		t.Errorf("degree of %s is %d, expected %d", p, p.Degree(), expected)
	}
}

// Construct a random polynomial with small coefficients, some of which are zero.
func randomPoly(rng *rand.Rand) *Polynomial {
	var coeffs = make([]int64, 1+rng.IntN(8))
	//
	for i := range coeffs {
		if rng.IntN(4) != 0 {
			coeffs[i] = rng.Int64N(201) - 100
		}
	}
	//
	return NewFromCoefficients(coeffs...)
}
