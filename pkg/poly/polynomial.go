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
	"fmt"
	"slices"
)

// ErrNegativeExponent is reported when a coefficient is assigned to a negative
// exponent.
var ErrNegativeExponent = errors.New("negative exponent")

// ErrExponentTooLarge is reported when assigning a coefficient would grow a
// polynomial beyond a given maximum exponent.
var ErrExponentTooLarge = errors.New("exponent too large")

// Polynomial is a univariate polynomial with integer coefficients, stored
// densely such that the ith element of the underlying array is the coefficient
// of x^i.  A polynomial always has storage for at least the constant term, and
// storage may extend beyond the degree (i.e. trailing zero coefficients are
// permitted).  Observe that an uninitialised Polynomial variable corresponds
// with zero.
//
// Polynomials never share storage: copying (via Clone or Set) is always deep.
type Polynomial struct {
	coeffs []int64
}

// New constructs the zero polynomial.
func New() *Polynomial {
	return &Polynomial{[]int64{0}}
}

// NewConstant constructs a polynomial consisting of a single constant term.
func NewConstant(coeff int64) *Polynomial {
	return &Polynomial{[]int64{coeff}}
}

// NewTerm constructs a polynomial consisting of a single term coeff*x^exp.
// This panics if exp is negative.
func NewTerm(coeff int64, exp int) *Polynomial {
	if exp < 0 {
		panic(fmt.Sprintf("negative exponent (%d)", exp))
	}
	//
	coeffs := make([]int64, exp+1)
	coeffs[exp] = coeff
	//
	return &Polynomial{coeffs}
}

// NewFromCoefficients constructs a polynomial from coefficients given in
// ascending order of exponent.  For example, NewFromCoefficients(5, -1, 2)
// represents 2x^2 - x + 5.  The given slice is copied.
func NewFromCoefficients(coeffs ...int64) *Polynomial {
	if len(coeffs) == 0 {
		return New()
	}
	//
	return &Polynomial{slices.Clone(coeffs)}
}

// Clone performs a deep copy of this polynomial.
func (p *Polynomial) Clone() *Polynomial {
	return &Polynomial{slices.Clone(p.storage())}
}

// Set assigns the contents of another polynomial to this polynomial, returning
// this polynomial.  The receiver's storage is replaced by a fresh copy of the
// other's, such that the two remain independent.  Assigning a polynomial to
// itself has no effect.
func (p *Polynomial) Set(other *Polynomial) *Polynomial {
	if p == other {
		return p
	}
	//
	p.coeffs = slices.Clone(other.storage())
	//
	return p
}

// Len returns the number of coefficients for which this polynomial currently
// has storage.  This is one more than the highest exponent stored, and is
// always at least one.
func (p *Polynomial) Len() int {
	return max(1, len(p.coeffs))
}

// Degree returns the highest exponent with a nonzero coefficient.  The zero
// polynomial has degree 0.
func (p *Polynomial) Degree() int {
	for i := len(p.coeffs) - 1; i > 0; i-- {
		if p.coeffs[i] != 0 {
			return i
		}
	}
	//
	return 0
}

// IsZero checks whether every coefficient of this polynomial is zero.
func (p *Polynomial) IsZero() bool {
	for _, c := range p.coeffs {
		if c != 0 {
			return false
		}
	}
	//
	return true
}

// Coefficient returns the coefficient of x^exp.  Any exponent outside the
// stored range (including negative exponents) has coefficient zero.
func (p *Polynomial) Coefficient(exp int) int64 {
	if exp < 0 || exp >= len(p.coeffs) {
		return 0
	}
	//
	return p.coeffs[exp]
}

// Coefficients returns a copy of the stored coefficients, in ascending order of
// exponent.
func (p *Polynomial) Coefficients() []int64 {
	return slices.Clone(p.storage())
}

// SetCoefficient assigns coeff as the coefficient of x^exp, growing storage as
// necessary.  This fails, returning false and leaving the polynomial unchanged,
// when exp is negative.  Assigning zero never shrinks storage.
func (p *Polynomial) SetCoefficient(coeff int64, exp int) bool {
	if exp < 0 {
		return false
	}
	//
	if exp >= len(p.coeffs) {
		p.resize(exp + 1)
	}
	//
	p.coeffs[exp] = coeff
	//
	return true
}

// TrySetCoefficient is a variant of SetCoefficient which additionally bounds
// how far storage can grow.  Specifically, an exponent above maxExp is
// rejected with ErrExponentTooLarge, whilst a negative exponent is rejected
// with ErrNegativeExponent.  A negative maxExp indicates no bound.  In all
// failure cases, the polynomial is left unchanged.
func (p *Polynomial) TrySetCoefficient(coeff int64, exp int, maxExp int) error {
	if exp < 0 {
		return fmt.Errorf("%w (%d)", ErrNegativeExponent, exp)
	} else if maxExp >= 0 && exp > maxExp {
		return fmt.Errorf("%w (%d > %d)", ErrExponentTooLarge, exp, maxExp)
	}
	//
	p.SetCoefficient(coeff, exp)
	//
	return nil
}

// Trim returns a copy of this polynomial without trailing zero coefficients
// (though always retaining the constant term).
func (p *Polynomial) Trim() *Polynomial {
	return &Polynomial{slices.Clone(p.storage()[:p.Degree()+1])}
}

// Grow storage to exactly n coefficients.  The new array is fully constructed
// before replacing the old, hence a partial resize is never visible.
func (p *Polynomial) resize(n int) {
	coeffs := make([]int64, n)
	copy(coeffs, p.coeffs)
	p.coeffs = coeffs
}

// Return the underlying coefficient array, ensuring a zero constant term is
// present for an uninitialised polynomial.
func (p *Polynomial) storage() []int64 {
	if len(p.coeffs) == 0 {
		return []int64{0}
	}
	//
	return p.coeffs
}
