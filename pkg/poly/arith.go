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

import "math/big"

// Add returns a fresh polynomial representing the sum of this polynomial and
// another.  Neither operand is modified.
func (p *Polynomial) Add(other *Polynomial) *Polynomial {
	var res = make([]int64, max(p.Len(), other.Len()))
	//
	for i := range res {
		res[i] = p.Coefficient(i) + other.Coefficient(i)
	}
	//
	return &Polynomial{res}
}

// Sub returns a fresh polynomial representing this polynomial minus another.
// Neither operand is modified.
func (p *Polynomial) Sub(other *Polynomial) *Polynomial {
	var res = make([]int64, max(p.Len(), other.Len()))
	//
	for i := range res {
		res[i] = p.Coefficient(i) - other.Coefficient(i)
	}
	//
	return &Polynomial{res}
}

// Mul returns a fresh polynomial representing the product of this polynomial
// and another.  Neither operand is modified.  Observe the result has storage
// for Len()+other.Len() coefficients, which is one more than strictly needed.
func (p *Polynomial) Mul(other *Polynomial) *Polynomial {
	var res = make([]int64, p.Len()+other.Len())
	//
	for i, ith := range p.coeffs {
		for j, jth := range other.coeffs {
			res[i+j] += ith * jth
		}
	}
	//
	return &Polynomial{res}
}

// Neg returns a fresh polynomial with every coefficient of this polynomial
// negated.
func (p *Polynomial) Neg() *Polynomial {
	var res = make([]int64, p.Len())
	//
	for i := range res {
		res[i] = -p.Coefficient(i)
	}
	//
	return &Polynomial{res}
}

// AddAssign adds another polynomial onto this polynomial, such that this
// polynomial is updated in place.
func (p *Polynomial) AddAssign(other *Polynomial) *Polynomial {
	return p.Set(p.Add(other))
}

// SubAssign subtracts another polynomial from this polynomial, such that this
// polynomial is updated in place.
func (p *Polynomial) SubAssign(other *Polynomial) *Polynomial {
	return p.Set(p.Sub(other))
}

// MulAssign multiplies this polynomial by another polynomial, such that this
// polynomial is updated in place.
func (p *Polynomial) MulAssign(other *Polynomial) *Polynomial {
	return p.Set(p.Mul(other))
}

// Equal determines whether two polynomials have identical coefficients for
// every exponent.  Trailing zero coefficients are not significant, hence
// polynomials with different storage lengths can be equal.
func (p *Polynomial) Equal(other *Polynomial) bool {
	n := max(p.Len(), other.Len())
	//
	for i := 0; i < n; i++ {
		if p.Coefficient(i) != other.Coefficient(i) {
			return false
		}
	}
	//
	return true
}

// NotEqual is the negation of Equal.
func (p *Polynomial) NotEqual(other *Polynomial) bool {
	return !p.Equal(other)
}

// Eval evaluates this polynomial at a given point using Horner's method.  Like
// all arithmetic here, overflow wraps silently.
func (p *Polynomial) Eval(x int64) int64 {
	var acc int64
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc*x + p.coeffs[i]
	}
	//
	return acc
}

// EvalBig evaluates this polynomial exactly at a given point.
func (p *Polynomial) EvalBig(x *big.Int) *big.Int {
	var (
		acc   = big.NewInt(0)
		coeff big.Int
	)
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, coeff.SetInt64(p.coeffs[i]))
	}
	//
	return acc
}
