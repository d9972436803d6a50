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
	"slices"

	"github.com/consensys/go-sparsepoly/pkg/util/field"
)

// ErrDivisionByZero is reported when the divisor of a polynomial division is
// the zero polynomial.
var ErrDivisionByZero = errors.New("division by zero polynomial")

// DivMod performs Euclidean division of this polynomial by a given divisor,
// returning the quotient and remainder.  The remainder always has degree
// strictly less than that of the divisor, and p == quo*q + rem.  An error is
// returned if the divisor is the zero polynomial.
func (p Polynomial[F]) DivMod(q Polynomial[F]) (quo Polynomial[F], rem Polynomial[F], err error) {
	if q.IsZero() {
		return quo, rem, ErrDivisionByZero
	}
	//
	quo = p.quotient(q)
	rem = p.Sub(quo.Mul(q))
	//
	return quo, rem, nil
}

// Div returns the quotient of dividing this polynomial by another.  This panics
// with ErrDivisionByZero if the divisor is the zero polynomial.
func (p Polynomial[F]) Div(q Polynomial[F]) Polynomial[F] {
	if q.IsZero() {
		panic(ErrDivisionByZero)
	}
	//
	return p.quotient(q)
}

// Mod returns the remainder of dividing this polynomial by another, defined as
// p - (p/q)*q.  This panics with ErrDivisionByZero if the divisor is the zero
// polynomial.
func (p Polynomial[F]) Mod(q Polynomial[F]) Polynomial[F] {
	return p.Sub(p.Div(q).Mul(q))
}

// DivAssign sets this polynomial to p / q.
func (p *Polynomial[F]) DivAssign(q Polynomial[F]) {
	*p = p.Div(q)
}

// ModAssign sets this polynomial to p % q.
func (p *Polynomial[F]) ModAssign(q Polynomial[F]) {
	*p = p.Mod(q)
}

// Long division of p by a nonzero q, where the leading term of a working copy
// of p is eliminated on each step.
func (p Polynomial[F]) quotient(q Polynomial[F]) Polynomial[F] {
	var (
		quo  Polynomial[F]
		work = p.clone()
		lead = q.Lead()
		deg  = work.Degree() - q.Degree()
	)
	//
	for deg >= 0 {
		var (
			shift  = uint(deg)
			factor = work.Lead().Div(lead)
		)
		// Quotient terms are generated in descending order of degree.
		quo.terms = append(quo.terms, Term[F]{shift, factor})
		//
		for _, t := range q.terms[:len(q.terms)-1] {
			work.subTerm(t.degree+shift, t.coefficient.Mul(factor))
		}
		// The leading term cancels exactly (even when the division above was
		// inexact), which guarantees the degree goes down.
		work.terms = work.terms[:len(work.terms)-1]
		work.cut()
		//
		deg = work.Degree() - q.Degree()
	}
	//
	slices.Reverse(quo.terms)
	quo.sieve()
	//
	return quo
}

// Norm divides every coefficient by the leading coefficient, thus producing a
// monic polynomial.  Normalising the zero polynomial gives zero.
func (p Polynomial[F]) Norm() Polynomial[F] {
	if p.IsZero() || p.Lead().IsOne() {
		return p
	}
	//
	var (
		lead = p.Lead()
		res  = Polynomial[F]{make([]Term[F], len(p.terms))}
	)
	//
	for i, t := range p.terms {
		res.terms[i] = Term[F]{t.degree, t.coefficient.Div(lead)}
	}
	//
	res.sieve()
	//
	return res
}

// GCD returns the monic greatest common divisor of this polynomial and another.
func (p Polynomial[F]) GCD(q Polynomial[F]) Polynomial[F] {
	return GCD(p, q)
}

// GCD computes the monic greatest common divisor of two polynomials using the
// Euclidean algorithm.  The gcd of zero and zero is zero, whilst the gcd of p
// and zero is p normalised.
func GCD[F field.Element[F]](p, q Polynomial[F]) Polynomial[F] {
	// Observe p and q are local copies, and neither Mod nor Norm modify their
	// operands.
	for !q.IsZero() {
		p, q = q, p.Mod(q)
	}
	//
	return p.Norm()
}

// GCDOf computes the monic greatest common divisor of zero or more
// polynomials.
func GCDOf[F field.Element[F]](polys ...Polynomial[F]) Polynomial[F] {
	var res Polynomial[F]
	//
	for _, p := range polys {
		res = GCD(res, p)
	}
	//
	return res
}
