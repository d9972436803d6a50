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
	"github.com/consensys/go-sparsepoly/pkg/util/field"
)

// Add another polynomial onto this polynomial, returning a fresh polynomial.
func (p Polynomial[F]) Add(q Polynomial[F]) Polynomial[F] {
	return p.combine(q, func(x, y F) F { return x.Add(y) })
}

// Sub another polynomial from this polynomial, returning a fresh polynomial.
func (p Polynomial[F]) Sub(q Polynomial[F]) Polynomial[F] {
	return p.combine(q, func(x, y F) F { return x.Sub(y) })
}

// Mul this polynomial by another polynomial, returning a fresh polynomial.  The
// cost is proportional to the product of the number of terms in each, rather
// than the product of their degrees.  This panics with ErrDegreeOverflow if the
// degree of the product would exceed MaxDegree.
func (p Polynomial[F]) Mul(q Polynomial[F]) Polynomial[F] {
	acc := make(map[uint]F)
	//
	for _, ith := range p.terms {
		for _, jth := range q.terms {
			d := addDegrees(ith.degree, jth.degree)
			acc[d] = acc[d].Add(ith.coefficient.Mul(jth.coefficient))
		}
	}
	//
	return fromMap(acc)
}

// Neg returns the negation of this polynomial.
func (p Polynomial[F]) Neg() Polynomial[F] {
	res := Polynomial[F]{make([]Term[F], len(p.terms))}
	//
	for i, t := range p.terms {
		res.terms[i] = Term[F]{t.degree, field.Neg(t.coefficient)}
	}
	//
	res.sieve()
	//
	return res
}

// Scale multiplies every coefficient of this polynomial by a given constant.
func (p Polynomial[F]) Scale(c F) Polynomial[F] {
	res := Polynomial[F]{make([]Term[F], len(p.terms))}
	//
	for i, t := range p.terms {
		res.terms[i] = Term[F]{t.degree, t.coefficient.Mul(c)}
	}
	//
	res.sieve()
	//
	return res
}

// Derivative returns the formal derivative of this polynomial.
func (p Polynomial[F]) Derivative() Polynomial[F] {
	var res Polynomial[F]
	//
	for _, t := range p.terms {
		if t.degree > 0 {
			n := field.Uint64[F](uint64(t.degree))
			res.terms = append(res.terms, Term[F]{t.degree - 1, t.coefficient.Mul(n)})
		}
	}
	// Coefficients can vanish in positive characteristic
	res.sieve()
	//
	return res
}

// SetUint64 returns the constant polynomial for a given value.  The receiver is
// not used, and this exists so that polynomials can themselves be used as
// coefficients (e.g. for exponentiation).
func (p Polynomial[F]) SetUint64(val uint64) Polynomial[F] {
	return Constant(field.Uint64[F](val))
}

// AddAssign sets this polynomial to p + q.
func (p *Polynomial[F]) AddAssign(q Polynomial[F]) {
	*p = p.Add(q)
}

// SubAssign sets this polynomial to p - q.
func (p *Polynomial[F]) SubAssign(q Polynomial[F]) {
	*p = p.Sub(q)
}

// MulAssign sets this polynomial to p * q.
func (p *Polynomial[F]) MulAssign(q Polynomial[F]) {
	*p = p.Mul(q)
}

// Combine the terms of two polynomials by merging them in order of degree.
// Terms present in only one polynomial are combined against zero.
func (p Polynomial[F]) combine(q Polynomial[F], op func(F, F) F) Polynomial[F] {
	var (
		zero  F
		terms = make([]Term[F], 0, len(p.terms)+len(q.terms))
		i, j  int
	)
	//
	for i < len(p.terms) || j < len(q.terms) {
		switch {
		case j == len(q.terms) || (i < len(p.terms) && p.terms[i].degree < q.terms[j].degree):
			ith := p.terms[i]
			terms = append(terms, Term[F]{ith.degree, op(ith.coefficient, zero)})
			i++
		case i == len(p.terms) || q.terms[j].degree < p.terms[i].degree:
			jth := q.terms[j]
			terms = append(terms, Term[F]{jth.degree, op(zero, jth.coefficient)})
			j++
		default:
			ith, jth := p.terms[i], q.terms[j]
			terms = append(terms, Term[F]{ith.degree, op(ith.coefficient, jth.coefficient)})
			i++
			j++
		}
	}
	//
	res := Polynomial[F]{terms}
	res.sieve()
	//
	return res
}
