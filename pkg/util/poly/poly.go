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
	"cmp"
	"maps"
	"slices"

	"github.com/consensys/go-sparsepoly/pkg/util/collection/iter"
	"github.com/consensys/go-sparsepoly/pkg/util/field"
)

// Polynomial is a univariate polynomial whose coefficients are drawn from F.
// Only nonzero terms are stored, hence a polynomial of enormous degree with few
// terms remains cheap.  Observe that an unitialised Polynomial variable
// corresponds with zero.
//
// Polynomials are values.  The underlying store of a polynomial is never
// modified once it has been constructed, so copies never interfere with each
// other.
type Polynomial[F field.Element[F]] struct {
	// Terms sorted by strictly ascending degree, none of which has a zero
	// coefficient.
	terms []Term[F]
}

// New constructs a polynomial from a dense sequence of coefficients, where the
// ith coefficient is for degree i.  For example, New(1,-2,3) represents the
// polynomial 3x^2 - 2x + 1.
func New[F field.Element[F]](coeffs ...F) Polynomial[F] {
	var terms []Term[F]
	//
	for i, c := range coeffs {
		if !c.IsZero() {
			terms = append(terms, Term[F]{uint(i), c})
		}
	}
	//
	return Polynomial[F]{terms}
}

// Constant constructs a polynomial of degree 0 from a given coefficient.  If
// that coefficient is zero, then the zero polynomial is returned.
func Constant[F field.Element[F]](c F) Polynomial[F] {
	return New(c)
}

// FromIterator constructs a polynomial from an arbitrary sequence of
// coefficients, where the ith coefficient enumerated is for degree i.
func FromIterator[F field.Element[F]](coeffs iter.Enumerator[F]) Polynomial[F] {
	var terms []Term[F]
	//
	for i := uint(0); coeffs.HasNext(); i++ {
		if c := coeffs.Next(); !c.IsZero() {
			terms = append(terms, Term[F]{i, c})
		}
	}
	//
	return Polynomial[F]{terms}
}

// FromTerms constructs a polynomial from zero or more terms given in any order.
// Terms of the same degree are added together.
func FromTerms[F field.Element[F]](terms ...Term[F]) Polynomial[F] {
	acc := make(map[uint]F)
	//
	for _, t := range terms {
		acc[t.degree] = acc[t.degree].Add(t.coefficient)
	}
	//
	return fromMap(acc)
}

// Construct a polynomial from a mapping of degrees to coefficients.  Zero
// coefficients are permitted in the mapping, and are removed.
func fromMap[F field.Element[F]](acc map[uint]F) Polynomial[F] {
	var (
		degrees = slices.Sorted(maps.Keys(acc))
		res     = Polynomial[F]{make([]Term[F], len(degrees))}
	)
	//
	for i, d := range degrees {
		res.terms[i] = Term[F]{d, acc[d]}
	}
	//
	res.sieve()
	//
	return res
}

// Degree returns the highest degree of any term in this polynomial, or -1 if
// this is the zero polynomial.  Since no term has a degree above MaxDegree, the
// result is only negative for the zero polynomial.
func (p Polynomial[F]) Degree() int {
	if len(p.terms) == 0 {
		return -1
	}
	//
	return int(p.terms[len(p.terms)-1].degree)
}

// Len returns the number of (nonzero) terms in this polynomial.
func (p Polynomial[F]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term in this polynomial, in order of ascending degree.
func (p Polynomial[F]) Term(ith uint) Term[F] {
	return p.terms[ith]
}

// Coefficient returns the coefficient for a given degree, which is zero for
// any degree not present in this polynomial.
func (p Polynomial[F]) Coefficient(degree uint) F {
	var zero F
	//
	if i, ok := p.find(degree); ok {
		return p.terms[i].coefficient
	}
	//
	return zero
}

// Lead returns the leading coefficient of this polynomial (i.e. that of the
// highest degree term), or zero for the zero polynomial.
func (p Polynomial[F]) Lead() F {
	var zero F
	//
	if len(p.terms) == 0 {
		return zero
	}
	//
	return p.terms[len(p.terms)-1].coefficient
}

// IsZero checks whether this is the zero polynomial.
func (p Polynomial[F]) IsZero() bool {
	return len(p.terms) == 0
}

// IsOne checks whether this is the constant polynomial 1.
func (p Polynomial[F]) IsOne() bool {
	return len(p.terms) == 1 && p.terms[0].degree == 0 && p.terms[0].coefficient.IsOne()
}

// Terms returns an iterator over the terms of this polynomial in order of
// ascending degree.  A fresh iterator is returned on each call.
func (p Polynomial[F]) Terms() iter.Iterator[Term[F]] {
	return iter.NewArrayIterator(p.terms)
}

// Equal checks whether two polynomials have exactly the same terms.
func (p Polynomial[F]) Equal(q Polynomial[F]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	//
	for i, t := range p.terms {
		if t.degree != q.terms[i].degree || !field.Equal(t.coefficient, q.terms[i].coefficient) {
			return false
		}
	}
	//
	return true
}

// Cmp provides a total order over polynomials.  This order is purely
// structural: terms are compared lexicographically in order of ascending degree
// (first by degree, then by coefficient), with a polynomial whose terms are a
// prefix of another's being smaller.  It has no algebraic meaning, and exists
// only so polynomials can be sorted or used as keys.
func (p Polynomial[F]) Cmp(q Polynomial[F]) int {
	n := min(len(p.terms), len(q.terms))
	//
	for i := 0; i < n; i++ {
		if c := cmp.Compare(p.terms[i].degree, q.terms[i].degree); c != 0 {
			return c
		} else if c := p.terms[i].coefficient.Cmp(q.terms[i].coefficient); c != 0 {
			return c
		}
	}
	//
	return cmp.Compare(len(p.terms), len(q.terms))
}

// Sign returns the sign of the leading coefficient.
func (p Polynomial[F]) Sign() int {
	if len(p.terms) == 0 {
		return 0
	}
	//
	return field.Sign(p.Lead())
}

// ============================================================================
// Store maintenance.  These operate in place, and must only be applied to
// polynomials which have not yet escaped to a caller.
// ============================================================================

func (p Polynomial[F]) clone() Polynomial[F] {
	return Polynomial[F]{slices.Clone(p.terms)}
}

// Find the position of the term with a given degree, or where it would be
// inserted.
func (p Polynomial[F]) find(degree uint) (int, bool) {
	return slices.BinarySearchFunc(p.terms, degree, func(t Term[F], d uint) int {
		return cmp.Compare(t.degree, d)
	})
}

// Subtract a given value from the coefficient of a given degree, inserting a
// new term if necessary.  This may leave a zero coefficient behind.
func (p *Polynomial[F]) subTerm(degree uint, val F) {
	if i, ok := p.find(degree); ok {
		p.terms[i].coefficient = p.terms[i].coefficient.Sub(val)
	} else {
		p.terms = slices.Insert(p.terms, i, Term[F]{degree, field.Neg(val)})
	}
}

// Remove zero coefficients from the top of this polynomial.
func (p *Polynomial[F]) cut() {
	n := len(p.terms)
	//
	for n > 0 && p.terms[n-1].coefficient.IsZero() {
		n--
	}
	//
	if n == 0 {
		p.terms = nil
	} else {
		p.terms = p.terms[:n]
	}
}

// Remove all zero coefficients from this polynomial.
func (p *Polynomial[F]) sieve() {
	p.terms = slices.DeleteFunc(p.terms, func(t Term[F]) bool {
		return t.coefficient.IsZero()
	})
	//
	if len(p.terms) == 0 {
		p.terms = nil
	}
}
