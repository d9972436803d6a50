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

// Evaluate a given polynomial at a point x drawn from some ring R, where each
// coefficient is first lifted into R.  Terms are visited in ascending order of
// degree, and the running power of x is advanced by x^(d-prev) for each term,
// so that widely spaced degrees cost only a logarithmic number of
// multiplications.
func Evaluate[F field.Element[F], R field.Ring[R]](p Polynomial[F], x R, lift func(F) R) R {
	var (
		res   R
		power = x.SetUint64(1)
		prev  uint
	)
	//
	for _, t := range p.terms {
		power = power.Mul(field.Pow(x, uint64(t.degree-prev)))
		prev = t.degree
		res = res.Add(power.Mul(lift(t.coefficient)))
	}
	//
	return res
}

// Eval evaluates this polynomial at a given point.
func (p Polynomial[F]) Eval(x F) F {
	return Evaluate(p, x, func(c F) F { return c })
}

// Compose substitutes a given polynomial for the variable of this polynomial,
// returning p(s(x)).  This panics with ErrDegreeOverflow if the degree of the
// result would exceed MaxDegree.
func (p Polynomial[F]) Compose(s Polynomial[F]) Polynomial[F] {
	return Evaluate(p, s, Constant[F])
}
