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
	"math"
)

// MaxDegree is the largest degree any term can have.  This ensures the degree
// of every polynomial can also be reported as an int.
const MaxDegree = uint(math.MaxInt)

// ErrDegreeOverflow is the value with which construction of a term, or an
// operation on polynomials, panics when the resulting degree would exceed
// MaxDegree.
var ErrDegreeOverflow = errors.New("polynomial degree overflow")

// Term represents a single (degree, coefficient) pair within a polynomial.
type Term[F any] struct {
	degree      uint
	coefficient F
}

// NewTerm constructs a term with a given degree and coefficient.  This panics
// with ErrDegreeOverflow if the degree exceeds MaxDegree.
func NewTerm[F any](degree uint, coefficient F) Term[F] {
	if degree > MaxDegree {
		panic(ErrDegreeOverflow)
	}
	//
	return Term[F]{degree, coefficient}
}

// Degree returns the degree of this term.
func (p Term[F]) Degree() uint {
	return p.degree
}

// Coefficient returns the coefficient of this term.
func (p Term[F]) Coefficient() F {
	return p.coefficient
}

// Sum two degrees (neither of which exceeds MaxDegree), or panic with
// ErrDegreeOverflow.
func addDegrees(lhs, rhs uint) uint {
	if lhs > MaxDegree-rhs {
		panic(ErrDegreeOverflow)
	}
	//
	return lhs + rhs
}
