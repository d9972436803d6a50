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
	"testing"

	"github.com/consensys/go-sparsepoly/pkg/util/assert"
	"github.com/consensys/go-sparsepoly/pkg/util/field/rational"
	"github.com/consensys/go-sparsepoly/pkg/util/math"
)

func Test_PolyAdd_01(t *testing.T) {
	checkAdd(t, "x+1", "x-1", "2*x")
}

func Test_PolyAdd_02(t *testing.T) {
	checkAdd(t, "x^2+x", "-x^2-x", "0")
}

func Test_PolyAdd_03(t *testing.T) {
	checkAdd(t, "x^100+1", "x^3", "x^100+x^3+1")
}

func Test_PolyAdd_04(t *testing.T) {
	checkAdd(t, "1/2*x+1/3", "1/2*x+2/3", "x+1")
}

func Test_PolySub_01(t *testing.T) {
	checkSub(t, "x+1", "x+1", "0")
}

func Test_PolySub_02(t *testing.T) {
	checkSub(t, "0", "x^3-2", "-x^3+2")
}

func Test_PolySub_03(t *testing.T) {
	checkSub(t, "3*x^5+x", "x^5+x^2", "2*x^5-x^2+x")
}

func Test_PolyMul_01(t *testing.T) {
	checkMul(t, "x+1", "x-1", "x^2-1")
}

func Test_PolyMul_02(t *testing.T) {
	checkMul(t, "x^2+1", "0", "0")
}

func Test_PolyMul_03(t *testing.T) {
	checkMul(t, "x^1000000+1", "x^1000000-1", "x^2000000-1")
}

func Test_PolyMul_04(t *testing.T) {
	checkMul(t, "2*x^3", "1/2", "x^3")
}

func Test_PolyMul_05(t *testing.T) {
	// Sparse products stay sparse
	p := parse(t, "x^1000000+x^1000+1")
	q := p.Mul(p)
	//
	assert.Equal(t, uint(6), q.Len())
	assert.Equal(t, 2000000, q.Degree())
	assert.Equal(t, "x^2000000+2*x^1001000+2*x^1000000+x^2000+2*x^1000+1", q.String())
}

func Test_PolyMul_06(t *testing.T) {
	// Degrees whose sum exceeds MaxDegree
	p := FromTerms(NewTerm(MaxDegree/2+1, rational.Int64(1)))
	//
	checkOverflow(t, func() { p.Mul(p) })
	checkOverflow(t, func() { p.MulAssign(p) })
}

func Test_PolyMul_07(t *testing.T) {
	// Degrees whose sum is exactly MaxDegree
	p := FromTerms(NewTerm(MaxDegree/2, rational.Int64(2)))
	q := FromTerms(NewTerm(MaxDegree/2+1, rational.Int64(3)))
	r := p.Mul(q)
	//
	assert.Equal(t, int(MaxDegree), r.Degree())
	assert.Equal(t, "6", r.Lead().String())
}

func Test_PolyPow_01(t *testing.T) {
	p := math.Pow(parse(t, "x+1"), 3)
	//
	assert.Equal(t, "x^3+3*x^2+3*x+1", p.String())
}

func Test_PolyPow_02(t *testing.T) {
	p := math.Pow(parse(t, "x^2+1"), 0)
	//
	assert.True(t, p.IsOne())
}

func Test_PolyNeg_01(t *testing.T) {
	assert.Equal(t, "-x^2+x-1", parse(t, "x^2-x+1").Neg().String())
	assert.True(t, ints().Neg().IsZero())
}

func Test_PolyScale_01(t *testing.T) {
	p := parse(t, "2*x^2-4")
	//
	assert.Equal(t, "x^2-2", p.Scale(rational.New(1, 2)).String())
	assert.True(t, p.Scale(rational.Int64(0)).IsZero())
}

func Test_PolyDerivative_01(t *testing.T) {
	checkDerivative(t, "x^8+2*x^4+2", "8*x^7+8*x^3")
}

func Test_PolyDerivative_02(t *testing.T) {
	checkDerivative(t, "5", "0")
}

func Test_PolyDerivative_03(t *testing.T) {
	checkDerivative(t, "1/2*x^2-x", "x-1")
}

// ============================================================================
// Helpers
// ============================================================================

func checkAdd(t *testing.T, lhs, rhs, expected string) {
	checkBinary(t, lhs, rhs, expected, Polynomial[Rat].Add)
	// Addition commutes
	checkBinary(t, rhs, lhs, expected, Polynomial[Rat].Add)
}

func checkSub(t *testing.T, lhs, rhs, expected string) {
	checkBinary(t, lhs, rhs, expected, Polynomial[Rat].Sub)
}

func checkMul(t *testing.T, lhs, rhs, expected string) {
	checkBinary(t, lhs, rhs, expected, Polynomial[Rat].Mul)
	// Multiplication commutes
	checkBinary(t, rhs, lhs, expected, Polynomial[Rat].Mul)
}

func checkDerivative(t *testing.T, input, expected string) {
	actual := parse(t, input).Derivative()
	//
	assert.Equal(t, expected, actual.String())
}

func checkBinary(t *testing.T, lhs, rhs, expected string, fn func(Polynomial[Rat], Polynomial[Rat]) Polynomial[Rat]) {
	actual := fn(parse(t, lhs), parse(t, rhs))
	//
	assert.Equal(t, expected, actual.String())
	assert.True(t, actual.Equal(parse(t, expected)), "%s != %s", actual.String(), expected)
}
