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
	"testing"

	"github.com/consensys/go-sparsepoly/pkg/util/assert"
)

func Test_PolyDiv_01(t *testing.T) {
	checkDivMod(t, "x^2-1", "x-1", "x+1", "0")
}

func Test_PolyDiv_02(t *testing.T) {
	checkDivMod(t, "x^2-1.5*x-1", "x-2", "x+1/2", "0")
}

func Test_PolyDiv_03(t *testing.T) {
	checkDivMod(t, "x^2-1.5*x-1", "x+1", "x-5/2", "3/2")
}

func Test_PolyDiv_04(t *testing.T) {
	checkDivMod(t, "x^3+1", "2*x^2", "1/2*x", "1")
}

func Test_PolyDiv_05(t *testing.T) {
	// Divisor of higher degree than dividend
	checkDivMod(t, "x+1", "x^2", "0", "x+1")
}

func Test_PolyDiv_06(t *testing.T) {
	checkDivMod(t, "0", "x^2+1", "0", "0")
}

func Test_PolyDiv_07(t *testing.T) {
	checkDivMod(t, "3*x^2+2", "2", "3/2*x^2+1", "0")
}

func Test_PolyDiv_08(t *testing.T) {
	checkDivMod(t, "x^10000-1", "x-1", "", "0")
}

func Test_PolyDiv_09(t *testing.T) {
	checkDivMod(t, "x^10+x^5+1", "x^3+x", "x^7-x^5+x^3+x^2-x-1", "x^2+x+1")
}

func Test_PolyDiv_10(t *testing.T) {
	var zero Polynomial[Rat]
	//
	_, _, err := parse(t, "x+1").DivMod(zero)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
	//
	_, _, err = zero.DivMod(zero)
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func Test_PolyDiv_11(t *testing.T) {
	var zero Polynomial[Rat]
	//
	checkPanics(t, func() { parse(t, "x").Div(zero) })
	checkPanics(t, func() { parse(t, "x").Mod(zero) })
	checkPanics(t, func() {
		p := parse(t, "x")
		p.DivAssign(zero)
	})
}

func Test_PolyDiv_12(t *testing.T) {
	p := parse(t, "x^3+2*x+1")
	p.DivAssign(parse(t, "x"))
	assert.Equal(t, "x^2+2", p.String())
	//
	p = parse(t, "x^3+2*x+1")
	p.ModAssign(parse(t, "x"))
	assert.Equal(t, "1", p.String())
}

func Test_PolyNorm_01(t *testing.T) {
	checkNorm(t, "2*x^2+4*x-1", "x^2+2*x-1/2")
}

func Test_PolyNorm_02(t *testing.T) {
	checkNorm(t, "0", "0")
}

func Test_PolyNorm_03(t *testing.T) {
	checkNorm(t, "x^3-7", "x^3-7")
}

func Test_PolyNorm_04(t *testing.T) {
	checkNorm(t, "-3", "1")
}

func Test_PolyGcd_01(t *testing.T) {
	checkGcd(t, "x^2-1", "x^2+2*x+1", "x+1")
}

func Test_PolyGcd_02(t *testing.T) {
	checkGcd(t, "2*x^2+4", "0", "x^2+2")
}

func Test_PolyGcd_03(t *testing.T) {
	checkGcd(t, "0", "0", "0")
}

func Test_PolyGcd_04(t *testing.T) {
	checkGcd(t, "x^2+1", "x+1", "1")
}

func Test_PolyGcd_05(t *testing.T) {
	checkGcd(t, "x^1000-1", "x^10-1", "x^10-1")
}

func Test_PolyGcd_06(t *testing.T) {
	checkGcd(t, "-3*x^3+3*x", "6*x^2-12*x+6", "x-1")
}

func Test_PolyGcd_07(t *testing.T) {
	p := GCDOf(parse(t, "x^2-1"), parse(t, "x^2+2*x+1"), parse(t, "2*x+2"))
	assert.Equal(t, "x+1", p.String())
	//
	assert.True(t, GCDOf[Rat]().IsZero())
	assert.Equal(t, "x-2", GCDOf(parse(t, "3*x-6")).String())
}

// ============================================================================
// Helpers
// ============================================================================

// Check division of one polynomial by another.  An empty expected quotient
// indicates only the division identity should be checked.
func checkDivMod(t *testing.T, lhs, rhs, quotient, remainder string) {
	var (
		p, q          = parse(t, lhs), parse(t, rhs)
		quo, rem, err = p.DivMod(q)
	)
	//
	assert.NoError(t, err)
	//
	if quotient != "" {
		assert.Equal(t, quotient, quo.String())
	}
	//
	assert.Equal(t, remainder, rem.String())
	// Division identity
	assert.True(t, quo.Mul(q).Add(rem).Equal(p), "(%s)*(%s)+%s != %s", quo, q, rem, p)
	// Remainder smaller than divisor
	assert.True(t, rem.Degree() < q.Degree())
	// Consistency with Div / Mod
	assert.True(t, p.Div(q).Equal(quo))
	assert.True(t, p.Mod(q).Equal(rem))
}

func checkNorm(t *testing.T, input, expected string) {
	assert.Equal(t, expected, parse(t, input).Norm().String())
}

func checkGcd(t *testing.T, lhs, rhs, expected string) {
	p, q := parse(t, lhs), parse(t, rhs)
	//
	assert.Equal(t, expected, p.GCD(q).String())
	assert.Equal(t, expected, GCD(q, p).String())
	// Gcd divides both
	if g := p.GCD(q); !g.IsZero() {
		assert.True(t, p.Mod(g).IsZero())
		assert.True(t, q.Mod(g).IsZero())
	}
}

func checkPanics(t *testing.T, fn func()) {
	assert.Panics(t, fn, func(r any) bool {
		err, ok := r.(error)
		return ok && errors.Is(err, ErrDivisionByZero)
	})
}
