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
)

func Test_PolyEval_01(t *testing.T) {
	checkEval(t, "x^4+1", "10", "10001")
}

func Test_PolyEval_02(t *testing.T) {
	checkEval(t, "0", "123", "0")
}

func Test_PolyEval_03(t *testing.T) {
	checkEval(t, "x^3+5", "0", "5")
}

func Test_PolyEval_04(t *testing.T) {
	checkEval(t, "1/2*x^2", "2/3", "2/9")
}

func Test_PolyEval_05(t *testing.T) {
	checkEval(t, "x^1000000+x^999999", "-1", "0")
}

func Test_PolyEval_06(t *testing.T) {
	checkEval(t, "x^1000001", "-1", "-1")
}

func Test_PolyEval_07(t *testing.T) {
	checkEval(t, "3*x^2-2*x+1", "2", "9")
}

func Test_PolyEval_08(t *testing.T) {
	checkEval(t, "x^64", "2", "18446744073709551616")
}

func Test_PolyCompose_01(t *testing.T) {
	checkCompose(t, "x^2+1", "x^4+1", "x^8+2*x^4+2")
}

func Test_PolyCompose_02(t *testing.T) {
	checkCompose(t, "x^3+x+1", "x", "x^3+x+1")
}

func Test_PolyCompose_03(t *testing.T) {
	checkCompose(t, "x^3+x+1", "2", "11")
}

func Test_PolyCompose_04(t *testing.T) {
	checkCompose(t, "x^3+x+7", "0", "7")
}

func Test_PolyCompose_05(t *testing.T) {
	checkCompose(t, "x^2", "x+1", "x^2+2*x+1")
}

func Test_PolyCompose_06(t *testing.T) {
	checkCompose(t, "0", "x^2+1", "0")
}

func Test_PolyCompose_07(t *testing.T) {
	checkCompose(t, "x^1000+1", "x^2", "x^2000+1")
}

func Test_PolyCompose_08(t *testing.T) {
	p := FromTerms(NewTerm(MaxDegree/2+1, rational.Int64(1)))
	//
	assert.True(t, p.Compose(parse(t, "x")).Equal(p))
	checkOverflow(t, func() { p.Compose(parse(t, "x^2")) })
}

func Test_PolyEvaluate_01(t *testing.T) {
	// Lift integer coefficients into constant polynomials over polynomials.
	var (
		p    = parse(t, "x^2+1")
		x    = Constant(parse(t, "x+1"))
		lift = func(c Rat) Polynomial[Polynomial[Rat]] { return Constant(Constant(c)) }
		res  = Evaluate(p, x, lift)
	)
	//
	assert.Equal(t, 0, res.Degree())
	assert.Equal(t, "x^2+2*x+2", res.Lead().String())
}

func Test_PolyEvaluate_02(t *testing.T) {
	// Number of multiplications is logarithmic in the gap between degrees.
	var (
		p     = parse(t, "x^1024+x")
		count = 0
		x     = counter{rational.Int64(1), &count}
	)
	//
	res := Evaluate(p, x, func(c Rat) counter { return counter{c, &count} })
	//
	assert.Equal(t, "2", res.val.String())
	assert.True(t, count < 30, "too many multiplications (%d)", count)
}

// ============================================================================
// Helpers
// ============================================================================

func checkEval(t *testing.T, input, point, expected string) {
	x, err := rational.Parse(point)
	//
	assert.NoError(t, err)
	assert.Equal(t, expected, parse(t, input).Eval(x).String())
}

func checkCompose(t *testing.T, outer, inner, expected string) {
	var (
		p   = parse(t, outer)
		s   = parse(t, inner)
		res = p.Compose(s)
	)
	//
	assert.Equal(t, expected, res.String())
	// Composition agrees with evaluation
	for _, v := range []int64{-2, 0, 3} {
		x := rational.Int64(v)
		assert.Equal(t, p.Eval(s.Eval(x)).String(), res.Eval(x).String())
	}
}

// Ring which counts the number of multiplications performed.
type counter struct {
	val   Rat
	count *int
}

func (x counter) String() string             { return x.val.String() }
func (x counter) Add(y counter) counter      { return counter{x.val.Add(y.val), x.count} }
func (x counter) Sub(y counter) counter      { return counter{x.val.Sub(y.val), x.count} }
func (x counter) Cmp(y counter) int          { return x.val.Cmp(y.val) }
func (x counter) IsZero() bool               { return x.val.IsZero() }
func (x counter) IsOne() bool                { return x.val.IsOne() }
func (x counter) SetUint64(v uint64) counter { return counter{x.val.SetUint64(v), x.count} }

func (x counter) Mul(y counter) counter {
	if x.count != nil {
		*x.count++
	} else if y.count != nil {
		*y.count++
	}
	//
	return counter{x.val.Mul(y.val), x.count}
}
