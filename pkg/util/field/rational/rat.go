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
package rational

import (
	"fmt"
	"math/big"
)

// Rat is an immutable arbitrary precision rational number, which conforms to
// the field.Element interface.  The zero value (i.e. Rat{}) represents 0.
// Every operation allocates a fresh big.Rat, hence values can be copied freely.
type Rat struct {
	val *big.Rat
}

var zero big.Rat

// New constructs a rational from a numerator and (nonzero) denominator.
func New(num, denom int64) Rat {
	if denom == 0 {
		panic("rational: zero denominator")
	}
	//
	return Rat{new(big.Rat).SetFrac64(num, denom)}
}

// Int64 constructs a rational representing a given integer.
func Int64(val int64) Rat {
	return Rat{new(big.Rat).SetInt64(val)}
}

// Parse a rational from its textual form, accepting "a", "a/b" and decimal
// notations such as "1.5".
func Parse(text string) (Rat, error) {
	val, ok := new(big.Rat).SetString(text)
	if !ok {
		return Rat{}, fmt.Errorf("invalid rational \"%s\"", text)
	}
	//
	return Rat{val}, nil
}

func (x Rat) rat() *big.Rat {
	if x.val == nil {
		return &zero
	}
	//
	return x.val
}

// Add x + y
func (x Rat) Add(y Rat) Rat {
	return Rat{new(big.Rat).Add(x.rat(), y.rat())}
}

// Sub x - y
func (x Rat) Sub(y Rat) Rat {
	return Rat{new(big.Rat).Sub(x.rat(), y.rat())}
}

// Mul x * y
func (x Rat) Mul(y Rat) Rat {
	return Rat{new(big.Rat).Mul(x.rat(), y.rat())}
}

// Div x / y.  This panics if y is zero, as big.Rat does.
func (x Rat) Div(y Rat) Rat {
	if y.IsZero() {
		panic("rational: division by zero")
	}
	//
	return Rat{new(big.Rat).Quo(x.rat(), y.rat())}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Rat) Cmp(y Rat) int {
	return x.rat().Cmp(y.rat())
}

// Sign returns -1, 0 or 1 depending on the sign of x.
func (x Rat) Sign() int {
	return x.rat().Sign()
}

// IsZero implementation for the field.Element interface
func (x Rat) IsZero() bool {
	return x.rat().Sign() == 0
}

// IsOne implementation for the field.Element interface
func (x Rat) IsOne() bool {
	return x.rat().IsInt() && x.rat().Num().IsInt64() && x.rat().Num().Int64() == 1
}

// SetUint64 implementation for the field.Element interface
func (x Rat) SetUint64(val uint64) Rat {
	return Rat{new(big.Rat).SetUint64(val)}
}

// String returns integers without a denominator, and other values as "a/b".
func (x Rat) String() string {
	return x.rat().RatString()
}
