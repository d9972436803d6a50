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
package field

import (
	"fmt"
)

// Ring captures the operations of a commutative ring with a total order over
// its elements.  The zero value of any implementing type must represent the
// additive identity.
type Ring[Operand any] interface {
	fmt.Stringer
	// Add x+y
	Add(y Operand) Operand
	// Sub x-y
	Sub(y Operand) Operand
	// Mul x*y
	Mul(y Operand) Operand
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y Operand) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// SetUint64 returns the element representing a given constant.  The
	// receiver is not modified.
	SetUint64(val uint64) Operand
}

// An Element of a field, or at least of a ring in which the required divisions
// are exact.
type Element[Operand any] interface {
	Ring[Operand]
	// Div x/y.  Division by zero is a failure of the implementing type.
	Div(y Operand) Operand
}

// Signed can be implemented by elements whose notion of sign is not given by
// comparison against zero (e.g. elements of a prime field, where every
// nonzero element compares above zero).
type Signed interface {
	// Sign returns -1, 0 or +1.
	Sign() int
}

// Zero constructs a field element representing 0
func Zero[F Ring[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Ring[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// MinusOne constructs a field element representing -1
func MinusOne[F Ring[F]]() F {
	var element F
	//
	return element.Sub(element.SetUint64(1))
}

// Uint64 construct a field element from a given uint64
func Uint64[F Ring[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// Neg returns the additive inverse of a given element.
func Neg[F Ring[F]](val F) F {
	var element F
	//
	return element.Sub(val)
}

// Sign determines whether a given element is negative, zero or positive.
func Sign[F Ring[F]](val F) int {
	if s, ok := any(val).(Signed); ok {
		return s.Sign()
	}
	//
	var zero F
	//
	return val.Cmp(zero)
}
