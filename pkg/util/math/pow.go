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
package math

// Monoid captures the (multiplicative) operations needed to raise a value to a
// power.  SetUint64 is used to construct the identity, and its receiver is
// otherwise ignored.
type Monoid[T any] interface {
	// Mul returns x * y.
	Mul(y T) T
	// SetUint64 returns the element representing the given constant.
	SetUint64(val uint64) T
}

// Pow raises a given base to a given power using binary exponentiation.  This
// requires O(log exp) multiplications, and works for any type which can be
// multiplied (e.g. field elements or entire polynomials).
func Pow[T Monoid[T]](base T, exp uint64) T {
	result := base.SetUint64(1)
	//
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base = base.Mul(base)
	}
	//
	return result
}
