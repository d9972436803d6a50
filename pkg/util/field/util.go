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
	"github.com/consensys/go-sparsepoly/pkg/util/math"
)

// Pow takes a given value to the power n.
func Pow[F Ring[F]](val F, n uint64) F {
	return math.Pow(val, n)
}

// Equal checks whether two elements are equal, using their total order.
func Equal[F Ring[F]](lhs, rhs F) bool {
	return lhs.Cmp(rhs) == 0
}

// Sum adds up zero or more elements.
func Sum[F Ring[F]](vals ...F) F {
	var acc F
	//
	for _, v := range vals {
		acc = acc.Add(v)
	}
	//
	return acc
}

// Product multiplies together zero or more elements, giving one when there are
// none.
func Product[F Ring[F]](vals ...F) F {
	acc := One[F]()
	//
	for _, v := range vals {
		acc = acc.Mul(v)
	}
	//
	return acc
}
