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
package iter

// Enumerator abstracts the process of iterating over a sequence of elements.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// Generate returns an enumerator which produces n items, where the ith item is
// obtained from a given generator function.  Items are produced on demand.
func Generate[T any](n uint, fn func(uint) T) Enumerator[T] {
	return &generator[T]{0, n, fn}
}

type generator[T any] struct {
	index uint
	count uint
	fn    func(uint) T
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *generator[T]) HasNext() bool {
	return p.index < p.count
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *generator[T]) Next() T {
	next := p.fn(p.index)
	p.index++
	//
	return next
}
