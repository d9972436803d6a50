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
package bls12_377

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform
// to the field.Element interface.
type Element struct {
	fr.Element
}

// New constructs an element from a (possibly negative) integer.
func New(val int64) Element {
	var elem fr.Element
	//
	if val < 0 {
		elem.SetUint64(uint64(-val))
		elem.Neg(&elem)
	} else {
		elem.SetUint64(uint64(val))
	}
	//
	return Element{elem}
}

// Parse an element from its decimal form.  Fractions "a/b" are accepted and
// are interpreted as a * b⁻¹.
func Parse(text string) (Element, error) {
	var num, denom fr.Element
	//
	numText, denomText, isFrac := strings.Cut(text, "/")
	//
	if _, err := num.SetString(numText); err != nil {
		return Element{}, fmt.Errorf("invalid field element \"%s\": %w", text, err)
	} else if !isFrac {
		return Element{num}, nil
	} else if _, err := denom.SetString(denomText); err != nil {
		return Element{}, fmt.Errorf("invalid field element \"%s\": %w", text, err)
	} else if denom.IsZero() {
		return Element{}, errors.New("zero denominator")
	}
	//
	num.Div(&num, &denom)
	//
	return Element{num}, nil
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Div x / y, which panics when y is zero.
func (x Element) Div(y Element) Element {
	if y.Element.IsZero() {
		panic("bls12_377: division by zero")
	}
	//
	return x.Mul(y.Inverse())
}

// Inverse x⁻¹, or 0 if x = 0.
func (x Element) Inverse() Element {
	var elem fr.Element
	//
	elem.Inverse(&x.Element)
	//
	return Element{elem}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Sign treats the upper half of the field as negative.  That way -1 is
// rendered as such, rather than as the modulus minus one.
func (x Element) Sign() int {
	switch {
	case x.Element.IsZero():
		return 0
	case x.Element.LexicographicallyLargest():
		return -1
	default:
		return 1
	}
}

// IsOne implementation for the Element interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Element interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// SetUint64 implementation for the Element interface
func (x Element) SetUint64(val uint64) Element {
	var elem fr.Element
	//
	elem.SetUint64(val)
	//
	return Element{elem}
}

func (x Element) String() string {
	if x.Sign() < 0 {
		var neg fr.Element
		//
		neg.Neg(&x.Element)
		//
		return "-" + neg.Text(10)
	}
	//
	return x.Element.Text(10)
}
