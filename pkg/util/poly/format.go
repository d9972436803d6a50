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
	"bytes"
	"io"
	"strconv"

	"github.com/consensys/go-sparsepoly/pkg/util/field"
)

// String constructs the canonical representation of this polynomial, such as
// "x^8+2*x^4+2".  Terms are written in order of descending degree.
func (p Polynomial[F]) String() string {
	var buf bytes.Buffer
	//
	p.format(&buf)
	//
	return buf.String()
}

// WriteTo writes the canonical representation of this polynomial to a given
// writer.
func (p Polynomial[F]) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	//
	p.format(&buf)
	//
	return buf.WriteTo(w)
}

func (p Polynomial[F]) format(buf *bytes.Buffer) {
	var minusOne = field.MinusOne[F]()
	//
	if len(p.terms) == 0 {
		buf.WriteString(field.Zero[F]().String())
		//
		return
	}
	//
	for i := len(p.terms) - 1; i >= 0; i-- {
		var (
			ith   = p.terms[i]
			coeff = ith.coefficient
		)
		//
		if coeff.IsZero() {
			continue
		} else if i != len(p.terms)-1 && field.Sign(coeff) > 0 {
			buf.WriteString("+")
		}
		// Various cases to improve readability
		switch {
		case ith.degree == 0:
			buf.WriteString(coeff.String())
			continue
		case coeff.IsOne():
			// implicit
		case coeff.Cmp(minusOne) == 0:
			buf.WriteString("-")
		default:
			buf.WriteString(coeff.String())
			buf.WriteString("*")
		}
		//
		buf.WriteString("x")
		//
		if ith.degree > 1 {
			buf.WriteString("^")
			buf.WriteString(strconv.FormatUint(uint64(ith.degree), 10))
		}
	}
}
