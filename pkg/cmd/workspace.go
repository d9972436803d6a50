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
package cmd

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/consensys/go-sparsepoly/pkg/util/field"
	"github.com/consensys/go-sparsepoly/pkg/util/field/bls12_377"
	"github.com/consensys/go-sparsepoly/pkg/util/field/gf8209"
	"github.com/consensys/go-sparsepoly/pkg/util/field/koalabear"
	"github.com/consensys/go-sparsepoly/pkg/util/field/rational"
	"github.com/consensys/go-sparsepoly/pkg/util/poly"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// FIELD_RATIONAL selects arbitrary precision rational coefficients.
const FIELD_RATIONAL = "rational"

// FIELD_BLS12_377 selects coefficients from the scalar field of BLS12-377.
const FIELD_BLS12_377 = "bls12-377"

// FIELD_KOALABEAR selects coefficients from the KoalaBear prime field.
const FIELD_KOALABEAR = "koalabear"

// FIELD_GF8209 selects coefficients from the prime field of order 8209.
const FIELD_GF8209 = "gf8209"

// FIELDS lists the names of all supported coefficient fields.
var FIELDS = []string{FIELD_RATIONAL, FIELD_BLS12_377, FIELD_KOALABEAR, FIELD_GF8209}

// Workspace performs polynomial operations over some (fixed) choice of
// coefficients.  Polynomials are passed in and out in their textual form, so
// that commands need not know which coefficients are being used.
type Workspace interface {
	// Add a sequence of one or more polynomials together.
	Add(polys ...string) (string, error)
	// Sub subtracts zero or more polynomials from a given polynomial.
	Sub(polys ...string) (string, error)
	// Mul multiplies a sequence of one or more polynomials together.
	Mul(polys ...string) (string, error)
	// DivMod divides one polynomial by another, giving quotient and remainder.
	DivMod(p, q string) (string, string, error)
	// Gcd determines the monic gcd of one or more polynomials.
	Gcd(polys ...string) (string, error)
	// Eval evaluates a polynomial at zero or more points.
	Eval(ctx context.Context, p string, points ...string) ([]string, error)
	// Compose substitutes one polynomial for the variable of another.
	Compose(p, s string) (string, error)
	// Derive determines the formal derivative of a polynomial.
	Derive(p string) (string, error)
	// Degree determines the degree of a polynomial (-1 for zero).
	Degree(p string) (int, error)
	// Terms returns the nonzero terms of a polynomial, in ascending order.
	Terms(p string) ([]TermInfo, error)
}

// TermInfo describes a single term of some polynomial.
type TermInfo struct {
	Degree      uint
	Coefficient string
	// Sign of the coefficient
	Sign int
}

// NewWorkspace constructs a workspace for a given choice of coefficients.
func NewWorkspace(name string) (Workspace, error) {
	switch name {
	case FIELD_RATIONAL:
		return newWorkspace(rational.Parse), nil
	case FIELD_BLS12_377:
		return newWorkspace(bls12_377.Parse), nil
	case FIELD_KOALABEAR:
		return newWorkspace(koalabear.Parse), nil
	case FIELD_GF8209:
		return newWorkspace(gf8209.Parse), nil
	default:
		return nil, fmt.Errorf("unknown field \"%s\" (expected one of %s)", name, strings.Join(FIELDS, ", "))
	}
}

type workspace[F field.Element[F]] struct {
	parser      *poly.Parser[F]
	constructor func(string) (F, error)
}

func newWorkspace[F field.Element[F]](constructor func(string) (F, error)) *workspace[F] {
	return &workspace[F]{poly.NewParser(constructor), constructor}
}

// Add implementation for Workspace interface.
func (p *workspace[F]) Add(polys ...string) (string, error) {
	return p.fold(polys, func(polys []poly.Polynomial[F]) poly.Polynomial[F] {
		return field.Sum(polys...)
	})
}

// Sub implementation for Workspace interface.
func (p *workspace[F]) Sub(polys ...string) (string, error) {
	return p.fold(polys, func(polys []poly.Polynomial[F]) poly.Polynomial[F] {
		return polys[0].Sub(field.Sum(polys[1:]...))
	})
}

// Mul implementation for Workspace interface.
func (p *workspace[F]) Mul(polys ...string) (string, error) {
	return p.fold(polys, func(polys []poly.Polynomial[F]) poly.Polynomial[F] {
		return field.Product(polys...)
	})
}

// DivMod implementation for Workspace interface.
func (p *workspace[F]) DivMod(lhs, rhs string) (string, string, error) {
	polys, err := p.parseAll(lhs, rhs)
	if err != nil {
		return "", "", err
	}
	//
	quo, rem, err := polys[0].DivMod(polys[1])
	if err != nil {
		return "", "", err
	}
	//
	log.Debugf("divided polynomial of degree %d by degree %d", polys[0].Degree(), polys[1].Degree())
	//
	return quo.String(), rem.String(), nil
}

// Gcd implementation for Workspace interface.
func (p *workspace[F]) Gcd(args ...string) (string, error) {
	polys, err := p.parseAll(args...)
	if err != nil {
		return "", err
	}
	//
	return poly.GCDOf(polys...).String(), nil
}

// Eval implementation for Workspace interface.  Points are evaluated
// concurrently, and the first failure cancels any outstanding evaluations.
func (p *workspace[F]) Eval(ctx context.Context, arg string, points ...string) ([]string, error) {
	var results = make([]string, len(points))
	//
	fn, err := p.parse(0, arg)
	if err != nil {
		return nil, err
	}
	//
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	//
	for i, point := range points {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			//
			x, err := p.constructor(point)
			if err != nil {
				return fmt.Errorf("point %d: %w", i+1, err)
			}
			//
			results[i] = fn.Eval(x).String()
			//
			return nil
		})
	}
	//
	if err := g.Wait(); err != nil {
		return nil, err
	}
	//
	return results, nil
}

// Compose implementation for Workspace interface.
func (p *workspace[F]) Compose(lhs, rhs string) (res string, err error) {
	defer recoverOverflow(&err)
	//
	polys, err := p.parseAll(lhs, rhs)
	if err != nil {
		return "", err
	}
	//
	return polys[0].Compose(polys[1]).String(), nil
}

// Derive implementation for Workspace interface.
func (p *workspace[F]) Derive(arg string) (string, error) {
	fn, err := p.parse(0, arg)
	if err != nil {
		return "", err
	}
	//
	return fn.Derivative().String(), nil
}

// Degree implementation for Workspace interface.
func (p *workspace[F]) Degree(arg string) (int, error) {
	fn, err := p.parse(0, arg)
	if err != nil {
		return 0, err
	}
	//
	return fn.Degree(), nil
}

// Terms implementation for Workspace interface.
func (p *workspace[F]) Terms(arg string) ([]TermInfo, error) {
	fn, err := p.parse(0, arg)
	if err != nil {
		return nil, err
	}
	//
	var (
		terms = make([]TermInfo, 0, fn.Len())
		iter  = fn.Terms()
	)
	//
	for iter.HasNext() {
		t := iter.Next()
		c := t.Coefficient()
		terms = append(terms, TermInfo{t.Degree(), c.String(), field.Sign(c)})
	}
	//
	return terms, nil
}

// Combine one or more polynomials using a given operation.
func (p *workspace[F]) fold(args []string, op func([]poly.Polynomial[F]) poly.Polynomial[F]) (res string, err error) {
	defer recoverOverflow(&err)
	//
	polys, err := p.parseAll(args...)
	if err != nil {
		return "", err
	} else if len(polys) == 0 {
		return "", errors.New("expected at least one polynomial")
	}
	//
	r := op(polys)
	//
	log.Debugf("combined %d polynomials giving %d terms", len(polys), r.Len())
	//
	return r.String(), nil
}

// Convert a panic arising from a degree overflow into an error.  Any other
// panic is propagated.
func recoverOverflow(err *error) {
	if r := recover(); r != nil {
		if e, ok := r.(error); ok && errors.Is(e, poly.ErrDegreeOverflow) {
			*err = e
			return
		}
		//
		panic(r)
	}
}

func (p *workspace[F]) parseAll(args ...string) ([]poly.Polynomial[F], error) {
	var polys = make([]poly.Polynomial[F], len(args))
	//
	for i, arg := range args {
		fn, err := p.parse(i, arg)
		if err != nil {
			return nil, err
		}
		//
		polys[i] = fn
	}
	//
	return polys, nil
}

func (p *workspace[F]) parse(index int, arg string) (poly.Polynomial[F], error) {
	fn, err := p.parser.Parse(arg)
	//
	if err != nil {
		return fn, &ArgumentError{index, err}
	}
	//
	return fn, nil
}

// ArgumentError identifies which argument of a command could not be parsed.
type ArgumentError struct {
	// Index of the offending argument (counting from zero)
	Index int
	// Underlying error
	Err error
}

func (e *ArgumentError) Error() string {
	return "argument " + strconv.Itoa(e.Index+1) + ": " + e.Err.Error()
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
