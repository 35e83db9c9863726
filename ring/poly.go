/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ring

import (
	"fmt"
	"math/big"
	"strings"
)

// Poly holds a polynomial's coefficients, least-significant degree
// first: Poly[i] is the coefficient of x^i.
type Poly []*big.Int

// NewPoly returns a fresh length-n Poly, copying coeffs and zero-padding
// on the right when coeffs is shorter than n. Entries beyond len(coeffs)
// (or nil entries within it) become 0.
func NewPoly(n int, coeffs []*big.Int) Poly {
	p := make(Poly, n)
	for i := 0; i < n; i++ {
		if i < len(coeffs) && coeffs[i] != nil {
			p[i] = new(big.Int).Set(coeffs[i])
		} else {
			p[i] = big.NewInt(0)
		}
	}
	return p
}

// Zero returns the all-zero polynomial of length n.
func Zero(n int) Poly {
	return NewPoly(n, nil)
}

// Copy returns a deep copy of p.
func (p Poly) Copy() Poly {
	return NewPoly(len(p), p)
}

// Equal reports whether p and q have the same length and coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmp(q[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders p's coefficients highest-degree first, matching how the
// scheme this was adapted from prints polynomials.
func (p Poly) String() string {
	terms := make([]string, len(p))
	for i := range p {
		terms[len(p)-1-i] = p[i].String()
	}
	return fmt.Sprintf("[%s]", strings.Join(terms, ", "))
}
