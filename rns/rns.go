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

package rns

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/vaultree/govenum/internal"
)

// Rns is an integer represented as a vector of residues over a Basis.
type Rns struct {
	Basis    *Basis
	Residues []*big.Int
}

// String renders the residue vector for diagnostic logging.
func (r *Rns) String() string {
	parts := make([]string, len(r.Residues))
	for i, v := range r.Residues {
		parts[i] = v.String()
	}
	return fmt.Sprintf("rns(%s)", strings.Join(parts, ", "))
}

// NewRns builds the Rns representation of value over basis.
func NewRns(basis *Basis, value *big.Int) *Rns {
	return &Rns{Basis: basis, Residues: basis.ToRns(value)}
}

func (r *Rns) coeffwiseOp(other *Rns, op func(a, b, m *big.Int) *big.Int) (*Rns, error) {
	if r.Basis != other.Basis && !sameModuli(r.Basis, other.Basis) {
		return nil, internal.ErrBasisMismatch
	}
	out := make([]*big.Int, len(r.Residues))
	for i, m := range r.Basis.Moduli {
		out[i] = op(r.Residues[i], other.Residues[i], m)
	}
	return &Rns{Basis: r.Basis, Residues: out}, nil
}

func sameModuli(a, b *Basis) bool {
	if len(a.Moduli) != len(b.Moduli) {
		return false
	}
	for i := range a.Moduli {
		if a.Moduli[i].Cmp(b.Moduli[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns r+other, residue-wise.
func (r *Rns) Add(other *Rns) (*Rns, error) {
	return r.coeffwiseOp(other, func(a, b, m *big.Int) *big.Int {
		return new(big.Int).Mod(new(big.Int).Add(a, b), m)
	})
}

// Sub returns r-other, residue-wise.
func (r *Rns) Sub(other *Rns) (*Rns, error) {
	return r.coeffwiseOp(other, func(a, b, m *big.Int) *big.Int {
		return new(big.Int).Mod(new(big.Int).Sub(a, b), m)
	})
}

// Mul returns r*other, residue-wise.
func (r *Rns) Mul(other *Rns) (*Rns, error) {
	return r.coeffwiseOp(other, func(a, b, m *big.Int) *big.Int {
		return new(big.Int).Mod(new(big.Int).Mul(a, b), m)
	})
}

// ToInt recomposes the represented integer via the Chinese Remainder
// Theorem: each residue is weighted by Mi = Max/mi and Mi's modular
// inverse mod mi, summed, and reduced mod Max.
func (r *Rns) ToInt() *big.Int {
	basis := r.Basis
	sum := big.NewInt(0)
	for i, mi := range basis.Moduli {
		Mi := new(big.Int).Div(basis.Max, mi)
		inv := new(big.Int).ModInverse(Mi, mi)
		term := new(big.Int).Mul(r.Residues[i], Mi)
		term.Mul(term, inv)
		sum.Add(sum, term)
	}
	return sum.Mod(sum, basis.Max)
}
