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

	"github.com/pkg/errors"

	"github.com/vaultree/govenum/internal"
)

// Basis is a set of pairwise-coprime moduli. Max caches their product,
// the size of the integer range the basis can represent uniquely.
type Basis struct {
	Moduli []*big.Int
	Max    *big.Int
}

// NewBasis validates that moduli are pairwise coprime and returns the
// Basis built from them.
func NewBasis(moduli []*big.Int) (*Basis, error) {
	for i := 0; i < len(moduli); i++ {
		for j := i + 1; j < len(moduli); j++ {
			if new(big.Int).GCD(nil, nil, moduli[i], moduli[j]).Cmp(big.NewInt(1)) != 0 {
				return nil, errors.Wrapf(internal.ErrNonCoprimeModuli, "gcd(%s, %s) != 1", moduli[i], moduli[j])
			}
		}
	}

	max := big.NewInt(1)
	for _, m := range moduli {
		max.Mul(max, m)
	}

	return &Basis{Moduli: moduli, Max: max}, nil
}

// ToRns reduces value into its vector of residues mod each modulus in
// the basis.
func (b *Basis) ToRns(value *big.Int) []*big.Int {
	residues := make([]*big.Int, len(b.Moduli))
	for i, m := range b.Moduli {
		residues[i] = new(big.Int).Mod(value, m)
	}
	return residues
}

// Len returns the number of moduli in the basis.
func (b *Basis) Len() int {
	return len(b.Moduli)
}

// String renders the basis moduli for diagnostic logging.
func (b *Basis) String() string {
	parts := make([]string, len(b.Moduli))
	for i, m := range b.Moduli {
		parts[i] = m.String()
	}
	return fmt.Sprintf("basis(%s)", strings.Join(parts, ", "))
}
