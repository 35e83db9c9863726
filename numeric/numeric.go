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

package numeric

import (
	"math/big"

	"github.com/vaultree/govenum/internal"
	"github.com/vaultree/govenum/ring"
)

// NthDigit returns the n-th base-radix digit of number (digit 0 is the
// least significant). number and radix must be non-negative, radix must
// be at least 2, and n must be non-negative; any violation returns
// ErrDomain.
func NthDigit(number, radix *big.Int, n int) (*big.Int, error) {
	if number.Sign() < 0 || radix.Cmp(big.NewInt(2)) < 0 || n < 0 {
		return nil, internal.ErrDomain
	}

	shifted := new(big.Int).Set(number)
	pow := new(big.Int).Exp(radix, big.NewInt(int64(n)), nil)
	shifted.Div(shifted, pow)
	return shifted.Mod(shifted, radix), nil
}

// RadixDecomposePoly decomposes every coefficient of p into numComponents
// base-radix digits, returning numComponents polynomials such that
// summing component[i] * radix^i reconstructs p coefficient-wise.
func RadixDecomposePoly(p ring.Poly, radix *big.Int, numComponents int) ([]ring.Poly, error) {
	components := make([]ring.Poly, numComponents)
	for i := range components {
		components[i] = ring.Zero(len(p))
	}

	for coeffIdx, coeff := range p {
		for i := 0; i < numComponents; i++ {
			digit, err := NthDigit(coeff, radix, i)
			if err != nil {
				return nil, err
			}
			components[i][coeffIdx] = digit
		}
	}
	return components, nil
}
