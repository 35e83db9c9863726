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

package encoding

import (
	"math/big"

	"github.com/vaultree/govenum/internal"
	"github.com/vaultree/govenum/ring"
)

// PolynomialEncoder maps a plaintext's coefficients directly onto a ring
// polynomial, one coefficient per slot.
//
// Decode recenters every coefficient around CiphertextModulus/2 before
// reducing it mod PlaintextModulus. A homomorphic add or sub can carry a
// coefficient past zero, which comes back from the ciphertext ring as a
// value near CiphertextModulus rather than near zero; recentering
// undoes that wraparound before the plaintext modulus is applied, the
// same way RingLWE's decryption step in the scheme this was adapted
// from re-centers around half the ciphertext modulus.
type PolynomialEncoder struct {
	N                 int
	CiphertextModulus *big.Int
	PlaintextModulus  *big.Int
}

// NewPolynomialEncoder returns a PolynomialEncoder for the given ring
// dimension and moduli.
func NewPolynomialEncoder(n int, ciphertextModulus, plaintextModulus *big.Int) *PolynomialEncoder {
	return &PolynomialEncoder{N: n, CiphertextModulus: ciphertextModulus, PlaintextModulus: plaintextModulus}
}

// Encode reduces coeffs mod PlaintextModulus and zero-pads to N. It
// returns ErrMessageTooLong if coeffs carries more than N coefficients.
func (e *PolynomialEncoder) Encode(coeffs []*big.Int) (ring.Poly, error) {
	if len(coeffs) > e.N {
		return nil, internal.ErrMessageTooLong
	}
	reduced := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		reduced[i] = new(big.Int).Mod(c, e.PlaintextModulus)
	}
	return ring.NewPoly(e.N, reduced), nil
}

// Decode recenters poly's coefficients around CiphertextModulus/2 and
// reduces them mod PlaintextModulus.
func (e *PolynomialEncoder) Decode(poly ring.Poly) []*big.Int {
	half := new(big.Int).Rsh(e.CiphertextModulus, 1)
	out := make([]*big.Int, len(poly))
	for i, c := range poly {
		signed := new(big.Int).Set(c)
		if signed.Cmp(half) > 0 {
			signed.Sub(signed, e.CiphertextModulus)
		}
		out[i] = signed.Mod(signed, e.PlaintextModulus)
	}
	return out
}
