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

package glwe

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vaultree/govenum/internal"
)

// EncryptionParameters fixes the ring dimension and the three moduli the
// scheme operates over: a plaintext modulus, a noise modulus, and the
// ciphertext modulus the two are packed into.
//
// PlaintextModulus*NoiseModulus must be strictly smaller than
// CiphertextModulus (checked by NewEncryptionParameters), but that bound
// alone only keeps the CRT packing well-defined. Correct decryption also
// needs CiphertextModulus to comfortably dwarf PlaintextModulus *
// NoiseModulus: the noise accumulated by a homomorphic add or sub must
// never wrap around CiphertextModulus, or decoding recovers the wrong
// residue. Callers building production-sized parameters should keep
// several orders of magnitude of headroom between the two.
type EncryptionParameters struct {
	N                 int
	CiphertextModulus *big.Int
	PlaintextModulus  *big.Int
	NoiseModulus      *big.Int
}

// NewEncryptionParameters validates and returns a parameter set.
func NewEncryptionParameters(n int, ciphertextModulus, plaintextModulus, noiseModulus *big.Int) (*EncryptionParameters, error) {
	p := new(big.Int).Mul(plaintextModulus, noiseModulus)
	if p.Cmp(ciphertextModulus) >= 0 {
		return nil, errors.Wrapf(internal.ErrInvalidParameters, "plaintext_modulus(%s) * noise_modulus(%s) >= ciphertext_modulus(%s)", plaintextModulus, noiseModulus, ciphertextModulus)
	}
	return &EncryptionParameters{
		N:                 n,
		CiphertextModulus: ciphertextModulus,
		PlaintextModulus:  plaintextModulus,
		NoiseModulus:      noiseModulus,
	}, nil
}
