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

package key

import (
	"math/big"

	"github.com/vaultree/govenum/glwe"
	"github.com/vaultree/govenum/ring"
)

// SecretKey holds the secret polynomial s a GlweSample's mask is
// multiplied against at encryption and decryption time.
type SecretKey struct {
	S ring.Poly
}

// NewSecretKey draws a secret key under dist. modulus narrows the
// sampling range below the ciphertext modulus; a nil modulus samples s
// uniformly over the full ciphertext modulus, matching what this
// scheme's original default does. The secret's magnitude does not
// itself affect decryption headroom (the mask*secret cross term cancels
// exactly regardless of size) - the margin that matters is between the
// ciphertext modulus and the plaintext/noise moduli's product, see
// EncryptionParameters.CiphertextModulus.
func NewSecretKey(dist *glwe.Distribution, modulus *big.Int) (*SecretKey, error) {
	s, err := dist.SamplePolynomial(modulus)
	if err != nil {
		return nil, err
	}
	return &SecretKey{S: s}, nil
}
