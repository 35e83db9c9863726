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
)

// PublicKey is a single GlweSample encrypting zero under the paired
// secret key. Encrypting a message adds its packed encoding directly
// into the sample's body (see cipher.Encryptor); nothing here depends
// on the secret key, so a PublicKey can be handed to anyone who should
// be able to encrypt but not decrypt.
type PublicKey struct {
	Sample *glwe.GlweSample
}

// NewPublicKey derives the public key paired with sk under dist.
func NewPublicKey(dist *glwe.Distribution, sk *SecretKey) (*PublicKey, error) {
	sample, err := dist.SampleZeroSecret(sk.S)
	if err != nil {
		return nil, err
	}
	return &PublicKey{Sample: sample}, nil
}

// GenKeyPair draws a secret key (see NewSecretKey for the modulus
// parameter) and derives its paired public key.
func GenKeyPair(dist *glwe.Distribution, modulus *big.Int) (*SecretKey, *PublicKey, error) {
	sk, err := NewSecretKey(dist, modulus)
	if err != nil {
		return nil, nil, err
	}
	pk, err := NewPublicKey(dist, sk)
	if err != nil {
		return nil, nil, err
	}
	return sk, pk, nil
}
