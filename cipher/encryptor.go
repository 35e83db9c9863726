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

package cipher

import (
	"log"
	"math/big"

	"github.com/vaultree/govenum/encoding"
	"github.com/vaultree/govenum/glwe"
	"github.com/vaultree/govenum/key"
)

// Encryptor encrypts messages under a PublicKey and decrypts ciphertexts
// under the paired SecretKey.
//
// Encrypt adds the message's packed encoding directly into the public
// key's own body, rather than drawing fresh masking randomness and
// blinding the public key sample with it: blinding a sample whose body
// already carries a CRT-packed noise term multiplies that noise term by
// the blinding factor, which grows it past the margin decryption can
// recenter away. Reusing the public key sample's own masking keeps every
// ciphertext issued under one key pair distinguishable only by the
// difference in their packed messages - deterministic and not
// semantically secure, consistent with this scheme's prototype status.
type Encryptor struct {
	dist    *glwe.Distribution
	encoder *encoding.PolynomialEncoder
	pk      *key.PublicKey

	// Logger, when non-nil, receives diagnostic traces of Encrypt/Decrypt
	// calls. Never consulted for correctness; a nil Logger (the default)
	// disables tracing entirely.
	Logger *log.Logger
}

// NewEncryptor builds an Encryptor over dist, encrypting under pk.
func NewEncryptor(dist *glwe.Distribution, pk *key.PublicKey) *Encryptor {
	encoder := encoding.NewPolynomialEncoder(dist.Params.N, dist.Params.CiphertextModulus, dist.Params.PlaintextModulus)
	return &Encryptor{dist: dist, encoder: encoder, pk: pk}
}

func (e *Encryptor) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// Encrypt packs message into a fresh Cipher under the Encryptor's public
// key.
func (e *Encryptor) Encrypt(message []*big.Int) (*Cipher, error) {
	msgPoly, err := e.encoder.Encode(message)
	if err != nil {
		return nil, err
	}

	packed := e.dist.Packer.EncodePureMessage(msgPoly)
	body := e.dist.CipherRing.Add(e.pk.Sample.Body, packed)
	mask := e.pk.Sample.Mask.Copy()

	c := &Cipher{Sample: &glwe.GlweSample{Mask: mask, Body: body}}
	e.logf("cipher: encrypted %d coefficients into %s", len(message), c.Sample)
	return c, nil
}

// Decrypt recovers the plaintext coefficients c was built from, under
// sk.
func (e *Encryptor) Decrypt(sk *key.SecretKey, c *Cipher) []*big.Int {
	cr := e.dist.CipherRing
	combined := cr.Add(c.Sample.Body, cr.Mul(c.Sample.Mask, sk.S))
	decoded := e.encoder.Decode(combined)
	e.logf("cipher: decrypted %s", c.Sample)
	return decoded
}
