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

// RelinKey is the sequence of GlweSamples used to relinearize a rank-2
// ciphertext back down to a single (mask, body) pair: aux key i encrypts
// Base^i * s^2 under s.
type RelinKey struct {
	AuxKeys []*glwe.GlweSample
	Base    int64
}

// DigitCount returns the number of auxiliary keys, ceil(log_Base(q)).
func (rk *RelinKey) DigitCount() int {
	return len(rk.AuxKeys)
}

// digitCount returns the smallest d such that base^d >= modulus, i.e.
// ceil(log_base(modulus)). An exact power of base needs exactly that many
// digits, not one more.
func digitCount(modulus *big.Int, base int64) int {
	if base < 2 {
		base = 2
	}
	count := 0
	bound := big.NewInt(1)
	b := big.NewInt(base)
	for bound.Cmp(modulus) < 0 {
		bound.Mul(bound, b)
		count++
	}
	return count
}

// NewRelinKey derives a relinearization key for sk under dist, digit-
// decomposed in the given base (base < 2 is treated as 2).
func NewRelinKey(dist *glwe.Distribution, sk *SecretKey, base int64) (*RelinKey, error) {
	if base < 2 {
		base = 2
	}
	cr := dist.CipherRing
	d := digitCount(dist.Params.CiphertextModulus, base)

	s2 := cr.Mul(sk.S, sk.S)

	auxKeys := make([]*glwe.GlweSample, d)
	bPow := big.NewInt(1)
	bBig := big.NewInt(base)
	for i := 0; i < d; i++ {
		mask, err := dist.SampleMask()
		if err != nil {
			return nil, err
		}
		crtNoise, err := dist.SampleCRTNoise()
		if err != nil {
			return nil, err
		}

		maskedSecret := cr.Mul(mask, sk.S)
		noisySecret := cr.Add(maskedSecret, crtNoise)
		message := cr.MulScalar(s2, bPow)
		body := cr.Add(noisySecret, message)

		auxKeys[i] = &glwe.GlweSample{Mask: cr.Neg(mask), Body: body}
		bPow = new(big.Int).Mul(bPow, bBig)
	}

	return &RelinKey{AuxKeys: auxKeys, Base: base}, nil
}
