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
	"log"
	"math/big"

	"github.com/vaultree/govenum/crt"
	"github.com/vaultree/govenum/ring"
	"github.com/vaultree/govenum/rns"
	"github.com/vaultree/govenum/sample"
)

// SamplerFactory builds the Sampler used to draw values uniformly from
// [0, max). Swapping the factory (e.g. for a salsa20-backed
// sample.UniformDet keyed by a session seed) is how a caller gets
// deterministic, reproducible samples out of every draw this package
// makes, without this package needing to know about seeds itself.
type SamplerFactory func(max *big.Int) sample.Sampler

// Distribution is the sampling surface for one set of encryption
// parameters: the ring arithmetic operates over, the CRT packer that
// combines plaintext and noise coefficients, and the sampler factory
// every draw is built from.
type Distribution struct {
	Params     *EncryptionParameters
	CipherRing *ring.Ring
	Basis      *rns.Basis
	Packer     *crt.Packer
	NewSampler SamplerFactory

	// Logger, when non-nil, receives diagnostic traces of every draw
	// this Distribution makes. Never consulted for correctness; a nil
	// Logger (the default) disables tracing entirely.
	Logger *log.Logger
}

func (d *Distribution) logf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// NewDistribution builds the Distribution for params. A nil newSampler
// defaults to the process CSPRNG (sample.NewUniform).
func NewDistribution(params *EncryptionParameters, newSampler SamplerFactory) (*Distribution, error) {
	if newSampler == nil {
		newSampler = func(max *big.Int) sample.Sampler { return sample.NewUniform(max) }
	}

	cipherRing := ring.New(params.CiphertextModulus, params.N)
	basis, err := rns.NewBasis([]*big.Int{params.PlaintextModulus, params.NoiseModulus})
	if err != nil {
		return nil, err
	}
	packer, err := crt.NewPacker(basis, cipherRing)
	if err != nil {
		return nil, err
	}

	return &Distribution{
		Params:     params,
		CipherRing: cipherRing,
		Basis:      basis,
		Packer:     packer,
		NewSampler: newSampler,
	}, nil
}

// SamplePolynomial draws a length-N polynomial with coefficients
// uniform over [0, modulus). A nil modulus samples over the full
// ciphertext modulus.
func (d *Distribution) SamplePolynomial(modulus *big.Int) (ring.Poly, error) {
	if modulus == nil {
		modulus = d.Params.CiphertextModulus
	}
	return ring.UniformPoly(d.Params.N, d.NewSampler(modulus))
}

// SampleMask draws a fresh masking polynomial over the full ciphertext
// modulus.
func (d *Distribution) SampleMask() (ring.Poly, error) {
	return d.SamplePolynomial(nil)
}

// SampleNoise draws a noise polynomial uniformly from [0, NoiseModulus).
// A production scheme would draw from a narrow discrete Gaussian
// instead; this scheme, like the one it was adapted from, samples noise
// uniformly, and is not suitable for anything beyond experimentation.
func (d *Distribution) SampleNoise() (ring.Poly, error) {
	return d.SamplePolynomial(d.Params.NoiseModulus)
}

// SampleCRTNoise draws a fresh noise polynomial and packs it as the sole
// payload of a CRT-combined coefficient (zero in the message slot).
func (d *Distribution) SampleCRTNoise() (ring.Poly, error) {
	noise, err := d.SampleNoise()
	if err != nil {
		return nil, err
	}
	return d.Packer.EncodePureNoise(noise), nil
}

// SampleZeroSecret draws a fresh GlweSample encrypting zero under
// secret: body = mask*secret + crt_noise, mask field = -mask.
func (d *Distribution) SampleZeroSecret(secret ring.Poly) (*GlweSample, error) {
	mask, err := d.SampleMask()
	if err != nil {
		return nil, err
	}
	crtNoise, err := d.SampleCRTNoise()
	if err != nil {
		return nil, err
	}

	maskedSecret := d.CipherRing.Mul(mask, secret)
	body := d.CipherRing.Add(maskedSecret, crtNoise)
	sample := &GlweSample{Mask: d.CipherRing.Neg(mask), Body: body}
	d.logf("glwe: sampled zero-secret sample %s", sample)
	return sample, nil
}
