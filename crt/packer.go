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

package crt

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/vaultree/govenum/internal"
	"github.com/vaultree/govenum/ring"
	"github.com/vaultree/govenum/rns"
)

// Packer combines a plaintext coefficient and a noise coefficient into
// one coefficient of the ciphertext ring, using basis (a two-modulus
// rns.Basis: [plaintext modulus p0, noise modulus p1]) as the packing.
type Packer struct {
	Basis      *rns.Basis
	CipherRing *ring.Ring
}

// NewPacker returns a Packer over basis, which must hold exactly two
// moduli, packing into cipherRing.
func NewPacker(basis *rns.Basis, cipherRing *ring.Ring) (*Packer, error) {
	if basis.Len() != 2 {
		return nil, errors.Wrapf(internal.ErrBasisArity, "got %d moduli", basis.Len())
	}
	return &Packer{Basis: basis, CipherRing: cipherRing}, nil
}

// encodeCoef CRT-reconstructs [message, noise] into one integer and
// recenters it to the balanced representative in (-Max/2, Max/2]. A
// packed value's magnitude is then bounded by Max/2 rather than Max,
// which is what lets Decode's recentering around CiphertextModulus/2
// undo wraparound correctly: the combined coefficient a ciphertext
// carries is a sum of up to two packed values (message and noise), and
// only a balanced representation keeps that sum's magnitude tracking
// the basis's Max instead of 2*Max.
func (p *Packer) encodeCoef(message, noise *big.Int) *big.Int {
	r := &rns.Rns{Basis: p.Basis, Residues: []*big.Int{
		new(big.Int).Mod(message, p.Basis.Moduli[0]),
		new(big.Int).Mod(noise, p.Basis.Moduli[1]),
	}}
	v := r.ToInt()
	half := new(big.Int).Rsh(p.Basis.Max, 1)
	if v.Cmp(half) > 0 {
		v.Sub(v, p.Basis.Max)
	}
	return v
}

// DecodeCoef splits a combined ciphertext coefficient back into its
// [message, noise] residue pair.
func (p *Packer) DecodeCoef(value *big.Int) []*big.Int {
	return p.Basis.ToRns(value)
}

// normalizedPair zero-pads message and noise to the same length, the
// ring dimension, so every coefficient has both a message and a noise
// component to pack.
func (p *Packer) normalizedPair(message, noise ring.Poly) (ring.Poly, ring.Poly) {
	n := p.CipherRing.N
	return ring.NewPoly(n, message), ring.NewPoly(n, noise)
}

// Encode packs message and noise, coefficient-wise, into one polynomial
// over the ciphertext ring.
func (p *Packer) Encode(message, noise ring.Poly) ring.Poly {
	m, z := p.normalizedPair(message, noise)
	out := make(ring.Poly, p.CipherRing.N)
	for i := range out {
		out[i] = p.encodeCoef(m[i], z[i])
	}
	return out
}

// EncodePureMessage packs message with zero noise.
func (p *Packer) EncodePureMessage(message ring.Poly) ring.Poly {
	return p.Encode(message, ring.Zero(p.CipherRing.N))
}

// EncodePureNoise packs noise with a zero message.
func (p *Packer) EncodePureNoise(noise ring.Poly) ring.Poly {
	return p.Encode(ring.Zero(p.CipherRing.N), noise)
}

// Decode splits every coefficient of poly back into its [message, noise]
// residue pair, returning one rns.Rns per coefficient.
func (p *Packer) Decode(poly ring.Poly) []*rns.Rns {
	out := make([]*rns.Rns, len(poly))
	for i, c := range poly {
		out[i] = &rns.Rns{Basis: p.Basis, Residues: p.DecodeCoef(c)}
	}
	return out
}
