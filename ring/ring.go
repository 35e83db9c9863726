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

package ring

import (
	"math/big"

	"github.com/vaultree/govenum/sample"
)

// Ring is the quotient ring Z_modulus[x]/(x^N+1).
type Ring struct {
	Modulus *big.Int
	N       int
}

// New returns the ring Z_modulus[x]/(x^N+1).
func New(modulus *big.Int, n int) *Ring {
	return &Ring{Modulus: modulus, N: n}
}

// normalize reduces every coefficient of p into [0, Modulus) in place and
// returns p.
func (r *Ring) normalize(p Poly) Poly {
	for i, c := range p {
		c.Mod(c, r.Modulus)
		p[i] = c
	}
	return p
}

// Zero returns the ring's additive identity.
func (r *Ring) Zero() Poly {
	return Zero(r.N)
}

// Add returns a+b coefficient-wise, reduced mod Modulus.
func (r *Ring) Add(a, b Poly) Poly {
	out := make(Poly, r.N)
	for i := 0; i < r.N; i++ {
		out[i] = new(big.Int).Add(a[i], b[i])
	}
	return r.normalize(out)
}

// Sub returns a-b coefficient-wise, reduced mod Modulus.
func (r *Ring) Sub(a, b Poly) Poly {
	out := make(Poly, r.N)
	for i := 0; i < r.N; i++ {
		out[i] = new(big.Int).Sub(a[i], b[i])
	}
	return r.normalize(out)
}

// Neg returns -a coefficient-wise, reduced mod Modulus.
func (r *Ring) Neg(a Poly) Poly {
	out := make(Poly, r.N)
	for i := 0; i < r.N; i++ {
		out[i] = new(big.Int).Neg(a[i])
	}
	return r.normalize(out)
}

// MulScalar returns a*c, every coefficient scaled by c and reduced mod
// Modulus.
func (r *Ring) MulScalar(a Poly, c *big.Int) Poly {
	out := make(Poly, r.N)
	for i := 0; i < r.N; i++ {
		out[i] = new(big.Int).Mul(a[i], c)
	}
	return r.normalize(out)
}

// Mul returns a*b reduced modulo x^N+1: schoolbook convolution, folding
// exponents k >= N back in by negating the coefficient (x^N == -1),
// generalizing the same technique data.Vector.MulAsPolyInRing uses over
// raw *big.Int coordinates to an explicit ring modulus.
func (r *Ring) Mul(a, b Poly) Poly {
	n := r.N
	out := make(Poly, n)
	for i := range out {
		out[i] = big.NewInt(0)
	}

	prod := new(big.Int)
	for i := 0; i < n; i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if b[j].Sign() == 0 {
				continue
			}
			prod.Mul(a[i], b[j])
			k := i + j
			if k < n {
				out[k].Add(out[k], prod)
			} else {
				out[k-n].Sub(out[k-n], prod)
			}
		}
	}
	return r.normalize(out)
}

// UniformPoly draws a length-n polynomial whose coefficients are each
// drawn independently from sampler.
func UniformPoly(n int, sampler sample.Sampler) (Poly, error) {
	p := make(Poly, n)
	for i := 0; i < n; i++ {
		c, err := sampler.Sample()
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}
