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

package ring_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaultree/govenum/ring"
	"github.com/vaultree/govenum/sample"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestAddSubRoundTrip(t *testing.T) {
	r := ring.New(big.NewInt(97), 4)
	a := ring.NewPoly(4, ints(1, 2, 3, 4))
	b := ring.NewPoly(4, ints(10, 20, 30, 40))

	sum := r.Add(a, b)
	back := r.Sub(sum, b)
	assert.True(t, back.Equal(a))
}

func TestMulWrapsWithNegation(t *testing.T) {
	// In Z_97[x]/(x^4+1), x^3 * x^2 = x^5 = -x.
	r := ring.New(big.NewInt(97), 4)
	x3 := ring.NewPoly(4, ints(0, 0, 0, 1))
	x2 := ring.NewPoly(4, ints(0, 0, 1, 0))

	got := r.Mul(x3, x2)
	want := ring.NewPoly(4, ints(0, 96, 0, 0)) // -1 mod 97 == 96
	assert.True(t, got.Equal(want))
}

func TestMulIdentity(t *testing.T) {
	r := ring.New(big.NewInt(12289), 8)
	one := ring.NewPoly(8, ints(1))
	a := ring.NewPoly(8, ints(3, 1, 4, 1, 5, 9, 2, 6))

	assert.True(t, r.Mul(a, one).Equal(a))
}

func TestNegIsAdditiveInverse(t *testing.T) {
	r := ring.New(big.NewInt(97), 4)
	a := ring.NewPoly(4, ints(1, 2, 3, 4))
	assert.True(t, r.Add(a, r.Neg(a)).Equal(r.Zero()))
}

func TestUniformPolyRespectsBound(t *testing.T) {
	s := sample.NewUniform(big.NewInt(1000))
	p, err := ring.UniformPoly(16, s)
	assert.NoError(t, err)
	assert.Len(t, p, 16)
	for _, c := range p {
		assert.True(t, c.Sign() >= 0)
		assert.Equal(t, -1, c.Cmp(big.NewInt(1000)))
	}
}
