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

package glwe_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaultree/govenum/glwe"
	"github.com/vaultree/govenum/internal"
	"github.com/vaultree/govenum/ring"
)

func testParams(t *testing.T) *glwe.EncryptionParameters {
	params, err := glwe.NewEncryptionParameters(4, big.NewInt(1000003), big.NewInt(127), big.NewInt(3))
	assert.NoError(t, err)
	return params
}

func TestNewEncryptionParametersRejectsTooSmallModulus(t *testing.T) {
	_, err := glwe.NewEncryptionParameters(4, big.NewInt(300), big.NewInt(127), big.NewInt(3))
	assert.ErrorIs(t, err, internal.ErrInvalidParameters)
}

func TestSampleZeroSecretDecryptsNearZero(t *testing.T) {
	params := testParams(t)
	dist, err := glwe.NewDistribution(params, nil)
	assert.NoError(t, err)

	secret := ring.NewPoly(4, []*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1), big.NewInt(0)})
	s, err := dist.SampleZeroSecret(secret)
	assert.NoError(t, err)

	combined := dist.CipherRing.Add(s.Body, dist.CipherRing.Mul(s.Mask, secret))
	pairs := dist.Packer.Decode(combined)
	for _, p := range pairs {
		assert.Equal(t, int64(0), p.Residues[0].Int64())
	}
}

func TestSamplePolynomialRespectsModulus(t *testing.T) {
	params := testParams(t)
	dist, err := glwe.NewDistribution(params, nil)
	assert.NoError(t, err)

	p, err := dist.SamplePolynomial(big.NewInt(5))
	assert.NoError(t, err)
	for _, c := range p {
		assert.True(t, c.Sign() >= 0)
		assert.Equal(t, -1, c.Cmp(big.NewInt(5)))
	}
}
