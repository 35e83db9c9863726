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

package rns_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaultree/govenum/internal"
	"github.com/vaultree/govenum/rns"
)

func TestNewBasisRejectsNonCoprimeModuli(t *testing.T) {
	_, err := rns.NewBasis([]*big.Int{big.NewInt(4), big.NewInt(6)})
	assert.ErrorIs(t, err, internal.ErrNonCoprimeModuli)
}

func TestToIntRoundTrip(t *testing.T) {
	basis, err := rns.NewBasis([]*big.Int{big.NewInt(127), big.NewInt(3)})
	assert.NoError(t, err)

	for _, v := range []int64{0, 1, 41, 200, 380} {
		value := big.NewInt(v)
		r := rns.NewRns(basis, value)
		got := r.ToInt()
		want := new(big.Int).Mod(value, basis.Max)
		assert.Equal(t, want.String(), got.String())
	}
}

func TestAddMatchesIntegerArithmetic(t *testing.T) {
	basis, err := rns.NewBasis([]*big.Int{big.NewInt(127), big.NewInt(3)})
	assert.NoError(t, err)

	a := rns.NewRns(basis, big.NewInt(100))
	b := rns.NewRns(basis, big.NewInt(50))

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(150).Mod(big.NewInt(150), basis.Max).String(), sum.ToInt().String())
}

func TestToRnsMatchesWorkedExample(t *testing.T) {
	basis, err := rns.NewBasis([]*big.Int{big.NewInt(3), big.NewInt(5), big.NewInt(7)})
	assert.NoError(t, err)

	got := basis.ToRns(big.NewInt(10))
	want := []int64{1, 0, 3}
	for i, w := range want {
		assert.Equal(t, w, got[i].Int64())
	}
}

func TestAddMatchesWorkedExample(t *testing.T) {
	basis, err := rns.NewBasis([]*big.Int{big.NewInt(3), big.NewInt(5), big.NewInt(7)})
	assert.NoError(t, err)

	a := rns.NewRns(basis, big.NewInt(10))
	b := rns.NewRns(basis, big.NewInt(6))

	sum, err := a.Add(b)
	assert.NoError(t, err)
	want := []int64{1, 1, 2}
	for i, w := range want {
		assert.Equal(t, w, sum.Residues[i].Int64())
	}
}

func TestMulMatchesWorkedExample(t *testing.T) {
	basis, err := rns.NewBasis([]*big.Int{big.NewInt(3), big.NewInt(5), big.NewInt(7)})
	assert.NoError(t, err)

	a := rns.NewRns(basis, big.NewInt(10))
	b := rns.NewRns(basis, big.NewInt(6))

	product, err := a.Mul(b)
	assert.NoError(t, err)
	want := []int64{0, 0, 4}
	for i, w := range want {
		assert.Equal(t, w, product.Residues[i].Int64())
	}
}

func TestCoeffwiseOpRejectsMismatchedBases(t *testing.T) {
	basisA, _ := rns.NewBasis([]*big.Int{big.NewInt(127), big.NewInt(3)})
	basisB, _ := rns.NewBasis([]*big.Int{big.NewInt(11), big.NewInt(13)})

	a := rns.NewRns(basisA, big.NewInt(1))
	b := rns.NewRns(basisB, big.NewInt(1))

	_, err := a.Add(b)
	assert.ErrorIs(t, err, internal.ErrBasisMismatch)
}
