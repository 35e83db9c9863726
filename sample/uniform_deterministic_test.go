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

package sample_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaultree/govenum/sample"
)

func TestUniformDetIsDeterministic(t *testing.T) {
	key := sample.KeyFromSeed(42)
	a := sample.NewUniformDet(big.NewInt(1000), key)
	b := sample.NewUniformDet(big.NewInt(1000), key)

	for i := 0; i < 16; i++ {
		va, err := a.Sample()
		assert.NoError(t, err)
		vb, err := b.Sample()
		assert.NoError(t, err)
		assert.Equal(t, 0, va.Cmp(vb))
		assert.True(t, va.Sign() >= 0)
		assert.Equal(t, -1, va.Cmp(big.NewInt(1000)))
	}
}

func TestUniformDetAdvancesBetweenCalls(t *testing.T) {
	key := sample.KeyFromSeed(7)
	sampler := sample.NewUniformDet(big.NewInt(1<<30), key)

	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		v, err := sampler.Sample()
		assert.NoError(t, err)
		seen[v.String()] = true
	}
	assert.True(t, len(seen) > 1)
}

func TestUniformDetDifferentSeedsDiverge(t *testing.T) {
	a := sample.NewUniformDet(big.NewInt(1<<40), sample.KeyFromSeed(1))
	b := sample.NewUniformDet(big.NewInt(1<<40), sample.KeyFromSeed(2))

	va, _ := a.Sample()
	vb, _ := b.Sample()
	assert.NotEqual(t, 0, va.Cmp(vb))
}
