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
	"math/big"

	"github.com/vaultree/govenum/glwe"
	"github.com/vaultree/govenum/key"
	"github.com/vaultree/govenum/numeric"
	"github.com/vaultree/govenum/ring"
)

// Rank2Cipher is the un-relinearized product of two Ciphers: decrypting
// it requires evaluating Constant + Linear*s + Quadratic*s^2, one degree
// higher in s than a Cipher.
type Rank2Cipher struct {
	Constant  ring.Poly
	Linear    ring.Poly
	Quadratic ring.Poly
}

// Relinearize folds the s^2 term back down to a degree-1 (mask, body)
// pair using rk: Quadratic is radix-decomposed into rk.Base digits, each
// digit weighted against the aux key encrypting that power of Base times
// s^2, and the results are accumulated alongside Linear and Constant.
func (r *Rank2Cipher) Relinearize(rk *key.RelinKey, cr *ring.Ring) (*Cipher, error) {
	components, err := numeric.RadixDecomposePoly(r.Quadratic, big.NewInt(rk.Base), rk.DigitCount())
	if err != nil {
		return nil, err
	}

	mask := cr.Zero()
	body := cr.Zero()
	for i, comp := range components {
		aux := rk.AuxKeys[i]
		mask = cr.Add(mask, cr.Mul(comp, aux.Mask))
		body = cr.Add(body, cr.Mul(comp, aux.Body))
	}

	mask = cr.Add(mask, r.Linear)
	body = cr.Add(body, r.Constant)

	return &Cipher{Sample: &glwe.GlweSample{Mask: mask, Body: body}}, nil
}
