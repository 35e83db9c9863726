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

package sample

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// KeyFromSeed expands an int64 session seed into a 32-byte salsa20 key.
// Two calls with the same seed always return the same key, which is what
// lets a seeded session reproduce bit-identical samples.
func KeyFromSeed(seed int64) *[32]byte {
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], uint64(seed))
	sum := sha256.Sum256(seedBytes[:])
	var key [32]byte
	copy(key[:], sum[:])
	return &key
}

// UniformDet samples values from the interval [0, max) using a salsa20
// keystream keyed by a session seed, drawing rejection-sampled blocks the
// same way data.Vector's deterministic vector sampler does, but keeping
// a running block counter so repeated calls to Sample walk forward
// through the keystream instead of reproducing the same block.
type UniformDet struct {
	key      *[32]byte
	max      *big.Int
	maxBytes int
	shift    uint
	counter  uint64
}

// NewUniformDet returns an instance of the UniformDet sampler. It accepts
// an upper bound on the sampled values and the key derived from the
// session seed (see KeyFromSeed).
func NewUniformDet(max *big.Int, key *[32]byte) *UniformDet {
	maxBits := new(big.Int).Sub(max, big.NewInt(1)).BitLen()
	maxBytes := (maxBits + 7) / 8
	if maxBytes == 0 {
		maxBytes = 1
	}
	shift := uint(8*maxBytes - maxBits)
	return &UniformDet{
		key:      key,
		max:      max,
		maxBytes: maxBytes,
		shift:    shift,
	}
}

// Sample draws the next value from the interval [0, max). Blocks that
// decode to a value outside [0, max) are rejected and the counter keeps
// advancing, so the sequence stays deterministic for a given key.
func (u *UniformDet) Sample() (*big.Int, error) {
	for {
		var nonce [8]byte
		binary.LittleEndian.PutUint64(nonce[:], u.counter)
		u.counter++

		in := make([]byte, u.maxBytes)
		out := make([]byte, u.maxBytes)
		salsa20.XORKeyStream(out, in, nonce[:], u.key)
		out[0] >>= u.shift

		val := new(big.Int).SetBytes(out)
		if val.Cmp(u.max) < 0 {
			return val, nil
		}
	}
}
