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
	"fmt"

	"github.com/vaultree/govenum/ring"
)

// GlweSample is a (mask, body) pair: body + Mask*secret = noise plus
// whatever payload the sample carries (zero, for a key-generation
// sample; a packed message, for a ciphertext).
type GlweSample struct {
	Mask ring.Poly
	Body ring.Poly
}

// Copy returns a deep copy of s.
func (s *GlweSample) Copy() *GlweSample {
	return &GlweSample{Mask: s.Mask.Copy(), Body: s.Body.Copy()}
}

// String renders the sample's mask and body for diagnostic logging.
func (s *GlweSample) String() string {
	return fmt.Sprintf("glwe(mask=%s, body=%s)", s.Mask, s.Body)
}
