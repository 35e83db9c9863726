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

package eval

import (
	"log"

	"github.com/vaultree/govenum/cipher"
	"github.com/vaultree/govenum/glwe"
	"github.com/vaultree/govenum/internal"
	"github.com/vaultree/govenum/key"
)

// Evaluator performs homomorphic arithmetic over one Distribution.
// Multiplication needs a RelinKey and, even then, is off by default:
// see Mul.
type Evaluator struct {
	dist            *glwe.Distribution
	relinKey        *key.RelinKey
	experimentalMul bool

	// Logger, when non-nil, receives diagnostic traces of every
	// homomorphic operation. Never consulted for correctness; a nil
	// Logger (the default) disables tracing entirely.
	Logger *log.Logger
}

func (e *Evaluator) logf(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithExperimentalMul opts into the Mul path. Without it, Mul always
// fails with ErrNotImplemented, matching the source this scheme was
// adapted from, which raises unconditionally on the equivalent call
// pending a fix to its noise growth under relinearization.
func WithExperimentalMul() Option {
	return func(e *Evaluator) { e.experimentalMul = true }
}

// NewEvaluator builds an Evaluator over dist. relinKey may be nil if Mul
// will never be called.
func NewEvaluator(dist *glwe.Distribution, relinKey *key.RelinKey, opts ...Option) *Evaluator {
	e := &Evaluator{dist: dist, relinKey: relinKey}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add returns lhs+rhs, coefficient-wise on mask and body.
func (e *Evaluator) Add(lhs, rhs *cipher.Cipher) *cipher.Cipher {
	cr := e.dist.CipherRing
	out := &cipher.Cipher{Sample: &glwe.GlweSample{
		Mask: cr.Add(lhs.Sample.Mask, rhs.Sample.Mask),
		Body: cr.Add(lhs.Sample.Body, rhs.Sample.Body),
	}}
	e.logf("eval: %s + %s = %s", lhs.Sample, rhs.Sample, out.Sample)
	return out
}

// Sub returns lhs-rhs, coefficient-wise on mask and body.
func (e *Evaluator) Sub(lhs, rhs *cipher.Cipher) *cipher.Cipher {
	cr := e.dist.CipherRing
	out := &cipher.Cipher{Sample: &glwe.GlweSample{
		Mask: cr.Sub(lhs.Sample.Mask, rhs.Sample.Mask),
		Body: cr.Sub(lhs.Sample.Body, rhs.Sample.Body),
	}}
	e.logf("eval: %s - %s = %s", lhs.Sample, rhs.Sample, out.Sample)
	return out
}

func (e *Evaluator) rank2Product(lhs, rhs *glwe.GlweSample) *cipher.Rank2Cipher {
	cr := e.dist.CipherRing
	return &cipher.Rank2Cipher{
		Constant:  cr.Mul(lhs.Body, rhs.Body),
		Linear:    cr.Add(cr.Mul(lhs.Body, rhs.Mask), cr.Mul(lhs.Mask, rhs.Body)),
		Quadratic: cr.Mul(lhs.Mask, rhs.Mask),
	}
}

// Mul multiplies two ciphertexts and relinearizes the rank-2 product
// back down to a Cipher. It requires a RelinKey (ErrMissingRelinKey
// otherwise) and, unless the Evaluator was built with
// WithExperimentalMul, always fails with ErrNotImplemented: the rank-2
// product and the relinearization arithmetic are implemented exactly as
// specified, but nothing in this package establishes a noise bound under
// which the relinearized result still decrypts correctly.
func (e *Evaluator) Mul(lhs, rhs *cipher.Cipher) (*cipher.Cipher, error) {
	if e.relinKey == nil {
		return nil, internal.ErrMissingRelinKey
	}
	if !e.experimentalMul {
		return nil, internal.ErrNotImplemented
	}

	rank2 := e.rank2Product(lhs.Sample, rhs.Sample)
	out, err := rank2.Relinearize(e.relinKey, e.dist.CipherRing)
	if err != nil {
		return nil, err
	}
	e.logf("eval: %s * %s = %s (relinearized)", lhs.Sample, rhs.Sample, out.Sample)
	return out, nil
}
