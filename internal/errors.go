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

// Package internal holds the sentinel errors shared by every govenum
// package, so callers can discriminate failure modes with errors.Is
// instead of parsing messages.
package internal

import "errors"

var (
	// ErrInvalidParameters is returned when plaintext_modulus * noise_modulus
	// is not strictly smaller than ciphertext_modulus.
	ErrInvalidParameters = errors.New("invalid parameters: plaintext_modulus * noise_modulus must be < ciphertext_modulus")

	// ErrNonCoprimeModuli is returned when an RnsBasis is built from moduli
	// that are not pairwise coprime.
	ErrNonCoprimeModuli = errors.New("rns basis moduli must be pairwise coprime")

	// ErrBasisArity is returned when a CRT packer is built from a basis
	// whose length is not exactly two.
	ErrBasisArity = errors.New("crt packer requires a basis of exactly two moduli")

	// ErrBasisMismatch is returned when arithmetic is attempted between
	// Rns values built over different bases.
	ErrBasisMismatch = errors.New("rns values have incompatible bases")

	// ErrMessageTooLong is returned when a plaintext encoder is given more
	// coefficients than the ring dimension.
	ErrMessageTooLong = errors.New("message has more coefficients than the ring dimension")

	// ErrDomain is returned by numeric.NthDigit for a negative number, a radix
	// below 2, or a negative digit index.
	ErrDomain = errors.New("argument out of domain")

	// ErrMissingRelinKey is returned when homomorphic multiplication is
	// attempted without a relinearization key.
	ErrMissingRelinKey = errors.New("no relinearization key configured")

	// ErrNotImplemented is returned by the homomorphic multiplication path
	// while its correctness remains unverified.
	ErrNotImplemented = errors.New("multiplication support is not yet implemented")
)
