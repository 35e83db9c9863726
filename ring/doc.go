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

// Package ring implements arithmetic in the quotient ring
// R_m = Z_m[x]/(x^N+1), for an arbitrary modulus m and dimension N.
//
// A Poly is a length-N slice of *big.Int coefficients, least-significant
// degree first (coefficient i is the coefficient of x^i). Moduli are not
// bounded by the platform word size, and even a modulus that fits in 64
// bits (such as 1400472361734830353) has coefficient products that do
// not, so all arithmetic is done with math/big rather than fixed-width
// integers, in the same spirit as data.Vector's *big.Int coordinates in
// the inner-product schemes this package is adapted from.
//
// Multiplication is schoolbook convolution followed by cyclotomic
// reduction (x^N == -1), mirroring data.Vector.MulAsPolyInRing's
// negate-and-wrap technique, generalized here to an explicit modulus
// rather than operating over raw, unreduced *big.Int coordinates.
package ring
