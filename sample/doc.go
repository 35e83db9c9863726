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

// Package sample provides the Sampler interface used throughout govenum
// to draw random *big.Int coefficients, along with two implementations:
// Uniform, backed by crypto/rand for process-default sessions, and
// UniformDet, a salsa20 keystream sampler for seeded, reproducible
// sessions. Ring and GLWE noise sampling are built against the Sampler
// interface rather than a concrete type, so a higher-quality noise
// distribution (e.g. a discrete Gaussian) can be substituted later
// without touching call sites.
package sample
