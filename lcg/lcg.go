// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lcg provides a small, explicitly seeded pseudo-random integer
// stream. Two generators built with the same seed always produce the same
// sequence, which keeps simulations and their tests reproducible.
package lcg

const (
	multiplier = 134775813
	increment  = 1
	draws      = 5 // values combined per IntN call
	majority   = 3
)

// RandomGen is a linear congruential generator modulo 2^32.
// It is not safe for concurrent use.
type RandomGen struct {
	seed uint32
}

// New returns a generator seeded with seed.
func New(seed uint32) *RandomGen {
	return &RandomGen{seed: seed}
}

// Next advances the generator and returns the new state.
func (g *RandomGen) Next() uint32 {
	// uint32 overflow is the modulo 2^32.
	g.seed = multiplier*g.seed + increment
	return g.seed
}

// IntN returns an integer in [1, n]. It draws five values and keeps, for
// each of the sixteen high bits, the bit that at least three of them agree
// on. It panics if n < 1.
func (g *RandomGen) IntN(n int) int {
	if n < 1 {
		panic("lcg: invalid argument to IntN")
	}

	var high [draws]uint32
	for i := range high {
		high[i] = g.Next() >> 16
	}

	var out uint32
	for bit := 0; bit < 16; bit++ {
		ones := 0
		for _, v := range high {
			ones += int(v >> bit & 1)
		}
		if ones >= majority {
			out |= 1 << bit
		}
	}

	return int(out)%n + 1
}
