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

package probe

import "fmt"

const maxSieve = 100000

var (
	hashBaseA = mustLargestPrime(10000)
	hashBaseB = mustLargestPrime(8000)
)

// LargestPrime returns the largest prime strictly smaller than k using a
// sieve of Eratosthenes. k must be in (2, 100000).
func LargestPrime(k int) (int, error) {
	if k <= 2 || k >= maxSieve {
		return 0, fmt.Errorf("largest prime below %d: k must be in (2, %d)", k, maxSieve)
	}

	composite := make([]bool, k)
	for p := 2; p*p < k; p++ {
		if composite[p] {
			continue
		}
		for i := p * p; i < k; i += p {
			composite[i] = true
		}
	}

	for i := k - 1; i >= 2; i-- {
		if !composite[i] {
			return i, nil
		}
	}
	return 0, fmt.Errorf("largest prime below %d: none found", k)
}

func mustLargestPrime(k int) int {
	p, err := LargestPrime(k)
	if err != nil {
		panic(err)
	}
	return p
}

// GoodHash spreads keys over [0, size) with a universal-style polynomial
// whose base changes on every character.
func GoodHash(key string, size int) int {
	if size <= 1 {
		return 0
	}
	value := 0
	a, b := hashBaseA, hashBaseB
	for _, r := range key {
		value = (int(r) + a*value) % size
		a = (a * b) % (size - 1)
	}
	return value
}

// BadHash is a deliberately weak hash, kept to compare probe statistics.
func BadHash(key string, size int) int {
	if size <= 0 {
		return 0
	}
	value := 0
	i := 0
	for _, r := range key {
		value += (int(r) * i) % size
		i++
	}
	return value % size
}
