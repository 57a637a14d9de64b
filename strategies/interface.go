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

package strategies

import "strings"

// RankStrategy decides which rank to query next from a collection of n
// ranked items.
type RankStrategy interface {
	Name() string
	Pick(n int) int // Returns a rank in [1, n]
}

// normalizeName lower-cases and trims a strategy name for lookups
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
