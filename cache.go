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

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered explorer pages live for 30 minutes
	pageCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	pageCacheCleanup = 5 * time.Minute
)

// NewPageCache creates a cache for rendered explorer pages
func NewPageCache() *cache.Cache {
	return cache.New(pageCacheExpiration, pageCacheCleanup)
}

func CachePage(c *cache.Cache, input string, page string) {
	c.Set(input, page, pageCacheExpiration)
}

func GetPage(c *cache.Cache, input string) string {
	val, ok := c.Get(input)
	if !ok {
		return ""
	}
	return val.(string)
}

// InvalidatePages drops every cached page, for commands that change the game
func InvalidatePages(c *cache.Cache) {
	c.Flush()
}
