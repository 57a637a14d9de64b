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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("game:\n  seed: 42\n  bad_hash: true\n"), 0644))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), config.Game.Seed)
	assert.True(t, config.Game.BadHash)
	assert.Equal(t, "random", config.Game.Strategy)
	assert.Equal(t, 80, config.Display.WordWrap)
}

func TestLoadConfigFromInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte("game: [1, 2\n"), 0644))

	config, err := loadConfigFrom(path)
	assert.Error(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestCreateDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, createDefaultConfigFile(path))

	config, err := loadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}
