// Copyright 2025 go-half Authors
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

package clilog

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	prev := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetupJSON(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, true, "info"))

	log.Info().Str("check", "roundtrip").Msg("check passed")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.Contains(t, out, `"message":"check passed"`)
	assert.Contains(t, out, `"check":"roundtrip"`)
	assert.NotContains(t, out, "hidden")
}

func TestSetupConsole(t *testing.T) {
	restoreLogger(t)

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, false, "debug"))

	log.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestSetupBadLevel(t *testing.T) {
	restoreLogger(t)

	err := Setup(&bytes.Buffer{}, true, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"loud"`)
}
