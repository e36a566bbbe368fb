// Copyright (c) 2024  The Go-CoreLibs Authors
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

package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceValues(t *testing.T) {
	assert.Equal(t, "https://example.org", NewHostSource("https://example.org").Value())
	assert.Equal(t, "*.example.org", NewHostSource("*.example.org").Value())
	assert.Equal(t, "https:", NewSchemeSource("https").Value())
	assert.Equal(t, "data:", NewSchemeSource("data:").Value())
	assert.Equal(t, "'self'", Self.Value())
	assert.Equal(t, "'none'", None.Value())
	assert.Equal(t, "'unsafe-eval'", UnsafeEval.Value())
	assert.Equal(t, "'wasm-unsafe-eval'", WasmUnsafeEval.Value())
	assert.Equal(t, "'unsafe-hashes'", UnsafeHashes.Value())
	assert.Equal(t, "'unsafe-inline'", UnsafeInline.Value())
	assert.Equal(t, "'strict-dynamic'", StrictDynamic.Value())
	assert.Equal(t, "'report-sample'", ReportSample.Value())
	assert.Equal(t, "'nonce-R4nd0m'", NewNonceSource("R4nd0m").Value())
	assert.Equal(t, "'sha256-Abc123=='", NewHashSource("sha256", "Abc123==").Value())
}

func TestSourcesValue(t *testing.T) {
	t.Run("empty renders none", func(t *testing.T) {
		assert.Equal(t, "'none'", Sources{}.Value())
		assert.Equal(t, "'none'", Sources(nil).Value())
	})

	t.Run("single source", func(t *testing.T) {
		assert.Equal(t, "'self'", Sources{Self}.Value())
	})

	t.Run("insertion order with single spaces", func(t *testing.T) {
		sources := Sources{Self, NewSchemeSource("data"), NewHostSource("https://cdn.example.org")}
		assert.Equal(t, "'self' data: https://cdn.example.org", sources.Value())
	})
}

func TestParseSource(t *testing.T) {
	t.Run("keywords", func(t *testing.T) {
		for _, input := range []string{"'self'", "self"} {
			parsed, ok := ParseSource(input)
			require.True(t, ok, "input: %q", input)
			assert.Equal(t, KeywordSourceType, parsed.SourceType())
			assert.Equal(t, "'self'", parsed.Value())
		}
	})

	t.Run("nonce", func(t *testing.T) {
		parsed, ok := ParseSource("'nonce-abc123'")
		require.True(t, ok)
		assert.Equal(t, NonceSourceType, parsed.SourceType())
		assert.Equal(t, "'nonce-abc123'", parsed.Value())
	})

	t.Run("hash", func(t *testing.T) {
		parsed, ok := ParseSource("'sha256-xyz'")
		require.True(t, ok)
		assert.Equal(t, HashSourceType, parsed.SourceType())
		assert.Equal(t, "'sha256-xyz'", parsed.Value())

		parsed, ok = ParseSource("sha384-xyz")
		require.True(t, ok)
		assert.Equal(t, HashSourceType, parsed.SourceType())
		assert.Equal(t, "'sha384-xyz'", parsed.Value())
	})

	t.Run("scheme", func(t *testing.T) {
		parsed, ok := ParseSource("https:")
		require.True(t, ok)
		assert.Equal(t, SchemeSourceType, parsed.SourceType())
		assert.Equal(t, "https:", parsed.Value())
	})

	t.Run("host fallback", func(t *testing.T) {
		for _, input := range []string{"https://example.org", "*.example.org", "mail.example.com:443"} {
			parsed, ok := ParseSource(input)
			require.True(t, ok, "input: %q", input)
			assert.Equal(t, HostSourceType, parsed.SourceType())
			assert.Equal(t, input, parsed.Value())
		}
	})

	t.Run("blank input", func(t *testing.T) {
		_, ok := ParseSource("   ")
		assert.False(t, ok)
	})
}
