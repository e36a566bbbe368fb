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

func TestPolicyEmpty(t *testing.T) {
	p := NewPolicy()
	assert.True(t, p.Empty())
	value, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestPolicyValue(t *testing.T) {
	fontSrc := NewHostSource("https://cdn.example.org")

	p := NewPolicy(
		NewImgSrc(Self, NewSchemeSource("https"), NewHostSource("http://shields.io")),
		NewConnectSrc(NewHostSource("https://crates.io"), Self),
		NewStyleSrc(Self, UnsafeInline, fontSrc),
	).Add(NewFontSrc(fontSrc))

	value, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t,
		"img-src 'self' https: http://shields.io;"+
			" connect-src https://crates.io 'self';"+
			" style-src 'self' 'unsafe-inline' https://cdn.example.org;"+
			" font-src https://cdn.example.org",
		value)
}

func TestPolicyStrictAdd(t *testing.T) {
	t.Run("replace in place preserves position", func(t *testing.T) {
		p := NewPolicy(
			NewImgSrc(Self),
			NewScriptSrc(Self),
		)
		p.Add(NewImgSrc(None))
		value, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "img-src 'none'; script-src 'self'", value)
	})

	t.Run("new kinds append at the end", func(t *testing.T) {
		p := NewPolicy(NewDefaultSrc(Self))
		p.Add(NewFrameAncestors(None)).Add(NewObjectSrc(None))
		value, err := p.Value()
		require.NoError(t, err)
		assert.Equal(t, "default-src 'self'; frame-ancestors 'none'; object-src 'none'", value)
	})
}

func TestPolicyPermissiveAdd(t *testing.T) {
	p := NewPermissivePolicy(NewImgSrc(Self))
	p.Add(NewImgSrc(None))
	value, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "img-src 'self'; img-src 'none'", value)
	assert.Len(t, p.Find("img-src"), 2)
}

func TestPolicySet(t *testing.T) {
	p := NewPermissivePolicy(
		NewImgSrc(Self),
		NewScriptSrc(Self),
		NewImgSrc(NewSchemeSource("data")),
	)
	p.Set(NewImgSrc(None))
	value, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "img-src 'none'; script-src 'self'", value)
}

func TestPolicyRenderErrorAborts(t *testing.T) {
	p := NewPolicy(
		NewImgSrc(Self),
		NewReportUri(),
	)
	value, err := p.Value()
	assert.ErrorIs(t, err, ErrEmptyDirective)
	assert.Empty(t, value)
}

func TestPolicyRenderDoesNotClose(t *testing.T) {
	p := NewPolicy(NewDefaultSrc(Self))
	value, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "default-src 'self'", value)

	p.Add(NewObjectSrc(None))
	value, err = p.Value()
	require.NoError(t, err)
	assert.Equal(t, "default-src 'self'; object-src 'none'", value)
}

func TestPolicyInspection(t *testing.T) {
	p := NewPolicy(
		NewDefaultSrc(Self),
		NewObjectSrc(None),
		NewScriptSrc(Self, UnsafeInline),
	)

	assert.False(t, p.Empty())
	assert.Len(t, p.Find("object-src"), 1)
	assert.Empty(t, p.Find("media-src"))

	assert.True(t, p.None("object-src"))
	assert.False(t, p.None("default-src"))
	assert.True(t, p.None("media-src"))

	assert.True(t, p.Unsafe("script-src"))
	assert.False(t, p.Unsafe("default-src"))

	assert.Len(t, p.Directives(), 3)
}

func TestPolicyCollapse(t *testing.T) {
	p := NewPermissivePolicy(
		NewScriptSrc(Self),
		NewReportUri("https://r1.example.org"),
		NewScriptSrc(Self, UnsafeInline),
		NewDefaultSrc(Self),
	)

	value, err := p.Collapse().Value()
	require.NoError(t, err)
	assert.Equal(t,
		"default-src 'self';"+
			" script-src 'self' 'unsafe-inline';"+
			" report-uri https://r1.example.org",
		value)

	// the original policy is left as-is
	assert.Len(t, p.Find("script-src"), 2)
}

func TestPresetPolicies(t *testing.T) {
	value, err := StrictContentSecurityPolicy().Value()
	require.NoError(t, err)
	assert.Equal(t, "default-src 'self' https:; frame-ancestors 'none'; object-src 'none'", value)

	value, err = DefaultContentSecurityPolicy().Value()
	require.NoError(t, err)
	assert.Equal(t, "default-src 'self' https: data: 'unsafe-inline'; frame-ancestors 'none'; object-src 'none'", value)
}
