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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/go-corelibs/slices"
)

// ContentSecurityPolicyConfig is a bucket of sources per fetch directive,
// suitable for merging site-wide and per-page policy settings before
// applying them to a Policy
type ContentSecurityPolicyConfig struct {
	DefaultSrc     Sources
	BaseUri        Sources
	ChildSrc       Sources
	ConnectSrc     Sources
	FontSrc        Sources
	FormAction     Sources
	FrameAncestors Sources
	FrameSrc       Sources
	ImgSrc         Sources
	ManifestSrc    Sources
	MediaSrc       Sources
	NavigateTo     Sources
	ObjectSrc      Sources
	PrefetchSrc    Sources
	ScriptSrc      Sources
	ScriptSrcAttr  Sources
	ScriptSrcElem  Sources
	StyleSrc       Sources
	StyleSrcAttr   Sources
	StyleSrcElem   Sources
	WorkerSrc      Sources
}

// Merge appends the other config's sources to this one, returning the
// combined config
func (c ContentSecurityPolicyConfig) Merge(other ContentSecurityPolicyConfig) (merged ContentSecurityPolicyConfig) {
	merged = ContentSecurityPolicyConfig{
		DefaultSrc:     slices.Merge(c.DefaultSrc, other.DefaultSrc),
		BaseUri:        slices.Merge(c.BaseUri, other.BaseUri),
		ChildSrc:       slices.Merge(c.ChildSrc, other.ChildSrc),
		ConnectSrc:     slices.Merge(c.ConnectSrc, other.ConnectSrc),
		FontSrc:        slices.Merge(c.FontSrc, other.FontSrc),
		FormAction:     slices.Merge(c.FormAction, other.FormAction),
		FrameAncestors: slices.Merge(c.FrameAncestors, other.FrameAncestors),
		FrameSrc:       slices.Merge(c.FrameSrc, other.FrameSrc),
		ImgSrc:         slices.Merge(c.ImgSrc, other.ImgSrc),
		ManifestSrc:    slices.Merge(c.ManifestSrc, other.ManifestSrc),
		MediaSrc:       slices.Merge(c.MediaSrc, other.MediaSrc),
		NavigateTo:     slices.Merge(c.NavigateTo, other.NavigateTo),
		ObjectSrc:      slices.Merge(c.ObjectSrc, other.ObjectSrc),
		PrefetchSrc:    slices.Merge(c.PrefetchSrc, other.PrefetchSrc),
		ScriptSrc:      slices.Merge(c.ScriptSrc, other.ScriptSrc),
		ScriptSrcAttr:  slices.Merge(c.ScriptSrcAttr, other.ScriptSrcAttr),
		ScriptSrcElem:  slices.Merge(c.ScriptSrcElem, other.ScriptSrcElem),
		StyleSrc:       slices.Merge(c.StyleSrc, other.StyleSrc),
		StyleSrcAttr:   slices.Merge(c.StyleSrcAttr, other.StyleSrcAttr),
		StyleSrcElem:   slices.Merge(c.StyleSrcElem, other.StyleSrcElem),
		WorkerSrc:      slices.Merge(c.WorkerSrc, other.WorkerSrc),
	}
	return
}

// Apply adds a directive to the policy for each non-empty source bucket,
// using the policy's Add semantics (strict replace or permissive append)
func (c ContentSecurityPolicyConfig) Apply(policy Policy) (modified Policy) {
	apply := func(key string, s Sources, p Policy) (m Policy) {
		if m = p; len(s) > 0 {
			m = p.Add(NewGenericSourceDirective(key, s...))
		}
		return
	}
	modified = policy
	modified = apply("default-src", c.DefaultSrc, modified)
	modified = apply("base-uri", c.BaseUri, modified)
	modified = apply("child-src", c.ChildSrc, modified)
	modified = apply("connect-src", c.ConnectSrc, modified)
	modified = apply("font-src", c.FontSrc, modified)
	modified = apply("form-action", c.FormAction, modified)
	modified = apply("frame-ancestors", c.FrameAncestors, modified)
	modified = apply("frame-src", c.FrameSrc, modified)
	modified = apply("img-src", c.ImgSrc, modified)
	modified = apply("manifest-src", c.ManifestSrc, modified)
	modified = apply("media-src", c.MediaSrc, modified)
	modified = apply("navigate-to", c.NavigateTo, modified)
	modified = apply("object-src", c.ObjectSrc, modified)
	modified = apply("prefetch-src", c.PrefetchSrc, modified)
	modified = apply("script-src", c.ScriptSrc, modified)
	modified = apply("script-src-attr", c.ScriptSrcAttr, modified)
	modified = apply("script-src-elem", c.ScriptSrcElem, modified)
	modified = apply("style-src", c.StyleSrc, modified)
	modified = apply("style-src-attr", c.StyleSrcAttr, modified)
	modified = apply("style-src-elem", c.StyleSrcElem, modified)
	modified = apply("worker-src", c.WorkerSrc, modified)
	return
}

// ParseContentSecurityPolicyConfig builds a config from a generic context,
// such as decoded page front-matter, expecting each directive key to hold a
// list of source expression strings; unparsable entries are collected into
// the returned ConfigError
func ParseContentSecurityPolicyConfig(ctx map[string]interface{}) (cspc ContentSecurityPolicyConfig, err error) {
	var cfgErr ConfigError
	parseSource := func(key string, bucket Sources) (modified Sources) {
		if things, ok := ctx[key].([]interface{}); ok {
			for idx, thing := range things {
				if src, ok := thing.(string); ok {
					if parsed, ok := ParseSource(src); ok {
						bucket = append(bucket, parsed)
					} else {
						log.Warnf("failed to parse content-security-policy.%s[%d]=%q", key, idx, src)
						cfgErr = cfgErr.addError(
							fmt.Sprintf(
								"failed to parse content-security-policy.%s[%d]=%q",
								key, idx, src,
							),
						)
					}
				}
			}
		}
		modified = bucket
		return
	}
	cspc.DefaultSrc = parseSource("default-src", cspc.DefaultSrc)
	cspc.BaseUri = parseSource("base-uri", cspc.BaseUri)
	cspc.ChildSrc = parseSource("child-src", cspc.ChildSrc)
	cspc.ConnectSrc = parseSource("connect-src", cspc.ConnectSrc)
	cspc.FontSrc = parseSource("font-src", cspc.FontSrc)
	cspc.FormAction = parseSource("form-action", cspc.FormAction)
	cspc.FrameAncestors = parseSource("frame-ancestors", cspc.FrameAncestors)
	cspc.FrameSrc = parseSource("frame-src", cspc.FrameSrc)
	cspc.ImgSrc = parseSource("img-src", cspc.ImgSrc)
	cspc.ManifestSrc = parseSource("manifest-src", cspc.ManifestSrc)
	cspc.MediaSrc = parseSource("media-src", cspc.MediaSrc)
	cspc.NavigateTo = parseSource("navigate-to", cspc.NavigateTo)
	cspc.ObjectSrc = parseSource("object-src", cspc.ObjectSrc)
	cspc.PrefetchSrc = parseSource("prefetch-src", cspc.PrefetchSrc)
	cspc.ScriptSrc = parseSource("script-src", cspc.ScriptSrc)
	cspc.ScriptSrcAttr = parseSource("script-src-attr", cspc.ScriptSrcAttr)
	cspc.ScriptSrcElem = parseSource("script-src-elem", cspc.ScriptSrcElem)
	cspc.StyleSrc = parseSource("style-src", cspc.StyleSrc)
	cspc.StyleSrcAttr = parseSource("style-src-attr", cspc.StyleSrcAttr)
	cspc.StyleSrcElem = parseSource("style-src-elem", cspc.StyleSrcElem)
	cspc.WorkerSrc = parseSource("worker-src", cspc.WorkerSrc)

	if !cfgErr.isEmpty() {
		err = cfgErr
	}
	return
}
