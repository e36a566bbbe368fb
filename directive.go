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

// Directive is one named restriction within a policy
type Directive interface {
	// DirectiveType returns the kebab-case directive name, ignoring arguments
	DirectiveType() string
	// Value renders the full "<name> <argument>" form; the only possible
	// error is ErrEmptyDirective from the directives that require at least
	// one argument value
	Value() (value string, err error)
}

// SourceDirective is a Directive carrying a list of source expressions
type SourceDirective interface {
	Directive
	Sources() (sources Sources)
	Append(sources ...Source)
}

var _ SourceDirective = (*directive)(nil)

type directive struct {
	name    string
	sources Sources
}

// NewGenericSourceDirective constructs a source-list directive with an
// arbitrary name, for directives this package has no constructor for
func NewGenericSourceDirective(name string, sources ...Source) (d Directive) {
	d = &directive{
		name:    name,
		sources: sources,
	}
	return
}

func (d *directive) DirectiveType() string {
	return d.name
}

func (d *directive) Value() (value string, err error) {
	value = d.name + " " + d.sources.Value()
	return
}

func (d *directive) Sources() (sources Sources) {
	sources = append(sources, d.sources...)
	return
}

// Append adds the given sources, skipping any that render identically to a
// source already present
func (d *directive) Append(sources ...Source) {
	for _, src := range sources {
		var dupe bool
		for _, dSrc := range d.sources {
			if dupe = dSrc.Value() == src.Value(); dupe {
				break
			}
		}
		if !dupe {
			d.sources = append(d.sources, src)
		}
	}
}

func NewBaseUri(sources ...Source) Directive {
	return &directive{name: "base-uri", sources: sources}
}

func NewChildSrc(sources ...Source) Directive {
	return &directive{name: "child-src", sources: sources}
}

func NewConnectSrc(sources ...Source) Directive {
	return &directive{name: "connect-src", sources: sources}
}

func NewDefaultSrc(sources ...Source) Directive {
	return &directive{name: "default-src", sources: sources}
}

func NewFontSrc(sources ...Source) Directive {
	return &directive{name: "font-src", sources: sources}
}

func NewFormAction(sources ...Source) Directive {
	return &directive{name: "form-action", sources: sources}
}

func NewFrameAncestors(sources ...Source) Directive {
	return &directive{name: "frame-ancestors", sources: sources}
}

func NewFrameSrc(sources ...Source) Directive {
	return &directive{name: "frame-src", sources: sources}
}

func NewImgSrc(sources ...Source) Directive {
	return &directive{name: "img-src", sources: sources}
}

func NewManifestSrc(sources ...Source) Directive {
	return &directive{name: "manifest-src", sources: sources}
}

func NewMediaSrc(sources ...Source) Directive {
	return &directive{name: "media-src", sources: sources}
}

func NewNavigateTo(sources ...Source) Directive {
	return &directive{name: "navigate-to", sources: sources}
}

func NewObjectSrc(sources ...Source) Directive {
	return &directive{name: "object-src", sources: sources}
}

func NewPrefetchSrc(sources ...Source) Directive {
	return &directive{name: "prefetch-src", sources: sources}
}

func NewScriptSrc(sources ...Source) Directive {
	return &directive{name: "script-src", sources: sources}
}

func NewScriptSrcAttr(sources ...Source) Directive {
	return &directive{name: "script-src-attr", sources: sources}
}

func NewScriptSrcElem(sources ...Source) Directive {
	return &directive{name: "script-src-elem", sources: sources}
}

func NewStyleSrc(sources ...Source) Directive {
	return &directive{name: "style-src", sources: sources}
}

func NewStyleSrcAttr(sources ...Source) Directive {
	return &directive{name: "style-src-attr", sources: sources}
}

func NewStyleSrcElem(sources ...Source) Directive {
	return &directive{name: "style-src-elem", sources: sources}
}

func NewWorkerSrc(sources ...Source) Directive {
	return &directive{name: "worker-src", sources: sources}
}
