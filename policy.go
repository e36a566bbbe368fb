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
	"sort"

	"github.com/fvbommel/sortorder"

	"github.com/go-corelibs/maps"
	"github.com/go-corelibs/slices"
)

// Policy is an ordered collection of directives
type Policy interface {
	// Set overwrites any existing directives of the same type with the one
	// given, at the position of the first occurrence (chainable)
	Set(d Directive) Policy
	// Add includes the given directive (chainable); in the default strict
	// mode a directive of the same type already present is replaced in
	// place, in permissive mode the directive is always appended
	Add(d Directive) Policy
	// Value returns a string suitable for use as the response header value,
	// joining directives with "; " in sequence order; an empty policy
	// renders as the empty string and rendering aborts on the first
	// directive returning an error
	Value() (value string, err error)
	// Find returns all directive instances of named type
	Find(name string) (found []Directive)
	// None returns true if Empty or there is only the None source present in
	// the named directive
	None(name string) (none bool)
	// Empty returns true if there are no directives present
	Empty() (empty bool)
	// Unsafe returns true if any "unsafe" sources are present in the named
	// directive
	Unsafe(name string) (unsafe bool)
	// Collapse reduces directives of the same type to one, unioning their
	// sources, and orders the result with default-src first and reporting
	// directives last; returns a new Policy
	Collapse() Policy
	// Directives returns the list of directives present
	Directives() (directives []Directive)
}

type cPolicy struct {
	directives []Directive
	permissive bool
}

// NewPolicy creates a strict mode Policy seeded with the given directives;
// strict mode de-duplicates by directive type on Add
func NewPolicy(directives ...Directive) (p Policy) {
	p = &cPolicy{directives: directives}
	return
}

// NewPermissivePolicy creates a permissive mode Policy seeded with the given
// directives; permissive mode allows and renders duplicate directive types
// (browsers honour the first occurrence per the CSP specification, this
// package does not enforce that)
func NewPermissivePolicy(directives ...Directive) (p Policy) {
	p = &cPolicy{directives: directives, permissive: true}
	return
}

// StrictContentSecurityPolicy returns a restrictive https-only policy
func StrictContentSecurityPolicy() Policy {
	return NewPolicy(
		NewDefaultSrc(Self, NewSchemeSource("https")),
		NewFrameAncestors(None),
		NewObjectSrc(None),
	)
}

// DefaultContentSecurityPolicy returns a lenient https and data policy
func DefaultContentSecurityPolicy() Policy {
	return NewPolicy(
		NewDefaultSrc(Self, NewSchemeSource("https"), NewSchemeSource("data"), UnsafeInline),
		NewFrameAncestors(None),
		NewObjectSrc(None),
	)
}

func (p *cPolicy) Value() (value string, err error) {
	for idx, d := range p.directives {
		var dv string
		if dv, err = d.Value(); err != nil {
			value = ""
			return
		}
		if idx > 0 {
			value += "; "
		}
		value += dv
	}
	return
}

func (p *cPolicy) makeDataMap() (data map[string][]Directive, order []string) {
	data = make(map[string][]Directive)
	for _, d := range p.directives {
		dType := d.DirectiveType()
		if !slices.Within(dType, order) {
			order = append(order, dType)
		}
		data[dType] = append(data[dType], d)
	}
	return
}

func (p *cPolicy) Set(d Directive) Policy {
	data, order := p.makeDataMap()
	dType := d.DirectiveType()
	if !slices.Within(dType, order) {
		order = append(order, dType)
	}
	data[dType] = []Directive{d}
	next := make([]Directive, 0, len(p.directives)+1)
	for _, name := range order {
		next = append(next, data[name]...)
	}
	p.directives = next
	return p
}

func (p *cPolicy) Add(d Directive) Policy {
	if p.permissive {
		p.directives = append(p.directives, d)
		return p
	}
	return p.Set(d)
}

func (p *cPolicy) Find(name string) (found []Directive) {
	for _, d := range p.directives {
		if d.DirectiveType() == name {
			found = append(found, d)
		}
	}
	return
}

func (p *cPolicy) None(name string) (none bool) {
	found := p.Find(name)
	if none = len(found) == 0; !none {
		var notNone bool
		for _, d := range found {
			if sd, ok := d.(SourceDirective); ok {
				sources := sd.Sources()
				switch len(sources) {
				case 1:
					none = sources[0].Value() == None.Value()
				case 0:
					none = true
				default:
					notNone = true
				}
			}
		}
		if none && notNone {
			none = false
		}
	}
	return
}

func (p *cPolicy) Empty() (empty bool) {
	empty = len(p.directives) == 0
	return
}

func (p *cPolicy) Unsafe(name string) (unsafe bool) {
	for _, d := range p.Find(name) {
		if sd, ok := d.(SourceDirective); ok {
			for _, src := range sd.Sources() {
				switch src.Value() {
				case UnsafeInline.Value(), UnsafeEval.Value(), UnsafeHashes.Value():
					unsafe = true
					return
				}
			}
		}
	}
	return
}

func (p *cPolicy) Directives() (directives []Directive) {
	directives = append(directives, p.directives...)
	return
}

func (p *cPolicy) Collapse() Policy {
	data := make(map[string]Directive)
	for _, d := range p.directives {
		dType := d.DirectiveType()
		if sd, ok := d.(SourceDirective); ok {
			if existing, present := data[dType].(SourceDirective); present {
				existing.Append(sd.Sources()...)
				continue
			}
			fresh := &directive{name: dType}
			fresh.Append(sd.Sources()...)
			data[dType] = fresh
			continue
		}
		data[dType] = d
	}
	keys := maps.SortedKeys(data)
	sort.SliceStable(keys, func(i, j int) (less bool) {
		a, b := keys[i], keys[j]
		aIsReport := slices.Present(a, "report-to", "report-uri")
		bIsReport := slices.Present(b, "report-to", "report-uri")
		aIsDefault := a == "default-src"
		bIsDefault := b == "default-src"
		switch {
		case aIsDefault:
			less = true
		case bIsDefault:
			less = false
		case aIsReport && !bIsReport:
			less = false
		case !aIsReport && bIsReport:
			less = true
		default:
			less = sortorder.NaturalLess(a, b)
		}
		return
	})
	collapsed := make([]Directive, 0, len(keys))
	for _, name := range keys {
		collapsed = append(collapsed, data[name])
	}
	return &cPolicy{directives: collapsed, permissive: p.permissive}
}
