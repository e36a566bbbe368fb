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
	"strings"
)

// Source is a single fetch-source expression
type Source interface {
	SourceType() string
	Value() string
}

// Sources is an ordered list of source expressions
type Sources []Source

// Value renders the sources space-separated in insertion order; an empty
// list renders as the 'none' keyword
func (s Sources) Value() (value string) {
	if len(s) == 0 {
		value = None.Value()
		return
	}
	for idx, src := range s {
		if idx > 0 {
			value += " "
		}
		value += src.Value()
	}
	return
}

// ParseSource classifies the given text as one of the typed source
// expressions, by shape only: quoted keywords, 'nonce-' and 'algo-digest'
// forms, trailing-colon schemes, and everything else as a verbatim host
// expression. Only blank input fails to classify.
func ParseSource(input string) (s Source, ok bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return
	}
	if keyword, valid := ParseKeywordSource(trimmed); valid {
		s, ok = keyword, true
		return
	}
	if nonce, valid := ParseNonceSource(trimmed); valid {
		s, ok = nonce, true
		return
	}
	if hashed, valid := ParseHashSource(trimmed); valid {
		s, ok = hashed, true
		return
	}
	if strings.HasSuffix(trimmed, ":") && !strings.Contains(trimmed, "/") {
		s, ok = NewSchemeSource(trimmed), true
		return
	}
	s, ok = NewHostSource(trimmed), true
	return
}
