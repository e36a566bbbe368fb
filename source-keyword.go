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
)

var _ Source = (*KeywordSource)(nil)

const KeywordSourceType string = "keyword-source"

// KeywordSource is one of the fixed CSP keyword source expressions,
// rendered single-quoted
type KeywordSource string

const (
	None           KeywordSource = `none`
	Self           KeywordSource = `self`
	UnsafeEval     KeywordSource = `unsafe-eval`
	UnsafeHashes   KeywordSource = `unsafe-hashes`
	UnsafeInline   KeywordSource = `unsafe-inline`
	ReportSample   KeywordSource = `report-sample`
	StrictDynamic  KeywordSource = `strict-dynamic`
	WasmUnsafeEval KeywordSource = `wasm-unsafe-eval`
)

// ParseKeywordSource returns the keyword matching the given input, with or
// without the surrounding single quotes
func ParseKeywordSource(input string) (s KeywordSource, ok bool) {
	if l := len(input); l > 2 {
		if input[0] == '\'' && input[l-1] == '\'' {
			input = input[1 : l-1]
		}
	}
	v := KeywordSource(input)
	if ok = v == None || v == Self || v == UnsafeEval || v == UnsafeHashes ||
		v == UnsafeInline || v == ReportSample || v == StrictDynamic ||
		v == WasmUnsafeEval; ok {
		s = v
	}
	return
}

func (s KeywordSource) SourceType() string {
	return KeywordSourceType
}

func (s KeywordSource) Value() (value string) {
	value = fmt.Sprintf(`'%v'`, string(s))
	return
}
