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
	"strings"
)

var _ Source = (*HashSource)(nil)

const HashSourceType string = "hash-source"

// HashSource holds an algorithm name and digest pair, rendered as
// '<algo>-<digest>'; both parts are kept verbatim
type HashSource struct {
	algo string
	hash string
}

// ParseHashSource accepts either a quoted 'algo-digest' pair or an unquoted
// value with a sha256-, sha384- or sha512- prefix
func ParseHashSource(input string) (s HashSource, ok bool) {
	quoted := false
	if l := len(input); l > 2 {
		if input[0] == '\'' && input[l-1] == '\'' {
			input = input[1 : l-1]
			quoted = true
		}
	}
	if !quoted {
		quoted = strings.HasPrefix(input, "sha256-") ||
			strings.HasPrefix(input, "sha384-") ||
			strings.HasPrefix(input, "sha512-")
	}
	if quoted {
		if algo, hash, found := strings.Cut(input, "-"); found {
			s, ok = NewHashSource(algo, hash), true
		}
	}
	return
}

func NewHashSource(algo, hash string) (value HashSource) {
	value = HashSource{
		algo: algo,
		hash: hash,
	}
	return
}

func (s HashSource) SourceType() string {
	return HashSourceType
}

func (s HashSource) Value() (value string) {
	value = fmt.Sprintf("'%v-%v'", s.algo, s.hash)
	return
}
