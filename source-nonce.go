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

var _ Source = (*NonceSource)(nil)

const NonceSourceType string = "nonce-source"

// NonceSource holds an opaque nonce value, rendered as 'nonce-<value>'
type NonceSource string

// ParseNonceSource accepts a "nonce-" prefixed value, with or without the
// surrounding single quotes
func ParseNonceSource(input string) (s NonceSource, ok bool) {
	if l := len(input); l > 2 {
		if input[0] == '\'' && input[l-1] == '\'' {
			input = input[1 : l-1]
		}
	}
	if ok = strings.HasPrefix(input, "nonce-"); ok {
		s = NewNonceSource(input[len("nonce-"):])
	}
	return
}

func NewNonceSource(nonce string) (value NonceSource) {
	value = NonceSource(nonce)
	return
}

func (s NonceSource) SourceType() string {
	return NonceSourceType
}

func (s NonceSource) Value() (value string) {
	value = fmt.Sprintf("'nonce-%v'", string(s))
	return
}
