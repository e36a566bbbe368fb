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

var _ Directive = (*trustedTypesDirective)(nil)

// TrustedTypes is an ordered list of trusted type policy names
type TrustedTypes []string

type trustedTypesDirective TrustedTypes

// NewTrustedTypes constructs a trusted-types directive; rendering with zero
// policy names returns ErrEmptyDirective
func NewTrustedTypes(policyNames ...string) Directive {
	return trustedTypesDirective(policyNames)
}

func (d trustedTypesDirective) DirectiveType() string {
	return "trusted-types"
}

func (d trustedTypesDirective) Value() (value string, err error) {
	if len(d) == 0 {
		err = fmt.Errorf("%w: trusted-types", ErrEmptyDirective)
		return
	}
	value = "trusted-types " + strings.Join([]string(d), " ")
	return
}
