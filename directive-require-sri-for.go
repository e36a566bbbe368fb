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

var _ Directive = (*requireSriForDirective)(nil)

// SriFor selects which resource kinds require subresource integrity
type SriFor string

const (
	SriScript      SriFor = "script"
	SriStyle       SriFor = "style"
	SriScriptStyle SriFor = "script style"
)

type requireSriForDirective SriFor

// NewRequireSriFor constructs a require-sri-for directive
func NewRequireSriFor(target SriFor) Directive {
	return requireSriForDirective(target)
}

func (d requireSriForDirective) DirectiveType() string {
	return "require-sri-for"
}

func (d requireSriForDirective) Value() (value string, err error) {
	value = fmt.Sprintf("require-sri-for %v", string(d))
	return
}
