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

var _ Source = (*SchemeSource)(nil)

const SchemeSourceType string = "scheme-source"

// SchemeSource is a scheme source expression such as "https" or "data"; the
// trailing colon is added when rendering
type SchemeSource string

// NewSchemeSource accepts the scheme with or without a trailing colon
func NewSchemeSource(scheme string) (value SchemeSource) {
	value = SchemeSource(strings.TrimSuffix(scheme, ":"))
	return
}

func (s SchemeSource) SourceType() string {
	return SchemeSourceType
}

func (s SchemeSource) Value() (value string) {
	value = fmt.Sprintf("%v:", string(s))
	return
}
