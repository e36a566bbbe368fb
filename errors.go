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
	"errors"
	"strings"
)

// ErrEmptyDirective is returned when rendering a directive whose argument
// list has no meaningful empty form (plugin-types, report-uri and
// trusted-types); an empty list for these is a construction bug and is never
// silently rendered as a bare directive name
var ErrEmptyDirective = errors.New("directive requires at least one value")

// ConfigError collects the individual failures encountered while parsing a
// content-security-policy configuration context
type ConfigError []string

func (e ConfigError) Error() (message string) {
	message = strings.Join(e, "; ")
	return
}

func (e ConfigError) addError(message string) ConfigError {
	return append(e, message)
}

func (e ConfigError) isEmpty() (empty bool) {
	empty = len(e) == 0
	return
}
