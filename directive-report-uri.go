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

var _ Directive = (*reportUriDirective)(nil)

// ReportUris is an ordered list of opaque reporting endpoint URIs
type ReportUris []string

type reportUriDirective ReportUris

// NewReportUri constructs a report-uri directive; rendering with zero uris
// returns ErrEmptyDirective
func NewReportUri(uris ...string) Directive {
	return reportUriDirective(uris)
}

func (d reportUriDirective) DirectiveType() string {
	return "report-uri"
}

func (d reportUriDirective) Value() (value string, err error) {
	if len(d) == 0 {
		err = fmt.Errorf("%w: report-uri", ErrEmptyDirective)
		return
	}
	value = "report-uri " + strings.Join([]string(d), " ")
	return
}
