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

var _ Directive = (*reportToDirective)(nil)

type reportToDirective string

// NewReportTo constructs a report-to directive naming a reporting endpoint
// group
func NewReportTo(groupName string) Directive {
	return reportToDirective(groupName)
}

func (d reportToDirective) DirectiveType() string {
	return "report-to"
}

func (d reportToDirective) Value() (value string, err error) {
	value = fmt.Sprintf("report-to %v", string(d))
	return
}
