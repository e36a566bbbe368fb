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

var _ Directive = (*sandboxDirective)(nil)

// SandboxValue is one sandbox allowance token
type SandboxValue string

const (
	AllowDownloads                      SandboxValue = "allow-downloads"
	AllowDownloadsWithoutUserActivation SandboxValue = "allow-downloads-without-user-activation"
	AllowForms                          SandboxValue = "allow-forms"
	AllowModals                         SandboxValue = "allow-modals"
	AllowOrientationLock                SandboxValue = "allow-orientation-lock"
	AllowPointerLock                    SandboxValue = "allow-pointer-lock"
	AllowPopups                         SandboxValue = "allow-popups"
	AllowPopupsToEscapeSandbox          SandboxValue = "allow-popups-to-escape-sandbox"
	AllowPresentation                   SandboxValue = "allow-presentation"
	AllowSameOrigin                     SandboxValue = "allow-same-origin"
	AllowScripts                        SandboxValue = "allow-scripts"
	AllowStorageAccessByUserActivation  SandboxValue = "allow-storage-access-by-user-activation"
	AllowTopNavigation                  SandboxValue = "allow-top-navigation"
	AllowTopNavigationByUserActivation  SandboxValue = "allow-top-navigation-by-user-activation"
	AllowTopNavigationToCustomProtocols SandboxValue = "allow-top-navigation-to-custom-protocols"
)

// SandboxAllowedList is an ordered list of sandbox allowances; an empty list
// renders as the empty string so the directive appears as the bare word
// "sandbox"
type SandboxAllowedList []SandboxValue

func (s SandboxAllowedList) Value() (value string) {
	for idx, v := range s {
		if idx > 0 {
			value += " "
		}
		value += string(v)
	}
	return
}

type sandboxDirective SandboxAllowedList

// NewSandbox constructs a sandbox directive; with no allowances the
// directive disallows everything and renders as the bare name
func NewSandbox(values ...SandboxValue) Directive {
	return sandboxDirective(values)
}

func (d sandboxDirective) DirectiveType() string {
	return "sandbox"
}

func (d sandboxDirective) Value() (value string, err error) {
	if value = "sandbox"; len(d) > 0 {
		value += " " + SandboxAllowedList(d).Value()
	}
	return
}
