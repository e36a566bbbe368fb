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

var _ Source = (*HostSource)(nil)

const HostSourceType string = "host-source"

// HostSource is a host source expression such as "https://example.com",
// "*.example.com" or "mail.example.com:443"; the value is rendered verbatim,
// no quoting and no syntax checking
type HostSource string

func NewHostSource(host string) (value HostSource) {
	value = HostSource(host)
	return
}

func (s HostSource) SourceType() string {
	return HostSourceType
}

func (s HostSource) Value() (value string) {
	value = string(s)
	return
}
