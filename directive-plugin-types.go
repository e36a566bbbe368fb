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

var _ Directive = (*pluginTypesDirective)(nil)

// PluginType is one MIME type and subtype pair, rendered as "type/subtype"
type PluginType struct {
	Type    string
	Subtype string
}

func NewPluginType(mimeType, mimeSubtype string) (value PluginType) {
	value = PluginType{
		Type:    mimeType,
		Subtype: mimeSubtype,
	}
	return
}

func (p PluginType) Value() (value string) {
	value = p.Type + "/" + p.Subtype
	return
}

// Plugins is an ordered list of plugin MIME type pairs
type Plugins []PluginType

type pluginTypesDirective Plugins

// NewPluginTypes constructs a plugin-types directive; rendering with zero
// plugins returns ErrEmptyDirective
func NewPluginTypes(plugins ...PluginType) Directive {
	return pluginTypesDirective(plugins)
}

func (d pluginTypesDirective) DirectiveType() string {
	return "plugin-types"
}

func (d pluginTypesDirective) Value() (value string, err error) {
	if len(d) == 0 {
		err = fmt.Errorf("%w: plugin-types", ErrEmptyDirective)
		return
	}
	value = "plugin-types"
	for _, plugin := range d {
		value += " " + plugin.Value()
	}
	return
}
