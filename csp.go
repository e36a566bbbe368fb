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

// Package csp provides a typed builder for Content-Security-Policy header
// values.
//
// Policies are assembled from strongly typed pieces (directives, source
// expressions, sandbox allowances, plugin types) and rendered to the exact
// string syntax the CSP specification requires, which avoids the usual
// hand-concatenation typos. This package deliberately does not validate
// policy semantics: contradictory or nonsensical directive combinations are
// rendered happily, and all caller-supplied strings (hosts, schemes, nonces,
// digests, URIs) are emitted verbatim without escaping or syntax checking.
//
// Writing the rendered value to an HTTP response is the caller's concern:
//
//	policy := csp.NewPolicy(
//		csp.NewDefaultSrc(csp.Self, csp.NewSchemeSource("https")),
//		csp.NewObjectSrc(csp.None),
//	)
//	if value, err := policy.Value(); err == nil {
//		w.Header().Set(csp.ContentSecurityPolicyHeader, value)
//	}
package csp

const (
	// ContentSecurityPolicyHeader is the enforcing response header name
	ContentSecurityPolicyHeader = "Content-Security-Policy"
	// ContentSecurityPolicyReportOnlyHeader is the report-only variant
	ContentSecurityPolicyReportOnlyHeader = "Content-Security-Policy-Report-Only"
)
