// Copyright 2025 Tom Barlow
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

// Package telemetry builds the runtime headers sent with every API request.
package telemetry

import (
	"maps"
	"net/http"
	"runtime"
	"strings"
	"sync"

	"github.com/tombee/paykit/internal/version"
)

// Implementation is the name the SDK reports in User-Agent.
const Implementation = "paykit-go"

// Header names.
const (
	HeaderUserAgent      = "User-Agent"
	HeaderContentType    = "Content-Type"
	HeaderAPIVersion     = "X-Paykit-Api-Version"
	HeaderLang           = "X-Paykit-Lang"
	HeaderPackageVersion = "X-Paykit-Package-Version"
	HeaderOS             = "X-Paykit-Os"
	HeaderArch           = "X-Paykit-Arch"
	HeaderRuntime        = "X-Paykit-Runtime"
	HeaderRuntimeVersion = "X-Paykit-Runtime-Version"
)

// ContentTypeJSON is the fixed request content type.
const ContentTypeJSON = "application/json"

// UserAgent returns "paykit-go/v<version>".
func UserAgent() string {
	return Implementation + "/v" + strings.TrimPrefix(version.Version, "v")
}

var headers = sync.OnceValue(func() map[string]string {
	return map[string]string{
		HeaderContentType:    ContentTypeJSON,
		HeaderUserAgent:      UserAgent(),
		HeaderAPIVersion:     version.APIVersion,
		HeaderLang:           "go",
		HeaderPackageVersion: version.Version,
		HeaderOS:             runtime.GOOS,
		HeaderArch:           runtime.GOARCH,
		HeaderRuntime:        runtime.Compiler,
		HeaderRuntimeVersion: runtime.Version(),
	}
})

// Headers returns a copy of the process-wide header set. The set is computed
// on first use.
func Headers() map[string]string {
	return maps.Clone(headers())
}

// Apply sets every telemetry header on h that is not already present.
func Apply(h http.Header) {
	for k, v := range headers() {
		if h.Get(k) == "" {
			h.Set(k, v)
		}
	}
}
