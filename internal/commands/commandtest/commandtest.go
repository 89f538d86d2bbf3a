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

// Package commandtest runs CLI commands against a fake API server.
package commandtest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"

	"github.com/tombee/paykit/internal/cli"
)

// TestAPIKey is the API key commands authenticate with.
const TestAPIKey = "sk_test_commandtest"

// Request is a request received by a Server.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// Server is a fake API recording every request it serves.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// NewServer starts a Server answering every request with status and body.
func NewServer(t *testing.T, status int, body string) *Server {
	t.Helper()
	return NewServerFunc(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// NewServerFunc starts a Server that delegates to handler.
func NewServerFunc(t *testing.T, handler http.HandlerFunc) *Server {
	t.Helper()
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(body),
		})
		s.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

// Requests returns the requests served so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Isolate points configuration and credential lookup at empty test
// locations: a temporary config dir, a mock keychain and no PAYKIT_*
// variables besides the test API key.
func Isolate(t *testing.T) {
	t.Helper()
	keyring.MockInit()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, name := range []string{
		"PAYKIT_ACCESS_TOKEN", "PAYKIT_BASE_URL", "PAYKIT_MERCHANT_CODE",
		"PAYKIT_CLIENT_ID", "PAYKIT_CLIENT_SECRET", "PAYKIT_TOKEN_URL",
		"PAYKIT_REFRESH_TOKEN", "PAYKIT_CA_BUNDLE", "PAYKIT_TIMEOUT",
		"PAYKIT_CONNECT_TIMEOUT", "PAYKIT_RETRIES", "PAYKIT_RETRY_BACKOFF",
		"PAYKIT_TRACING_EXPORTER", "OTEL_EXPORTER_OTLP_ENDPOINT",
		"PAYKIT_LOG_LEVEL", "LOG_LEVEL", "LOG_FORMAT", "LOG_SOURCE", "PAYKIT_DEBUG",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("PAYKIT_API_KEY", TestAPIKey)
	t.Setenv("PAYKIT_RETRIES", "0")
}

// Run executes cmd under a fresh root command with args, pointed at
// baseURL when it is not empty. It returns what the command wrote to
// stdout.
func Run(t *testing.T, cmd *cobra.Command, baseURL string, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCommand()
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if baseURL != "" {
		args = append(args, "--base-url", baseURL)
	}
	root.SetArgs(args)

	err := root.Execute()
	if stderr.Len() > 0 {
		t.Logf("stderr: %s", stderr.String())
	}
	return stdout.String(), err
}
