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

package tracing

import (
	"context"
	"net/http"
	"testing"
)

func TestNewCorrelationID(t *testing.T) {
	id := NewCorrelationID()

	if !id.IsValid() {
		t.Errorf("expected valid UUID format, got %q", id)
	}
	if len(id) != 36 {
		t.Errorf("expected length 36, got %d", len(id))
	}
}

func TestCorrelationID_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		id    CorrelationID
		valid bool
	}{
		{"valid UUID", CorrelationID("550e8400-e29b-41d4-a716-446655440000"), true},
		{"valid UUID uppercase", CorrelationID("550E8400-E29B-41D4-A716-446655440000"), true},
		{"empty", CorrelationID(""), false},
		{"too short", CorrelationID("550e8400-e29b-41d4"), false},
		{"too long", CorrelationID("550e8400-e29b-41d4-a716-446655440000-extra"), false},
		{"missing hyphens", CorrelationID("550e8400e29b41d4a716446655440000"), false},
		{"invalid characters", CorrelationID("550e8400-e29b-41d4-a716-44665544000g"), false},
		{"spaces", CorrelationID("550e8400 e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestFromContext(t *testing.T) {
	id := CorrelationID("550e8400-e29b-41d4-a716-446655440000")
	ctx := ToContext(context.Background(), id)

	if got := FromContext(ctx); got != id {
		t.Errorf("FromContext() = %q, want %q", got, id)
	}
	if got := FromContextOrEmpty(context.Background()); got != "" {
		t.Errorf("FromContextOrEmpty() = %q, want empty", got)
	}
	if got := FromContext(context.Background()); !got.IsValid() {
		t.Errorf("FromContext() on empty context = %q, want a generated ID", got)
	}
}

func TestEnsureContext(t *testing.T) {
	ctx, id := EnsureContext(context.Background())
	if !id.IsValid() {
		t.Fatalf("expected generated ID, got %q", id)
	}

	again, same := EnsureContext(ctx)
	if same != id {
		t.Errorf("EnsureContext() replaced existing ID: %q != %q", same, id)
	}
	if FromContextOrEmpty(again) != id {
		t.Error("expected context to keep the ID")
	}
}

func TestInjectIntoRequest(t *testing.T) {
	id := NewCorrelationID()
	req, err := http.NewRequestWithContext(ToContext(context.Background(), id), http.MethodGet, "https://api.example.com", nil)
	if err != nil {
		t.Fatal(err)
	}

	InjectIntoRequest(req)

	if got := req.Header.Get(HeaderCorrelationID); got != id.String() {
		t.Errorf("header = %q, want %q", got, id)
	}
}

func TestRequestIDFromResponse(t *testing.T) {
	headers := func(kv ...string) http.Header {
		h := http.Header{}
		for i := 0; i+1 < len(kv); i += 2 {
			h.Set(kv[i], kv[i+1])
		}
		return h
	}

	tests := []struct {
		name   string
		header http.Header
		want   string
	}{
		{"request id", headers(HeaderRequestID, "req_1", HeaderCorrelationID, "c"), "req_1"},
		{"echoed correlation id", headers(HeaderCorrelationID, "c"), "c"},
		{"none", headers(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequestIDFromResponse(&http.Response{Header: tt.header}); got != tt.want {
				t.Errorf("RequestIDFromResponse() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := RequestIDFromResponse(nil); got != "" {
		t.Errorf("RequestIDFromResponse(nil) = %q", got)
	}
}
