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
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewProvider_None(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	_, span := p.Tracer().Start(context.Background(), "noop")
	span.End()
	if span.SpanContext().IsValid() {
		t.Error("expected no-op span")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewProvider_Console(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewProvider(context.Background(), Config{
		ServiceName:    "paykit-test",
		ServiceVersion: "0.0.1",
		Exporter:       ExporterConsole,
		Writer:         &buf,
	})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	_, span := p.Tracer().Start(context.Background(), "checkouts.get")
	span.End()

	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if !strings.Contains(buf.String(), "checkouts.get") {
		t.Errorf("expected span in console output, got %q", buf.String())
	}
}

func TestNewProvider_UnknownExporter(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Exporter: "zipkin"}); err == nil {
		t.Error("expected error for unknown exporter")
	}
}

func TestNewProviderFrom_Nil(t *testing.T) {
	p := NewProviderFrom(nil)
	if p.Tracer() == nil {
		t.Error("expected tracer")
	}
}
