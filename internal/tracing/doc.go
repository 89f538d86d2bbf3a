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

/*
Package tracing carries request correlation IDs and sets up the
OpenTelemetry tracer used around API calls.

# Providers

NewProvider builds a tracer provider from a Config. The exporter is one of
"none", "console", "otlp" (gRPC) or "otlp-http":

	tp, err := tracing.NewProvider(ctx, tracing.Config{
	    ServiceVersion: version.Version,
	    Exporter:       tracing.ExporterOTLP,
	    Endpoint:       "localhost:4317",
	    SampleRate:     0.1,
	})
	defer tp.Shutdown(ctx)

Applications that already own a tracer provider wrap it with
NewProviderFrom instead.

# Propagation

Every outgoing request carries the W3C traceparent header of its client
span, so calls show up under the caller's trace in the API's tracing.

# Correlation IDs

Each SDK call gets a correlation ID, sent as X-Correlation-ID on every
attempt including retries:

	ctx, id := tracing.EnsureContext(ctx)
	logger.Info("calling API", "correlation_id", id)
*/
package tracing
