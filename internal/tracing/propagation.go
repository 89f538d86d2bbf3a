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

	"go.opentelemetry.io/otel/propagation"
)

var w3c = propagation.NewCompositeTextMapPropagator(
	propagation.TraceContext{},
	propagation.Baggage{},
)

// W3CPropagator returns the propagator used on outgoing requests: W3C
// Trace Context plus baggage.
func W3CPropagator() propagation.TextMapPropagator {
	return w3c
}

// InjectHTTPHeaders writes the span context and baggage in ctx to the
// traceparent, tracestate and baggage headers of req. A context without a
// recording span adds nothing.
func InjectHTTPHeaders(ctx context.Context, req *http.Request) {
	w3c.Inject(ctx, propagation.HeaderCarrier(req.Header))
}
