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

package httpclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts attempts by method and status class
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paykit_http_requests_total",
			Help: "Total HTTP attempts by method and status class",
		},
		[]string{"method", "status"},
	)

	// requestDuration tracks attempt latency
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "paykit_http_request_duration_seconds",
			Help:    "HTTP attempt duration in seconds by method",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// retriesTotal counts retries by method and the reason for retrying
	retriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paykit_http_retries_total",
			Help: "Total HTTP retries by method and reason",
		},
		[]string{"method", "reason"},
	)
)

// recordRequest records one attempt.
func recordRequest(method, status string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(method, status).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// recordRetry records one retry.
func recordRetry(method, reason string) {
	retriesTotal.WithLabelValues(method, reason).Inc()
}
