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

// Package calltest provides a scripted transport for testing services
// without a network.
package calltest

import (
	"context"
	"sync"

	"github.com/tombee/paykit/internal/transport"
	"github.com/tombee/paykit/pkg/hydrate"
	"github.com/tombee/paykit/pkg/jsonvalue"
	"github.com/tombee/paykit/pkg/response"
)

// Transport replies to every request with the same response and records
// what was sent.
type Transport struct {
	mu       sync.Mutex
	resp     *response.Response
	err      error
	requests []*transport.Request
}

// Reply returns a Transport answering with status and the JSON document
// body. An empty body answers with no body.
func Reply(status int, body string) *Transport {
	v, err := jsonvalue.Parse([]byte(body))
	if err != nil {
		panic("calltest: invalid JSON body: " + err.Error())
	}
	return &Transport{resp: &response.Response{StatusCode: status, Body: v}}
}

// Fail returns a Transport failing every request with err.
func Fail(err error) *Transport {
	return &Transport{err: err}
}

// Send implements transport.Transport.
func (t *Transport) Send(_ context.Context, req *transport.Request) (*response.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.requests = append(t.requests, req)
	if t.err != nil {
		return nil, t.err
	}
	return t.resp, nil
}

// Requests returns the recorded requests.
func (t *Transport) Requests() []*transport.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*transport.Request, len(t.requests))
	copy(out, t.requests)
	return out
}

// Last returns the most recent request, or nil.
func (t *Transport) Last() *transport.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

// Decoder returns a response decoder over a fresh registry holding the
// given type tables.
func Decoder(tables ...[]*hydrate.TargetType) *response.Decoder {
	registry := hydrate.NewRegistry()
	for _, types := range tables {
		registry.MustRegister(types...)
	}
	return response.NewDecoder(hydrate.New(registry))
}
