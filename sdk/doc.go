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
Package sdk is the entry point of the paykit payments API client.

A Client bundles one service per API resource. Every service method sends a
request, classifies error responses into typed errors and hydrates the body
into the resource package's structs.

# Quick Start

	client, err := sdk.New(sdk.WithAPIKey(os.Getenv("PAYKIT_API_KEY")))
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close(context.Background())

	checkout, err := client.Checkouts.Get(ctx, "chk_123")
	if err != nil {
		var verr *errors.ValidationError
		if errors.As(err, &verr) {
			log.Printf("invalid fields: %v", verr.InvalidFields)
		}
		return err
	}
	fmt.Println(checkout.Status)

# Authentication

Use one of WithAPIKey, WithAccessToken or WithOAuth2ClientCredentials. New
fails with an *errors.ConfigError keyed "api_key" when none is given.
NewFromConfig reads the same settings from a Config, which LoadConfig fills
from ~/.config/paykit/config.yaml, PAYKIT_* environment variables and the
system keychain.

# Errors

Service methods return *errors.AuthenticationError, *errors.ValidationError,
*errors.APIError or *errors.ConnectionError. Client.ErrorDetails decodes the
error body of the first three into shared.Error values.

# Per-request options

Every service method accepts httpclient.RequestOption values:

	client.Transactions.Get(ctx, merchantCode, params,
		httpclient.WithTimeout(5*time.Second),
		httpclient.WithRetries(0),
	)
*/
package sdk
