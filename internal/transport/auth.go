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

package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	paykiterrors "github.com/tombee/paykit/pkg/errors"
)

// Authenticator supplies the bearer token for a request.
type Authenticator interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken authenticates with a fixed API key or access token.
type StaticToken string

// Token implements Authenticator.
func (s StaticToken) Token(context.Context) (string, error) {
	if s == "" {
		return "", &paykiterrors.ConfigError{Key: "api_key", Reason: "no API key or access token configured"}
	}
	return string(s), nil
}

// OAuth2Config configures the OAuth2 client credentials flow.
type OAuth2Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string

	// RefreshToken switches to the refresh token flow when set.
	RefreshToken string
}

// Validate checks the required fields.
func (c OAuth2Config) Validate() error {
	switch {
	case c.ClientID == "":
		return &paykiterrors.ConfigError{Key: "client_id", Reason: "is required for OAuth2"}
	case c.ClientSecret == "":
		return &paykiterrors.ConfigError{Key: "client_secret", Reason: "is required for OAuth2"}
	case c.TokenURL == "":
		return &paykiterrors.ConfigError{Key: "token_url", Reason: "is required for OAuth2"}
	case !strings.HasPrefix(c.TokenURL, "https://") && !strings.HasPrefix(c.TokenURL, "http://"):
		return &paykiterrors.ConfigError{Key: "token_url", Reason: "must start with http:// or https://"}
	}
	return nil
}

// OAuth2Authenticator fetches and caches access tokens, refreshing them
// shortly before they expire.
type OAuth2Authenticator struct {
	source oauth2.TokenSource
}

// NewOAuth2Authenticator builds an Authenticator for cfg. Token requests go
// through client when it is non-nil.
func NewOAuth2Authenticator(cfg OAuth2Config, client *http.Client) (*OAuth2Authenticator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx := context.Background()
	if client != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, client)
	}

	var source oauth2.TokenSource
	if cfg.RefreshToken != "" {
		oauthConfig := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauth2.Endpoint{TokenURL: cfg.TokenURL},
			Scopes:       cfg.Scopes,
		}
		source = oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	} else {
		ccConfig := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
		}
		source = ccConfig.TokenSource(ctx)
	}

	return &OAuth2Authenticator{source: oauth2.ReuseTokenSource(nil, source)}, nil
}

// Token implements Authenticator. A rejected token request surfaces as an
// *errors.AuthenticationError.
func (a *OAuth2Authenticator) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tok, err := a.source.Token()
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) {
			status := 0
			if re.Response != nil {
				status = re.Response.StatusCode
			}
			msg := re.ErrorDescription
			if msg == "" {
				msg = re.ErrorCode
			}
			if msg == "" {
				msg = "token request rejected"
			}
			return "", &paykiterrors.AuthenticationError{StatusCode: status, Message: msg}
		}
		return "", paykiterrors.Wrap(err, "failed to acquire OAuth2 token")
	}
	return tok.AccessToken, nil
}
