package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pullSecretPublisher/internal/models"
)

// AuthError reports a failed token acquisition: endpoint unreachable,
// non-success status, or a response missing the access_token field.
type AuthError struct {
	Endpoint   string
	StatusCode int
	Reason     string
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("token request to %s failed with status %d: %s", e.Endpoint, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("token request to %s failed: %s", e.Endpoint, e.Reason)
}

// TokenClient fetches bearer tokens from an OAuth2 token endpoint using the
// client-credentials grant.
type TokenClient struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
}

// tokenResponse is the JSON body the token endpoint returns.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// NewTokenClient creates a TokenClient with a default request timeout.
func NewTokenClient(tokenURL, clientID, clientSecret string) *TokenClient {
	return &TokenClient{
		TokenURL:     tokenURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch posts the client-credentials grant and returns the bearer token.
// The grant type is fixed; the request body is form-encoded.
func (c *TokenClient) Fetch(ctx context.Context) (models.AccessToken, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.ClientID)
	form.Set("client_secret", c.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return models.AccessToken{}, &AuthError{Endpoint: c.TokenURL, Reason: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return models.AccessToken{}, &AuthError{Endpoint: c.TokenURL, Reason: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.AccessToken{}, &AuthError{Endpoint: c.TokenURL, StatusCode: resp.StatusCode, Reason: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.AccessToken{}, &AuthError{
			Endpoint:   c.TokenURL,
			StatusCode: resp.StatusCode,
			Reason:     strings.TrimSpace(string(body)),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return models.AccessToken{}, &AuthError{Endpoint: c.TokenURL, StatusCode: resp.StatusCode, Reason: "invalid JSON in token response"}
	}
	if tr.AccessToken == "" {
		return models.AccessToken{}, &AuthError{Endpoint: c.TokenURL, StatusCode: resp.StatusCode, Reason: "response missing access_token"}
	}

	return models.AccessToken{
		Raw:       tr.AccessToken,
		ExpiresAt: tokenExpiry(tr.AccessToken),
	}, nil
}

// tokenExpiry reads the exp claim from the token without verifying the
// signature. XSUAA access tokens are JWTs; the expiry is only surfaced for
// logging, never enforced here. Opaque tokens yield a zero time.
func tokenExpiry(raw string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
