package aicore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pullSecretPublisher/internal/models"
)

const (
	dockerRegistrySecretsPath = "/v2/admin/dockerRegistrySecrets"
	resourceGroupHeader       = "AI-Resource-Group"

	// DefaultResourceGroup is used when the caller does not name a tenant.
	DefaultResourceGroup = "default"
)

// Client talks to the AI Core administration API.
type Client struct {
	APIURL        string
	ResourceGroup string
	HTTPClient    *http.Client
}

// NewClient creates a Client for the given API base URL. An empty resource
// group falls back to "default".
func NewClient(apiURL, resourceGroup string) *Client {
	if resourceGroup == "" {
		resourceGroup = DefaultResourceGroup
	}
	return &Client{
		APIURL:        strings.TrimRight(apiURL, "/"),
		ResourceGroup: resourceGroup,
		HTTPClient:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateDockerRegistrySecret POSTs the payload to the secret collection.
// A 409 response is reported as ErrConflict so the caller can fall back to
// an update; any other failure is a SubmitError.
func (c *Client) CreateDockerRegistrySecret(ctx context.Context, token string, payload models.SecretPayload) error {
	status, body, err := c.send(ctx, http.MethodPost, c.APIURL+dockerRegistrySecretsPath, token, payload)
	if err != nil {
		return &SubmitError{Message: err.Error()}
	}
	if status == http.StatusConflict {
		return fmt.Errorf("secret %q: %w", payload.Name, ErrConflict)
	}
	if status < 200 || status >= 300 {
		return &SubmitError{StatusCode: status, Message: body}
	}
	return nil
}

// UpdateDockerRegistrySecret PATCHes the named secret with the same payload
// the create call carried.
func (c *Client) UpdateDockerRegistrySecret(ctx context.Context, token string, payload models.SecretPayload) error {
	status, body, err := c.send(ctx, http.MethodPatch, c.APIURL+dockerRegistrySecretsPath+"/"+payload.Name, token, payload)
	if err != nil {
		return &UpdateError{Message: err.Error()}
	}
	if status < 200 || status >= 300 {
		return &UpdateError{StatusCode: status, Message: body}
	}
	return nil
}

// send transmits the payload JSON with the auth and tenant headers and
// returns the response status and body.
func (c *Client) send(ctx context.Context, method, url, token string, payload models.SecretPayload) (int, string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, "", fmt.Errorf("failed to serialize secret payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(b))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(resourceGroupHeader, c.ResourceGroup)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}
	return resp.StatusCode, strings.TrimSpace(string(body)), nil
}
