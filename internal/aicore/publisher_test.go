package aicore

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pullSecretPublisher/internal/aicore/mocks"
	"pullSecretPublisher/internal/auth"
	"pullSecretPublisher/internal/dockerconfig"
	"pullSecretPublisher/internal/models"
)

// recordingStore is a fake admin API capturing every request it receives.
type recordingStore struct {
	createStatus int
	updateStatus int

	posts   [][]byte
	patches [][]byte

	lastAuth     string
	lastGroup    string
	lastPostPath string
	lastPatch    string
}

func (s *recordingStore) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.lastAuth = r.Header.Get("Authorization")
		s.lastGroup = r.Header.Get("AI-Resource-Group")

		switch r.Method {
		case http.MethodPost:
			s.posts = append(s.posts, body)
			s.lastPostPath = r.URL.Path
			w.WriteHeader(s.createStatus)
		case http.MethodPatch:
			s.patches = append(s.patches, body)
			s.lastPatch = r.URL.Path
			w.WriteHeader(s.updateStatus)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
}

func publishConfig(apiURL string) PublisherConfig {
	return PublisherConfig{
		APIURL:           apiURL,
		ResourceGroup:    "team-a",
		RegistryServer:   "docker.io",
		RegistryUsername: "alice",
		RegistryPassword: "tok123",
		SecretName:       "pull-secret",
	}
}

// Testing - create succeeds on first try
func TestPublisher_Publish_Created(t *testing.T) {
	store := &recordingStore{createStatus: http.StatusCreated}
	ts := store.server()
	defer ts.Close()

	p := &Publisher{
		Tokens: mocks.NewMockTokenFetcher("bearer-token"),
		API:    NewClient(ts.URL, "team-a"),
	}

	result, err := p.Publish(context.Background(), publishConfig(ts.URL))
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeCreated, result.Outcome)
	assert.Equal(t, "pull-secret", result.SecretName)
	assert.Len(t, store.posts, 1)
	assert.Empty(t, store.patches)
	assert.Equal(t, "/v2/admin/dockerRegistrySecrets", store.lastPostPath)
	assert.Equal(t, "Bearer bearer-token", store.lastAuth)
	assert.Equal(t, "team-a", store.lastGroup)
}

// Testing - 409 on create falls back to exactly one update with identical bytes
func TestPublisher_Publish_ConflictFallback(t *testing.T) {
	store := &recordingStore{createStatus: http.StatusConflict, updateStatus: http.StatusOK}
	ts := store.server()
	defer ts.Close()

	p := &Publisher{
		Tokens: mocks.NewMockTokenFetcher("bearer-token"),
		API:    NewClient(ts.URL, "team-a"),
	}

	result, err := p.Publish(context.Background(), publishConfig(ts.URL))
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeUpdated, result.Outcome)

	// exactly one POST and one PATCH, both carrying the same payload bytes
	require.Len(t, store.posts, 1)
	require.Len(t, store.patches, 1)
	assert.Equal(t, store.posts[0], store.patches[0])

	// update path appends the secret name
	assert.Equal(t, "/v2/admin/dockerRegistrySecrets/pull-secret", store.lastPatch)
}

// Testing - token failure aborts before any secret-store call
func TestPublisher_Publish_AuthErrorShortCircuits(t *testing.T) {
	store := &recordingStore{createStatus: http.StatusCreated}
	ts := store.server()
	defer ts.Close()

	tokens := mocks.NewMockTokenFetcher("")
	tokens.FetchErr = &auth.AuthError{Endpoint: "https://auth.example.com", StatusCode: http.StatusUnauthorized}

	p := &Publisher{Tokens: tokens, API: NewClient(ts.URL, "")}

	_, err := p.Publish(context.Background(), publishConfig(ts.URL))
	require.Error(t, err)

	var authErr *auth.AuthError
	assert.True(t, errors.As(err, &authErr), "expected AuthError, got %T", err)
	assert.Empty(t, store.posts, "secret-store API must not be called")
	assert.Empty(t, store.patches)
}

// Testing - non-conflict create failure is terminal
func TestPublisher_Publish_SubmitError(t *testing.T) {
	store := &recordingStore{createStatus: http.StatusForbidden}
	ts := store.server()
	defer ts.Close()

	p := &Publisher{
		Tokens: mocks.NewMockTokenFetcher("bearer-token"),
		API:    NewClient(ts.URL, ""),
	}

	_, err := p.Publish(context.Background(), publishConfig(ts.URL))
	require.Error(t, err)

	var submitErr *SubmitError
	require.True(t, errors.As(err, &submitErr))
	assert.Equal(t, http.StatusForbidden, submitErr.StatusCode)
	assert.Empty(t, store.patches, "no update attempt after a non-conflict failure")
}

// Testing - failed conflict update is terminal
func TestPublisher_Publish_UpdateError(t *testing.T) {
	store := &recordingStore{createStatus: http.StatusConflict, updateStatus: http.StatusInternalServerError}
	ts := store.server()
	defer ts.Close()

	p := &Publisher{
		Tokens: mocks.NewMockTokenFetcher("bearer-token"),
		API:    NewClient(ts.URL, ""),
	}

	_, err := p.Publish(context.Background(), publishConfig(ts.URL))
	require.Error(t, err)

	var updateErr *UpdateError
	require.True(t, errors.As(err, &updateErr))
	assert.Equal(t, http.StatusInternalServerError, updateErr.StatusCode)
	require.Len(t, store.patches, 1, "exactly one update attempt")
}

// Testing - bad input is rejected before the token fetch
func TestPublisher_Publish_InvalidInput(t *testing.T) {
	tokens := mocks.NewMockTokenFetcher("bearer-token")
	p := &Publisher{Tokens: tokens, API: NewClient("http://unused", "")}

	cfg := publishConfig("http://unused")
	cfg.RegistryUsername = ""

	_, err := p.Publish(context.Background(), cfg)
	require.Error(t, err)

	var invalid *dockerconfig.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
	assert.Zero(t, tokens.FetchCalled, "token endpoint must not be called")
}

// Testing - empty registry server falls back to docker.io
func TestPublisher_Publish_DefaultServer(t *testing.T) {
	store := &recordingStore{createStatus: http.StatusOK}
	ts := store.server()
	defer ts.Close()

	p := &Publisher{
		Tokens: mocks.NewMockTokenFetcher("bearer-token"),
		API:    NewClient(ts.URL, ""),
	}

	cfg := publishConfig(ts.URL)
	cfg.RegistryServer = ""

	_, err := p.Publish(context.Background(), cfg)
	require.NoError(t, err)

	require.Len(t, store.posts, 1)
	assert.Contains(t, string(store.posts[0]), `"docker.io"`)
}
