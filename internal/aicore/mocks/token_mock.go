package mocks

import (
	"context"

	"pullSecretPublisher/internal/models"
)

// MockTokenFetcher implements auth.TokenFetcher for tests.
type MockTokenFetcher struct {
	// call flag for assertions
	FetchCalled int

	// forceable error (set in tests)
	FetchErr error

	Token models.AccessToken
}

func NewMockTokenFetcher(raw string) *MockTokenFetcher {
	return &MockTokenFetcher{Token: models.AccessToken{Raw: raw}}
}

func (m *MockTokenFetcher) Fetch(ctx context.Context) (models.AccessToken, error) {
	m.FetchCalled++
	if m.FetchErr != nil {
		return models.AccessToken{}, m.FetchErr
	}
	return m.Token, nil
}
