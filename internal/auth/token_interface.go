package auth

import (
	"context"

	"pullSecretPublisher/internal/models"
)

// TokenFetcher is the piece of TokenClient the publisher depends on, so it
// can be mocked in tests.
type TokenFetcher interface {
	Fetch(ctx context.Context) (models.AccessToken, error)
}
