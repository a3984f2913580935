package aicore

import (
	"context"

	"pullSecretPublisher/internal/models"
)

// SecretAPI defines the admin-API methods the publisher uses, so the remote
// store can be mocked in tests.
type SecretAPI interface {
	CreateDockerRegistrySecret(ctx context.Context, token string, payload models.SecretPayload) error
	UpdateDockerRegistrySecret(ctx context.Context, token string, payload models.SecretPayload) error
}
