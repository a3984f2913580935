package k8s

import (
	"context"
	"fmt"

	v1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ApplyPullSecret installs the pull secret into the namespace. It creates
// the secret and, when one with that name already exists, updates it in
// place — the same conflict-as-update semantics the remote publisher uses.
func (c *Client) ApplyPullSecret(namespace string, secret *v1.Secret) error {
	ctx := context.Background()
	if c.Context != nil {
		ctx = c.Context
	}

	_, err := c.ClientSet.CoreV1().Secrets(namespace).Create(ctx, secret, metav1.CreateOptions{})
	if err == nil {
		return nil
	}
	if !apierrors.IsAlreadyExists(err) {
		return fmt.Errorf("failed to create pull secret %q: %w", secret.Name, err)
	}

	existing, err := c.ClientSet.CoreV1().Secrets(namespace).Get(ctx, secret.Name, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("failed to get existing pull secret %q: %w", secret.Name, err)
	}

	existing.Data = secret.Data
	existing.Type = secret.Type

	_, err = c.ClientSet.CoreV1().Secrets(namespace).Update(ctx, existing, metav1.UpdateOptions{})
	if err != nil {
		return fmt.Errorf("failed to update pull secret %q: %w", secret.Name, err)
	}
	return nil
}

// GetPullSecret retrieves a pull secret's data from the namespace.
func (c *Client) GetPullSecret(namespace, name string) (map[string][]byte, error) {
	ctx := context.Background()
	if c.Context != nil {
		ctx = c.Context
	}

	secret, err := c.ClientSet.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get secret: %w", err)
	}
	return secret.Data, nil
}
