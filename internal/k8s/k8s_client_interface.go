package k8s

import v1 "k8s.io/api/core/v1"

// SecretApplier defines the methods the apply command uses so the cluster
// client can be mocked in tests.
type SecretApplier interface {
	ApplyPullSecret(namespace string, secret *v1.Secret) error
	GetPullSecret(namespace, name string) (map[string][]byte, error)
}
