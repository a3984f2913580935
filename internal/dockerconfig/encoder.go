package dockerconfig

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"pullSecretPublisher/internal/models"
)

// DockerConfigJSONKey is the conventional data key under which container
// tooling expects the encoded Docker config.
const DockerConfigJSONKey = ".dockerconfigjson"

// DefaultServer is the registry used when the caller does not name one.
const DefaultServer = "docker.io"

// InvalidInputError reports a required field that was empty or missing.
// It is always detected before any network call.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s must not be empty", e.Field)
}

// Build constructs the secret payload for the given registry server and
// credentials. It is a pure function: identical inputs yield byte-identical
// output. The inner DockerConfig is serialized compactly because the admin
// API stores the encoded blob as an opaque byte string that must match what
// a container runtime would produce.
func Build(server string, cred models.Credential, secretName string) (models.SecretPayload, error) {
	if err := Validate(server, cred, secretName); err != nil {
		return models.SecretPayload{}, err
	}

	encoded, err := encodeConfig(server, cred)
	if err != nil {
		return models.SecretPayload{}, err
	}

	return models.SecretPayload{
		Name: secretName,
		Data: map[string]string{
			DockerConfigJSONKey: encoded,
		},
	}, nil
}

// BuildKubernetesSecret constructs the same pull secret as a Kubernetes
// Secret of type kubernetes.io/dockerconfigjson, for installation into a
// cluster namespace. The .dockerconfigjson bytes are identical to the
// decoded payload Build produces.
func BuildKubernetesSecret(server string, cred models.Credential, secretName, namespace string) (*v1.Secret, error) {
	if err := Validate(server, cred, secretName); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(dockerConfigFor(server, cred))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize docker config: %w", err)
	}

	return &v1.Secret{
		ObjectMeta: metav1.ObjectMeta{
			Name:      secretName,
			Namespace: namespace,
		},
		Data: map[string][]byte{
			DockerConfigJSONKey: raw,
		},
		Type: v1.SecretTypeDockerConfigJson,
	}, nil
}

// Validate checks the required inputs without building anything, so callers
// can reject bad configuration before any network call.
func Validate(server string, cred models.Credential, secretName string) error {
	if server == "" {
		return &InvalidInputError{Field: "registry server"}
	}
	if cred.Username == "" {
		return &InvalidInputError{Field: "registry username"}
	}
	if cred.Secret == "" {
		return &InvalidInputError{Field: "registry password"}
	}
	if secretName == "" {
		return &InvalidInputError{Field: "secret name"}
	}
	return nil
}

func dockerConfigFor(server string, cred models.Credential) models.DockerConfig {
	auth := base64.StdEncoding.EncodeToString([]byte(cred.Username + ":" + cred.Secret))
	return models.DockerConfig{
		Auths: map[string]models.RegistryAuthEntry{
			server: {
				Username: cred.Username,
				Password: cred.Secret,
				Auth:     auth,
			},
		},
	}
}

// encodeConfig serializes the DockerConfig compactly and base64-encodes the
// resulting bytes.
func encodeConfig(server string, cred models.Credential) (string, error) {
	raw, err := json.Marshal(dockerConfigFor(server, cred))
	if err != nil {
		return "", fmt.Errorf("failed to serialize docker config: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
