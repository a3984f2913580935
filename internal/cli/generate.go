package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"pullSecretPublisher/internal/dockerconfig"
	"pullSecretPublisher/internal/models"
)

type generateOptions struct {
	username  string
	password  string
	registry  string
	name      string
	output    string
	format    string
	namespace string
}

func newGenerateCommand() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a registry pull-secret payload and write it locally",
		Long: `Build the pull-secret payload for a Docker registry and write it to a
file or stdout without contacting any remote API.

With --format json (the default) the AI Core secret payload is written.
With --format k8s a Kubernetes Secret manifest of type
kubernetes.io/dockerconfigjson is written instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "registry username")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "registry access token or password (prompted when omitted)")
	cmd.Flags().StringVar(&opts.registry, "registry", dockerconfig.DefaultServer, "registry server")
	cmd.Flags().StringVar(&opts.name, "name", "docker-registry-secret", "secret name")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.format, "format", "json", "output format: json or k8s")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "default", "target namespace for the k8s manifest")
	cmd.MarkFlagRequired("username")

	return cmd
}

func runGenerate(opts *generateOptions) error {
	if opts.password == "" {
		pw, err := readPassword()
		if err != nil {
			return err
		}
		opts.password = pw
	}

	cred := models.Credential{Username: opts.username, Secret: opts.password}

	var artifact []byte
	var err error
	switch opts.format {
	case "json":
		artifact, err = renderPayload(opts.registry, cred, opts.name)
	case "k8s":
		artifact, err = renderManifest(opts.registry, cred, opts.name, opts.namespace)
	default:
		return fmt.Errorf("unknown format %q (expected json or k8s)", opts.format)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Println(string(artifact))
		return nil
	}

	if err := writeArtifact(opts.output, artifact); err != nil {
		return err
	}
	slog.Info("wrote pull secret", "file", opts.output, "secret", opts.name)
	return nil
}

// renderPayload builds the AI Core secret payload as indented JSON.
func renderPayload(server string, cred models.Credential, secretName string) ([]byte, error) {
	payload, err := dockerconfig.Build(server, cred, secretName)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(payload, "", "  ")
}

// renderManifest builds a Kubernetes Secret manifest as YAML.
func renderManifest(server string, cred models.Credential, secretName, namespace string) ([]byte, error) {
	secret, err := dockerconfig.BuildKubernetesSecret(server, cred, secretName, namespace)
	if err != nil {
		return nil, err
	}
	secret.TypeMeta = metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"}
	return yaml.Marshal(secret)
}

// writeArtifact writes the artifact UTF-8 encoded with no trailing newline.
func writeArtifact(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
