package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"pullSecretPublisher/internal/dockerconfig"
	"pullSecretPublisher/internal/k8s"
	"pullSecretPublisher/internal/models"
)

// seam for tests
var newK8sClient = func(ctx context.Context) (k8s.SecretApplier, error) {
	return k8s.NewClient(ctx)
}

func newApplyCommand() *cobra.Command {
	var (
		username  string
		password  string
		registry  string
		name      string
		namespace string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Install the pull secret into a Kubernetes namespace",
		Long: `Build the pull secret as a kubernetes.io/dockerconfigjson Secret and
create it in the target namespace, updating it in place when it already
exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := readPassword()
				if err != nil {
					return err
				}
				password = pw
			}

			cred := models.Credential{Username: username, Secret: password}
			secret, err := dockerconfig.BuildKubernetesSecret(registry, cred, name, namespace)
			if err != nil {
				return err
			}

			client, err := newK8sClient(cmd.Context())
			if err != nil {
				return err
			}

			if err := client.ApplyPullSecret(namespace, secret); err != nil {
				return err
			}

			slog.Info("pull secret applied", "secret", name, "namespace", namespace)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "registry username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "registry access token or password (prompted when omitted)")
	cmd.Flags().StringVar(&registry, "registry", dockerconfig.DefaultServer, "registry server")
	cmd.Flags().StringVar(&name, "name", "docker-registry-secret", "secret name")
	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "target namespace")
	cmd.MarkFlagRequired("username")

	return cmd
}
