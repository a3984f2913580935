package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pullSecretPublisher/internal/aicore"
	"pullSecretPublisher/internal/dockerconfig"
)

func newPublishCommand() *cobra.Command {
	var (
		username string
		password string
		registry string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Register the pull secret with the AI Core admin API",
		Long: `Fetch a bearer token via the OAuth2 client-credentials grant, build the
pull-secret payload, and register it with the AI Core administration API.
When a secret with the same name already exists it is updated in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				pw, err := readPassword()
				if err != nil {
					return err
				}
				password = pw
			}

			cfg := aicore.PublisherConfig{
				TokenURL:         viper.GetString("auth-url"),
				ClientID:         viper.GetString("client-id"),
				ClientSecret:     viper.GetString("client-secret"),
				APIURL:           viper.GetString("base-url"),
				ResourceGroup:    viper.GetString("resource-group"),
				RegistryServer:   registry,
				RegistryUsername: username,
				RegistryPassword: password,
				SecretName:       name,
			}

			result, err := aicore.NewPublisher(cfg).Publish(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			slog.Info("pull secret registered",
				"secret", result.SecretName,
				"outcome", string(result.Outcome),
				"resource_group", cfg.ResourceGroup,
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "registry username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "registry access token or password (prompted when omitted)")
	cmd.Flags().StringVar(&registry, "registry", dockerconfig.DefaultServer, "registry server")
	cmd.Flags().StringVar(&name, "name", "default-docker-registry-secret", "secret name")
	cmd.MarkFlagRequired("username")

	cmd.Flags().String("auth-url", "", "OAuth2 token endpoint (env AICORE_AUTH_URL)")
	cmd.Flags().String("client-id", "", "client-credentials grant client id (env AICORE_CLIENT_ID)")
	cmd.Flags().String("client-secret", "", "client-credentials grant client secret (env AICORE_CLIENT_SECRET)")
	cmd.Flags().String("base-url", "", "AI Core API base URL (env AICORE_BASE_URL)")
	cmd.Flags().String("resource-group", aicore.DefaultResourceGroup, "AI resource group (env AICORE_RESOURCE_GROUP)")

	viper.BindPFlag("auth-url", cmd.Flags().Lookup("auth-url"))
	viper.BindPFlag("client-id", cmd.Flags().Lookup("client-id"))
	viper.BindPFlag("client-secret", cmd.Flags().Lookup("client-secret"))
	viper.BindPFlag("base-url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("resource-group", cmd.Flags().Lookup("resource-group"))

	return cmd
}
