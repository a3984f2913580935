package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pullsecret",
		Short: "Generate and register Docker registry pull secrets for SAP AI Core",
		Long: `pullsecret builds the Docker registry pull-secret payload a private
registry needs and either writes it locally, registers it with the AI Core
administration API, or installs it into a Kubernetes namespace.

Credentials for the AI Core API can be supplied via flags or AICORE_*
environment variables (AICORE_AUTH_URL, AICORE_CLIENT_ID,
AICORE_CLIENT_SECRET, AICORE_BASE_URL, AICORE_RESOURCE_GROUP).`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		newGenerateCommand(),
		newPublishCommand(),
		newApplyCommand(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on any fatal error.
func Execute() {
	cobra.OnInitialize(initConfig)

	if err := NewRootCommand().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// initConfig wires AICORE_* environment variables as flag defaults.
func initConfig() {
	viper.SetEnvPrefix("AICORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
