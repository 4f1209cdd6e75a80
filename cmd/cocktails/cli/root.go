// ABOUTME: Root cobra command and the flags shared by every subcommand
// ABOUTME: Resolves configuration from .env files, environment and flags into a library client

package cli

import (
	"fmt"
	"time"

	"cocktails-app-api/cocktails"
	"cocktails-app-api/core/interfaces"
	stdlogger "cocktails-app-api/infrastructure/logger/standard"
	"cocktails-app-api/pkg/config"

	"github.com/spf13/cobra"
)

// VersionInfo identifies the build
type VersionInfo struct {
	Version string
	Commit  string
}

// globalOptions holds the persistent flags after PersistentPreRunE resolved them
type globalOptions struct {
	baseURL  string
	timeout  time.Duration
	cacheTTL time.Duration
	logLevel string
	output   string
}

func NewRootCommand(info VersionInfo) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "cocktails",
		Short:         "TheCocktailDB command line client",
		Long:          "Search TheCocktailDB, look up drinks and narrow a result table by id, category, ingredients and instructions.",
		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "API root (default $COCKTAILDB_BASE_URL or the public endpoint)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "per-request timeout (default $COCKTAILDB_TIMEOUT or 10s)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "output format (table, json)")

	cmd.Version = fmt.Sprintf("%s.%s", info.Version, info.Commit)

	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewByIngredientCommand(opts))
	cmd.AddCommand(NewByAlcoholicCommand(opts))
	cmd.AddCommand(NewListsCommand(opts))

	return cmd
}

// resolve fills unset flags from the environment
func (o *globalOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	if !cmd.Flags().Changed("base-url") {
		o.baseURL = cfg.CocktailDB.BaseURL
	}
	if !cmd.Flags().Changed("timeout") {
		o.timeout = cfg.CocktailDB.Timeout
	}
	o.cacheTTL = cfg.CocktailDB.CacheTTL

	switch o.output {
	case "table", "json":
	default:
		return fmt.Errorf("unsupported output format %q", o.output)
	}
	return nil
}

// newClient builds a library client writing logs to the command's stderr
func (o *globalOptions) newClient(cmd *cobra.Command, view interfaces.View) (*cocktails.Client, error) {
	logger := stdlogger.NewLogger(stdlogger.Options{Level: o.logLevel})
	logger.SetOutput(cmd.ErrOrStderr())

	return cocktails.NewClient(
		cocktails.WithBaseURL(o.baseURL),
		cocktails.WithTimeout(o.timeout),
		cocktails.WithCacheTTL(o.cacheTTL),
		cocktails.WithLogger(logger),
		cocktails.WithView(view),
	)
}
