// Package cli implements the eventsctl command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"aquaevents/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		output, _ := rootCmd.PersistentFlags().GetString("output")
		if output == "json" {
			errObj := map[string]interface{}{
				"error": err.Error(),
			}
			var de domain.DomainError
			if errors.As(err, &de) {
				errObj["code"] = de.Code()
			}
			_ = printJSON(os.Stdout, errObj)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		dbPath  string
		output  string
		profile string
	)

	rootCmd := &cobra.Command{
		Use:           "eventsctl",
		Short:         "Aquaculture event management CLI",
		Long:          "Command-line interface for managing users, companies, events, invitations and registrations.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Load config from profile if flags/env not set
			cfg, err := LoadUserConfig()
			if err != nil {
				// Config file is optional
				cfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}

			p := cfg.ActiveProfile(profile)

			// Apply precedence: flag > env > profile > default
			if !cmd.Flags().Changed("db") {
				if v := os.Getenv("EVENTS_DB_PATH"); v != "" {
					dbPath = v
				} else if p.DBPath != "" {
					dbPath = p.DBPath
				}
			}
			if !cmd.Flags().Changed("output") {
				if v := os.Getenv("EVENTS_OUTPUT"); v != "" {
					output = v
				} else if p.Output != "" {
					output = p.Output
				}
			}
			if p.LogLevel != "" && os.Getenv("LOG_LEVEL") == "" {
				_ = os.Setenv("LOG_LEVEL", p.LogLevel)
			}

			return validateOutputFormat(output)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database file")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Config profile to use")

	rootCmd.AddCommand(newUsersCmd(&dbPath))
	rootCmd.AddCommand(newCompaniesCmd(&dbPath))
	rootCmd.AddCommand(newCategoriesCmd(&dbPath))
	rootCmd.AddCommand(newEventsCmd(&dbPath))
	rootCmd.AddCommand(newInvitationsCmd(&dbPath))
	rootCmd.AddCommand(newRegistrationsCmd(&dbPath))

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
