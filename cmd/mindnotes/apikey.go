package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndrivA89/mindnotes/internal/app"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage the API key of the configured summarizer",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		if !cfg.Summarizer.Provider.Delegated() {
			return fmt.Errorf("summarizer provider %q does not use an API key", cfg.Summarizer.Provider)
		}
		return nil
	},
}

var apikeySetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Store the API key locally",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.APIKeys.SetAPIKey(ctx, string(a.Provider()), args[0]); err != nil {
				return err
			}
			if strings.TrimSpace(args[0]) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key saved successfully.")
			return nil
		})
	},
}

var apikeyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.APIKeys.ClearAPIKey(ctx, string(a.Provider())); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "API key removed.")
			return nil
		})
	},
}

var apikeyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored API key, masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			key, err := a.APIKeys.APIKey(ctx, string(a.Provider()))
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "No %s API key set.\n", a.Provider())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a.Provider(), mask(key))
			return nil
		})
	},
}

func mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func init() {
	apikeyCmd.AddCommand(apikeySetCmd, apikeyClearCmd, apikeyShowCmd)
	rootCmd.AddCommand(apikeyCmd)
}
