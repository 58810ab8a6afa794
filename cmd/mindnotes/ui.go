package main

import (
	"context"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/AndrivA89/mindnotes/internal/app"
	"github.com/AndrivA89/mindnotes/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the desktop window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(_ context.Context, a *app.App) error {
			ui.New(fyneapp.NewWithID("io.mindnotes.desktop"), a).Run()
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
