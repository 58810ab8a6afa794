package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AndrivA89/mindnotes/internal/app"
	"github.com/AndrivA89/mindnotes/internal/domain"
)

var (
	email    string
	password string
	demo     bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	Long:  `Sign in with an email and a password of at least six characters, or with --demo.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		creds := domain.Credentials{Email: email, Password: password}
		if demo {
			creds = domain.Credentials{Email: domain.DemoEmail, Password: domain.DemoPassword}
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			user, err := a.Sessions.Login(ctx, creds)
			if err != nil {
				return err
			}
			return welcome(ctx, cmd, a, user)
		})
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			user, err := a.Sessions.Register(ctx, domain.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}
			return welcome(ctx, cmd, a, user)
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := a.Sessions.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App) error {
			user, err := a.Sessions.CurrentUser(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (since %s)\n", user.Email, user.CreatedAt.Local().Format(dateLayout))
			return nil
		})
	},
}

func welcome(ctx context.Context, cmd *cobra.Command, a *app.App, user *domain.User) error {
	if _, err := a.Start(ctx, user); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s!\n", user.Email)
	return nil
}

func init() {
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVarP(&email, "email", "e", "", "Email address")
		c.Flags().StringVarP(&password, "password", "p", "", "Password")
	}
	loginCmd.Flags().BoolVar(&demo, "demo", false, "Use the demo account")
	registerCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
}
