package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	authdom "issuehound/internal/services/auth/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Show authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := cli.auth.Status(cmd.Context())
		if err != nil {
			return err
		}
		switch {
		case st.Authenticated:
			fmt.Printf("signed in as %s", titleStyle.Render(st.User.Login))
			if len(st.Scopes) > 0 {
				fmt.Printf(" %s", dimStyle.Render("("+strings.Join(st.Scopes, ", ")+")"))
			}
			fmt.Println()
		case st.TokenPresent:
			fmt.Println("token stored but not verified, run 'issuehound auth token <token>' again")
		default:
			fmt.Println("anonymous, lower rate limits apply")
		}
		return nil
	},
}

var authTokenCmd = &cobra.Command{
	Use:   "token <token>",
	Short: "Store and verify a personal access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := cli.auth.SetToken(cmd.Context(), authdom.SetTokenInput{Token: args[0]})
		if err != nil {
			return err
		}
		fmt.Printf("verified, signed in as %s\n", st.User.Login)
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored token and identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.auth.ClearToken(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil
	},
}

func init() {
	authCmd.AddCommand(authTokenCmd)
	authCmd.AddCommand(authClearCmd)
	rootCmd.AddCommand(authCmd)
}
