package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skillsync-client/internal/session"
	"skillsync-client/pkg/apiclient"
)

func newRegisterCommand(a *app) *cobra.Command {
	var req apiclient.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := a.client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Password")
	cmd.Flags().StringVar(&req.Role, "role", apiclient.RoleUser, "Role: ROLE_USER or ROLE_RECRUITER")
	cmd.Flags().StringVar(&req.Email, "email", "", "Email (defaults to <username>@example.com)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLoginCommand(a *app) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			resp, err := a.client.Login(ctx, username, password)
			if err != nil {
				return err
			}
			if resp == nil || resp.Token == "" {
				return fmt.Errorf("login succeeded but no token was returned")
			}
			if err := session.Save(ctx, a.store, resp.Token, resp.Role); err != nil {
				return err
			}
			a.log.Info("Logged in", map[string]interface{}{"username": username, "role": resp.Role})
			return a.print(cmd.OutOrStdout(), map[string]string{"username": username, "role": resp.Role})
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return session.Clear(cmd.Context(), a.store)
		},
	}
}

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the claims of the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := a.requireToken(cmd.Context())
			if err != nil {
				return err
			}
			claims, err := session.Inspect(tok)
			if err != nil {
				return err
			}
			if claims.Role == "" {
				if role, err := a.store.Get(cmd.Context(), session.KeyRole); err == nil {
					claims.Role = role
				}
			}
			return a.print(cmd.OutOrStdout(), claims)
		},
	}
}
