// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/stratusline/ledger-service/internal/types"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
}

var createAccountCmd = &cobra.Command{
	Use:   "create [role] [display-name]",
	Short: "Create a child account one tier below the requester",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var account types.Account
		err := newAPIClient().do(http.MethodPost, "/api/v0/accounts", map[string]string{
			"role":         args[0],
			"display_name": args[1],
		}, &account)
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}

		fmt.Printf("Account created: %s (ID: %s, role: %s)\n", account.DisplayName, account.ID, account.Role)
		return nil
	},
}

var getAccountCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var account types.Account
		if err := newAPIClient().do(http.MethodGet, "/api/v0/accounts/"+args[0], nil, &account); err != nil {
			return fmt.Errorf("failed to get account: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROLE\tNAME\tSTATUS")
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", account.ID, account.Role, account.DisplayName, account.Status)
		return w.Flush()
	},
}

var listChildrenCmd = &cobra.Command{
	Use:   "children [id]",
	Short: "List the direct children of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var children []types.Account
		if err := newAPIClient().do(http.MethodGet, "/api/v0/accounts/"+args[0]+"/children", nil, &children); err != nil {
			return fmt.Errorf("failed to list children: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROLE\tNAME\tSTATUS")
		for _, a := range children {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.ID, a.Role, a.DisplayName, a.Status)
		}
		return w.Flush()
	},
}

var setStatusCmd = &cobra.Command{
	Use:   "set-status [id] [active|suspended]",
	Short: "Suspend or reactivate an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := newAPIClient().do(http.MethodPut, "/api/v0/accounts/"+args[0]+"/status", map[string]string{
			"status": args[1],
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to set status: %w", err)
		}

		fmt.Printf("Account %s is now %s\n", args[0], args[1])
		return nil
	},
}

var deleteAccountCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an account whose subtree owns no resources",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(http.MethodDelete, "/api/v0/accounts/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}

		fmt.Printf("Account %s deleted\n", args[0])
		return nil
	},
}

func init() {
	accountCmd.AddCommand(createAccountCmd, getAccountCmd, listChildrenCmd, setStatusCmd, deleteAccountCmd)
	rootCmd.AddCommand(accountCmd)
}
