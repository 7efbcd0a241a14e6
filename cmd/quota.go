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

var quotaCmd = &cobra.Command{
	Use:   "quota",
	Short: "Inspect and administer quotas",
}

var getQuotaCmd = &cobra.Command{
	Use:   "get [account-id]",
	Short: "Show ceilings and usage for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var quota types.Quota
		if err := newAPIClient().do(http.MethodGet, "/api/v0/accounts/"+args[0]+"/quota", nil, &quota); err != nil {
			return fmt.Errorf("failed to get quota: %w", err)
		}

		return printQuota(&quota)
	},
}

var setQuotaCmd = &cobra.Command{
	Use:   "set [account-id]",
	Short: "Replace the quota ceilings of an account (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vps, _ := cmd.Flags().GetInt64("vps")
		cpu, _ := cmd.Flags().GetInt64("cpu")
		ram, _ := cmd.Flags().GetInt64("ram-gb")
		storage, _ := cmd.Flags().GetInt64("storage-gb")

		var quota types.Quota
		err := newAPIClient().do(http.MethodPut, "/api/v0/accounts/"+args[0]+"/quota", map[string]int64{
			"max_vps":        vps,
			"max_cpu":        cpu,
			"max_ram_gb":     ram,
			"max_storage_gb": storage,
		}, &quota)
		if err != nil {
			return fmt.Errorf("failed to set quota: %w", err)
		}

		return printQuota(&quota)
	},
}

var recomputeQuotaCmd = &cobra.Command{
	Use:   "recompute [account-id]",
	Short: "Rebuild usage counters from owned resources (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var quota types.Quota
		if err := newAPIClient().do(http.MethodPost, "/api/v0/accounts/"+args[0]+"/quota/recompute", nil, &quota); err != nil {
			return fmt.Errorf("failed to recompute quota: %w", err)
		}

		return printQuota(&quota)
	},
}

func printQuota(q *types.Quota) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIMENSION\tUSED\tMAX")
	fmt.Fprintf(w, "vps\t%d\t%d\n", q.Used.VPS, q.Max.VPS)
	fmt.Fprintf(w, "cpu\t%d\t%d\n", q.Used.CPU, q.Max.CPU)
	fmt.Fprintf(w, "ram_gb\t%d\t%d\n", q.Used.RAMGB, q.Max.RAMGB)
	fmt.Fprintf(w, "storage_gb\t%d\t%d\n", q.Used.StorageGB, q.Max.StorageGB)
	return w.Flush()
}

func init() {
	setQuotaCmd.Flags().Int64("vps", 0, "maximum VPS instances")
	setQuotaCmd.Flags().Int64("cpu", 0, "maximum vCPUs")
	setQuotaCmd.Flags().Int64("ram-gb", 0, "maximum RAM in GB")
	setQuotaCmd.Flags().Int64("storage-gb", 0, "maximum storage in GB")

	quotaCmd.AddCommand(getQuotaCmd, setQuotaCmd, recomputeQuotaCmd)
	rootCmd.AddCommand(quotaCmd)
}
