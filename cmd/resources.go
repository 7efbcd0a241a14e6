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

var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "Manage provisioned resources",
}

var listResourcesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resources visible to the requester",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var resources []types.OwnedResource
		if err := newAPIClient().do(http.MethodGet, "/api/v0/resources", nil, &resources); err != nil {
			return fmt.Errorf("failed to list resources: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEXTERNAL\tOWNER\tCREATOR\tSTATE\tVPS\tCPU\tRAM_GB\tSTORAGE_GB")
		for _, r := range resources {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
				r.ID, r.ExternalID, r.OwnerID, r.CreatorID, r.State,
				r.Shape.VPS, r.Shape.CPU, r.Shape.RAMGB, r.Shape.StorageGB)
		}
		return w.Flush()
	},
}

var provisionCmd = &cobra.Command{
	Use:   "provision [owner-id]",
	Short: "Reserve quota and record a resource in provisioning state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vps, _ := cmd.Flags().GetInt64("vps")
		cpu, _ := cmd.Flags().GetInt64("cpu")
		ram, _ := cmd.Flags().GetInt64("ram-gb")
		storage, _ := cmd.Flags().GetInt64("storage-gb")

		var resource types.OwnedResource
		err := newAPIClient().do(http.MethodPost, "/api/v0/provisions", map[string]interface{}{
			"owner_id":   args[0],
			"kind":       "vps",
			"vps":        vps,
			"cpu":        cpu,
			"ram_gb":     ram,
			"storage_gb": storage,
		}, &resource)
		if err != nil {
			return fmt.Errorf("failed to provision: %w", err)
		}

		fmt.Printf("Reservation %s created for owner %s\n", resource.ID, resource.OwnerID)
		return nil
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm [reservation-id] [external-id]",
	Short: "Confirm a reservation after the orchestrator reports success",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var resource types.OwnedResource
		err := newAPIClient().do(http.MethodPost, "/api/v0/provisions/"+args[0]+"/confirm", map[string]string{
			"external_id": args[1],
		}, &resource)
		if err != nil {
			return fmt.Errorf("failed to confirm: %w", err)
		}

		fmt.Printf("Resource %s is running as %s\n", resource.ID, resource.ExternalID)
		return nil
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback [reservation-id]",
	Short: "Abandon a reservation and release its quota",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(http.MethodPost, "/api/v0/provisions/"+args[0]+"/rollback", nil, nil); err != nil {
			return fmt.Errorf("failed to rollback: %w", err)
		}

		fmt.Printf("Reservation %s rolled back\n", args[0])
		return nil
	},
}

var teardownCmd = &cobra.Command{
	Use:   "teardown [resource-id]",
	Short: "Mark a resource deleted and release its quota",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().do(http.MethodDelete, "/api/v0/resources/"+args[0], nil, nil); err != nil {
			return fmt.Errorf("failed to teardown: %w", err)
		}

		fmt.Printf("Resource %s torn down\n", args[0])
		return nil
	},
}

func init() {
	provisionCmd.Flags().Int64("vps", 1, "VPS instances in the resource shape")
	provisionCmd.Flags().Int64("cpu", 0, "vCPUs in the resource shape")
	provisionCmd.Flags().Int64("ram-gb", 0, "RAM in GB in the resource shape")
	provisionCmd.Flags().Int64("storage-gb", 0, "storage in GB in the resource shape")

	resourceCmd.AddCommand(listResourcesCmd, provisionCmd, confirmCmd, rollbackCmd, teardownCmd)
	rootCmd.AddCommand(resourceCmd)
}
