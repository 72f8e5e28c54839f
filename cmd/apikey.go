// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/apikeys"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

var apikeyCmd = &cobra.Command{
	Use:   "apikey",
	Short: "Manage API keys, typically for device agents",
}

var createAPIKeyCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Issue an API key on behalf of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")
		customerID, _ := cmd.Flags().GetString("customer")
		expiresIn, _ := cmd.Flags().GetDuration("expires-in")
		prefix, _ := cmd.Flags().GetString("prefix")

		env, err := openAdminEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		tc, err := ownerContext(cmd.Context(), env, userID)
		if err != nil {
			return err
		}

		req := apikeys.CreateAPIKeyRequest{Name: args[0]}
		if customerID != "" {
			req.CustomerID = &customerID
		}
		if expiresIn > 0 {
			expiresAt := time.Now().Add(expiresIn)
			req.ExpiresAt = &expiresAt
		}

		issued, err := apikeyService(env, prefix).CreateAPIKey(cmd.Context(), tc, req)
		if err != nil {
			return fmt.Errorf("failed to create api key: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "API key created: %s (ID: %s)\n", issued.APIKey.Name, issued.APIKey.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "Key: %s\n", issued.Key)
		fmt.Fprintln(cmd.OutOrStdout(), "The key is not stored and cannot be shown again.")
		return nil
	},
}

var listAPIKeysCmd = &cobra.Command{
	Use:   "list",
	Short: "List the API keys of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")

		env, err := openAdminEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		tc, err := ownerContext(cmd.Context(), env, userID)
		if err != nil {
			return err
		}

		keys, err := apikeyService(env, "").ListAPIKeys(cmd.Context(), tc)
		if err != nil {
			return fmt.Errorf("failed to list api keys: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPREFIX\tCUSTOMER\tEXPIRES")
		for _, k := range keys {
			customer, expires := "-", "never"
			if k.CustomerID != nil {
				customer = *k.CustomerID
			}
			if k.ExpiresAt != nil {
				expires = k.ExpiresAt.Format(time.RFC3339)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", k.ID, k.Name, k.Prefix, customer, expires)
		}
		return w.Flush()
	},
}

// ownerContext builds the tenant context of the user the key belongs to,
// so the key inherits that user's role and binding.
func ownerContext(ctx context.Context, env *adminEnv, userID string) (types.TenantContext, error) {
	user, err := env.storage.GetUser(ctx, storage.Unscoped(), userID)
	if err != nil {
		return types.TenantContext{}, fmt.Errorf("failed to find user %s: %w", userID, err)
	}

	customerID := ""
	if user.CustomerID != nil {
		customerID = *user.CustomerID
	}

	return types.NewTenantContext(user.ID, user.Role, customerID, types.SchemeSession)
}

func apikeyService(env *adminEnv, prefix string) *apikeys.Service {
	return apikeys.NewService(
		tenancy.NewScopedStore(env.storage, env.tracer, env.monitor, env.logger),
		prefix,
		env.tracer,
		env.monitor,
		env.logger,
	)
}

func init() {
	createAPIKeyCmd.Flags().String("user-id", "", "Owner of the key")
	createAPIKeyCmd.Flags().String("customer", "", "Narrow the key to one customer")
	createAPIKeyCmd.Flags().Duration("expires-in", 0, "Key lifetime, 0 for no expiry")
	createAPIKeyCmd.Flags().String("prefix", "fk_", "Display prefix of the key")
	_ = createAPIKeyCmd.MarkFlagRequired("user-id")

	listAPIKeysCmd.Flags().String("user-id", "", "Owner of the keys")
	_ = listAPIKeysCmd.MarkFlagRequired("user-id")

	addDatabaseFlags(apikeyCmd)
	apikeyCmd.AddCommand(createAPIKeyCmd)
	apikeyCmd.AddCommand(listAPIKeysCmd)
	rootCmd.AddCommand(apikeyCmd)
}
