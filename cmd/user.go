// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/fleet-service/internal/authorization"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/tenancy"
	"github.com/canonical/fleet-service/pkg/users"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage dashboard users",
}

var createUserCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user, the first super admin included",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		roleName, _ := cmd.Flags().GetString("role")
		customerID, _ := cmd.Flags().GetString("customer")

		role, err := types.ParseRole(roleName)
		if err != nil {
			return err
		}

		env, err := openAdminEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		service := userService(env)

		user, err := service.CreateUser(cmd.Context(), superAdminContext(), users.CreateUserRequest{
			Email:      email,
			Password:   password,
			Role:       &role,
			CustomerID: customerID,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "User created: %s (ID: %s, role: %s)\n", user.Email, user.ID, user.Role)
		return nil
	},
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List users across every customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt64("page")
		size, _ := cmd.Flags().GetInt64("size")

		env, err := openAdminEnv(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		list, err := userService(env).ListUsers(cmd.Context(), superAdminContext(), storage.Pagination{Page: page, Size: size})
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tROLE\tCUSTOMER\tACTIVE")
		for _, u := range list {
			customer := "-"
			if u.CustomerID != nil {
				customer = *u.CustomerID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Email, u.Role, customer, u.Active)
		}
		return w.Flush()
	},
}

func userService(env *adminEnv) *users.Service {
	return users.NewService(
		tenancy.NewScopedStore(env.storage, env.tracer, env.monitor, env.logger),
		authorization.NewAuthorizer(env.tracer, env.monitor, env.logger),
		0,
		env.tracer,
		env.monitor,
		env.logger,
	)
}

func init() {
	createUserCmd.Flags().String("email", "", "Login email")
	createUserCmd.Flags().String("password", "", "Initial password, at least 12 characters")
	createUserCmd.Flags().String("role", types.RoleReadOnly.String(), "READONLY, USER, ADMIN or SUPERADMIN")
	createUserCmd.Flags().String("customer", "", "Customer the user belongs to, empty for SUPERADMIN")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")

	listUsersCmd.Flags().Int64("page", 1, "Page number")
	listUsersCmd.Flags().Int64("size", 100, "Page size")

	addDatabaseFlags(userCmd)
	userCmd.AddCommand(createUserCmd)
	userCmd.AddCommand(listUsersCmd)
	rootCmd.AddCommand(userCmd)
}
