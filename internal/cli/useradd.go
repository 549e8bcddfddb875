package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	newUsername string
	newPassword string
	newRole     string
)

var useraddCmd = &cobra.Command{
	Use:   "useradd",
	Short: "Create a user allowed to trigger view refreshes",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := getApp().AddUser(cmd.Context(), newUsername, newPassword, newRole)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d, role %s)\n", user.Username, user.ID, user.Role)
		return nil
	},
}

func init() {
	useraddCmd.Flags().StringVar(&newUsername, "username", "", "Login name")
	useraddCmd.Flags().StringVar(&newPassword, "password", "", "Plain-text password, stored as a bcrypt hash")
	useraddCmd.Flags().StringVar(&newRole, "role", "admin", "User role")
	_ = useraddCmd.MarkFlagRequired("username")
	_ = useraddCmd.MarkFlagRequired("password")
}
