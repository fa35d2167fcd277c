package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Change or recover the account password",
	}
	cmd.AddCommand(c.newPasswordResetCmd(), c.newPasswordForgotCmd())
	return cmd
}

func (c *CLI) newPasswordResetCmd() *cobra.Command {
	var current, newPassword, confirm string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Change the signed-in account's password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services.Auth.ResetPassword(cmd.Context(), current, newPassword, confirm); err != nil {
				return err
			}
			c.printf("Password updated.\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&newPassword, "new", "", "new password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "new password, again")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}

func (c *CLI) newPasswordForgotCmd() *cobra.Command {
	var email, newPassword, confirm string

	cmd := &cobra.Command{
		Use:   "forgot",
		Short: "Reset a forgotten password by e-mail",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services.Auth.ForgotPassword(cmd.Context(), email, newPassword, confirm); err != nil {
				return err
			}
			c.printf("Password reset for %s.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account e-mail")
	cmd.Flags().StringVar(&newPassword, "new", "", "new password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "new password, again")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("new")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}
