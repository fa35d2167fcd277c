package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qryptify/qryptify-client/models"
)

func (c *CLI) newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "View and manage the signed-in account",
	}
	cmd.AddCommand(c.newAccountShowCmd(), c.newAccountUpdateCmd(), c.newAccountDeleteCmd())
	return cmd
}

func (c *CLI) newAccountShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the account profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.services.Profile.Details(cmd.Context())
			if err != nil {
				return err
			}

			c.printf("Username:  %s\n", user.Username)
			c.printf("E-mail:    %s\n", user.Email)
			c.printf("Role:      %s\n", user.Role)
			if user.FirstName != "" || user.LastName != "" {
				c.printf("Name:      %s %s\n", user.FirstName, user.LastName)
			}
			if user.Phone != "" {
				c.printf("Phone:     %s\n", user.Phone)
			}
			if user.Limit != nil {
				c.printf("Quota:     %d analyses/month\n", *user.Limit)
			}
			return nil
		},
	}
}

func (c *CLI) newAccountUpdateCmd() *cobra.Command {
	var firstName, lastName, username, phone string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Long:  "Update profile fields. Only the flags you pass are sent to the backend.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch models.ProfileUpdate
			if cmd.Flags().Changed("first-name") {
				patch.FirstName = &firstName
			}
			if cmd.Flags().Changed("last-name") {
				patch.LastName = &lastName
			}
			if cmd.Flags().Changed("username") {
				patch.Username = &username
			}
			if cmd.Flags().Changed("phone") {
				patch.Phone = &phone
			}

			user, err := c.services.Profile.Update(cmd.Context(), patch)
			if err != nil {
				return err
			}

			c.printf("Profile updated for %s.\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&username, "username", "", "account name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func (c *CLI) newAccountDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Permanently delete the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				answer, err := c.promptLine("This permanently deletes your account. Type 'delete' to confirm: ")
				if err != nil {
					return err
				}
				if answer != "delete" {
					return fmt.Errorf("aborted")
				}
			}

			if err := c.services.Profile.Delete(cmd.Context()); err != nil {
				return err
			}
			c.printf("Account deleted.\n")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
