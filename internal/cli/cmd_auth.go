package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qryptify/qryptify-client/models"
)

func (c *CLI) newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
		remember bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to Qryptify",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				if password, err = c.promptLine("Password: "); err != nil {
					return err
				}
			}

			user, err := c.services.Auth.Login(cmd.Context(), email, password, remember)
			if err != nil {
				return err
			}

			name := user.Username
			if name == "" {
				name = email
			}
			c.printf("Signed in as %s (%s)\n", name, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account e-mail")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	cmd.Flags().BoolVar(&remember, "remember", false, "keep the session alive longer")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func (c *CLI) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.services.Auth.Logout(cmd.Context())
			c.printf("Signed out.\n")
			return nil
		},
	}
}

func (c *CLI) newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.session.Restore(cmd.Context())

			user := c.session.User()
			if !c.session.Authenticated() || user == nil {
				c.printf("Not signed in.\n")
				return nil
			}

			c.printf("Username: %s\n", user.Username)
			c.printf("E-mail:   %s\n", user.Email)
			c.printf("Role:     %s\n", user.Role)
			if user.FirstName != "" || user.LastName != "" {
				c.printf("Name:     %s\n", strings.TrimSpace(user.FirstName+" "+user.LastName))
			}
			return nil
		},
	}
}

func (c *CLI) newSignupCmd() *cobra.Command {
	var (
		req   models.SignupRequest
		role  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new account (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.session.Restore(cmd.Context())

			req.Role = models.Role(role)
			if cmd.Flags().Changed("limit") {
				req.Limit = &limit
			}
			if err := c.services.Auth.Signup(cmd.Context(), req); err != nil {
				return err
			}

			c.printf("Account %s created.\n", req.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Username, "username", "", "unique account name")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account e-mail")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "initial password")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&role, "role", string(models.RoleResearcher), "account role (guest, researcher, auditor, admin)")
	cmd.Flags().IntVar(&limit, "limit", 0, "monthly analysis quota")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// promptLine reads one line from the interactive input.
func (c *CLI) promptLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	reader := bufio.NewReader(c.in)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
