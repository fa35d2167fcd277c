package cli

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qryptify/qryptify-client/internal/faq"
	"github.com/qryptify/qryptify-client/models"
)

func (c *CLI) newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat [question]",
		Short: "Ask the Qryptify support assistant",
		Long: `Ask the Qryptify support assistant.

With a question argument, prints one answer and exits. Without arguments,
starts an interactive conversation; finish with an empty line or Ctrl-D.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				c.printf("%s\n", c.services.Support.Ask(cmd.Context(), strings.Join(args, " ")))
				return nil
			}

			c.printf("%s\n", faq.Greeting)
			scanner := bufio.NewScanner(c.in)
			for {
				c.printf("> ")
				if !scanner.Scan() {
					break
				}
				question := strings.TrimSpace(scanner.Text())
				if question == "" {
					break
				}
				c.printf("%s\n", c.services.Support.Ask(cmd.Context(), question))
			}
			c.printf("Bye.\n")
			return scanner.Err()
		},
	}
}

func (c *CLI) newContactCmd() *cobra.Command {
	var req models.MailRequest

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the Qryptify team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services.Mail.Send(cmd.Context(), req); err != nil {
				return err
			}
			c.printf("Message sent. We will get back to you by e-mail.\n")
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "reply-to e-mail")
	cmd.Flags().StringVarP(&req.Message, "message", "m", "", "message text")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
