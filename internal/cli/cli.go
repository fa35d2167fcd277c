// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Qryptify

// Package cli assembles the qryptify command tree. Commands are thin: they
// parse flags, call the service layer, and print results. All state lives
// in the injected dependencies so the tree can be executed in tests with
// mocked services.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/qryptify/qryptify-client/internal/service"
	"github.com/qryptify/qryptify-client/internal/session"
)

// CLI carries the dependencies shared by every command.
type CLI struct {
	services *service.Services
	session  *session.Session
	version  string

	in  io.Reader
	out io.Writer
}

// New constructs the command-tree builder.
func New(services *service.Services, sess *session.Session, version string, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		services: services,
		session:  sess,
		version:  version,
		in:       in,
		out:      out,
	}
}

// NewRootCmd builds the full qryptify command tree.
func (c *CLI) NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "qryptify",
		Short: "Qryptify cryptographic algorithm detection client",
		Long: `Qryptify detects the cryptographic algorithm behind encrypted data.

Sign in with your account, upload ciphertext for analysis, browse past
results, and ask the support assistant about the platform.`,
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.out)

	root.AddCommand(
		c.newLoginCmd(),
		c.newLogoutCmd(),
		c.newWhoamiCmd(),
		c.newSignupCmd(),
		c.newPasswordCmd(),
		c.newAccountCmd(),
		c.newAnalyzeCmd(),
		c.newHistoryCmd(),
		c.newChatCmd(),
		c.newContactCmd(),
	)
	return root
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
