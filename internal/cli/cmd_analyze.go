package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <file>",
		Short: "Detect the cryptographic algorithm behind an encrypted file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			report, err := c.services.Analysis.Analyze(cmd.Context(), filepath.Base(path), f)
			if err != nil {
				return err
			}

			c.printf("Algorithm:  %s\n", report.Algorithm)
			if report.Category != "" {
				c.printf("Category:   %s\n", report.Category)
			}
			c.printf("Confidence: %.1f%%\n", report.Confidence)
			return nil
		},
	}
}

func (c *CLI) newHistoryCmd() *cobra.Command {
	var (
		algorithm string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := c.services.Analysis.History(cmd.Context(), algorithm, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				c.printf("No analyses recorded yet.\n")
				return nil
			}

			w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ANALYZED\tFILE\tALGORITHM\tCONFIDENCE")
			for _, rec := range records {
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f%%\n",
					rec.AnalyzedAt.Format("2006-01-02 15:04"),
					rec.FileName,
					rec.Algorithm,
					rec.Confidence,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "only show results for this algorithm")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "cap the number of entries (0 = all)")
	return cmd
}
