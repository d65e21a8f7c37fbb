package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alpereneser/connectlist-sub003/internal/lib/email"
	"github.com/spf13/cobra"
)

// newEmailPreviewCmd renders every email template with sample data so
// they can be checked in a browser. It needs no configuration.
func newEmailPreviewCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "email-preview",
		Short: "Render the email templates to HTML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", outDir, err)
			}

			for _, name := range email.Templates {
				html, err := email.Render(name, email.PreviewData[name])
				if err != nil {
					return fmt.Errorf("rendering %s: %w", name, err)
				}

				path := filepath.Join(outDir, string(name)+".html")
				if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "email-preview", "output directory")

	return cmd
}
