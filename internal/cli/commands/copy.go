package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sylvanlake-autopro/autopro/internal/clipboard"
	"github.com/sylvanlake-autopro/autopro/pkg/display"
)

// clipboardWriter is replaced in tests.
var clipboardWriter = clipboard.System

// CopyOptions holds options for the copy command.
type CopyOptions struct {
	Field string
	Row   int
}

// NewCopyCommand creates the copy command.
func NewCopyCommand() *cobra.Command {
	opts := &CopyOptions{}

	cmd := &cobra.Command{
		Use:   "copy PATH --field NAME",
		Short: "Copy a value from the data API to the clipboard",
		Long: `Fetch PATH from the data API and copy one field of one row to the
system clipboard. A confirmation is shown for one second.`,
		Example: `  # Copy the newest invoice number
  autopro copy "invoices?select=number&order=created_at.desc&limit=1" --field number`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.Field, "field", "", "Field to copy")
	cmd.Flags().IntVar(&opts.Row, "row", 0, "Row index (0-based)")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func runCopy(cmd *cobra.Command, path string, opts *CopyOptions) error {
	c := NewCommandContext(cmd)
	client, err := c.DataClient()
	if err != nil {
		return err
	}

	var rows []map[string]any
	if err := client.GetJSON(cmd.Context(), path, &rows); err != nil {
		return describeAPIError(err)
	}
	if opts.Row < 0 || opts.Row >= len(rows) {
		return fmt.Errorf("row %d out of range (%d rows)", opts.Row, len(rows))
	}
	raw, ok := rows[opts.Row][opts.Field]
	if !ok {
		return fmt.Errorf("field %q not found in row %d", opts.Field, opts.Row)
	}

	value := display.Text(raw)
	if value == display.Placeholder {
		return errors.New("nothing to copy: value is empty")
	}

	ind := c.Renderer.NewIndicator("📋 " + value)
	done, err := clipboard.New(clipboardWriter).Copy(value, ind)
	if err != nil {
		ind.Done()
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	select {
	case <-done:
	case <-cmd.Context().Done():
	}
	ind.Done()
	c.Logger.Debug("copied value", "path", path, "field", opts.Field, "row", opts.Row)
	return nil
}
