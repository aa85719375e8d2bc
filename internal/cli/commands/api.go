package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sylvanlake-autopro/autopro/internal/cli/output"
	"github.com/sylvanlake-autopro/autopro/internal/dataapi"
	"github.com/sylvanlake-autopro/autopro/pkg/display"
)

// APIOptions holds options for the api write commands.
type APIOptions struct {
	Data   string
	Return bool
}

// NewAPICommand creates the api command.
func NewAPICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Call the data API",
		Long: `Call the REST data API with the configured key.

PATH is a resource path with an optional PostgREST query string, for
example "invoices?select=*&status=eq.open". Failed deletes are reported
as a warning and do not fail the command.`,
	}

	cmd.AddCommand(newAPIGetCommand())
	cmd.AddCommand(newAPIWriteCommand(http.MethodPatch))
	cmd.AddCommand(newAPIWriteCommand(http.MethodPost))
	cmd.AddCommand(newAPIDeleteCommand())

	return cmd
}

func newAPIGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PATH",
		Short: "Fetch rows",
		Example: `  autopro api get "invoices?select=number,total&limit=5"
  autopro api get "invoices?select=*" -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			client, err := c.DataClient()
			if err != nil {
				return err
			}

			var body json.RawMessage
			if err := client.GetJSON(cmd.Context(), args[0], &body); err != nil {
				return describeAPIError(err)
			}
			return printRows(c, body)
		},
	}
}

func newAPIWriteCommand(method string) *cobra.Command {
	opts := &APIOptions{}
	verb := map[string]string{http.MethodPatch: "patch", http.MethodPost: "post"}[method]

	cmd := &cobra.Command{
		Use:   verb + " PATH --data JSON",
		Short: map[string]string{http.MethodPatch: "Update rows", http.MethodPost: "Insert rows"}[method],
		Example: map[string]string{
			http.MethodPatch: `  autopro api patch "invoices?id=eq.7" --data '{"status":"paid"}'`,
			http.MethodPost:  `  autopro api post invoices --data '{"number":"INV-1003"}' --return`,
		}[method],
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !json.Valid([]byte(opts.Data)) {
				return errors.New("--data must be valid JSON")
			}
			c := NewCommandContext(cmd)
			client, err := c.DataClient()
			if err != nil {
				return err
			}

			data := json.RawMessage(opts.Data)
			var resp *dataapi.Response
			if method == http.MethodPatch {
				resp, err = client.Patch(cmd.Context(), args[0], data)
			} else {
				resp, err = client.Post(cmd.Context(), args[0], data, opts.Return)
			}
			if err != nil {
				return describeAPIError(err)
			}

			c.Renderer.Success(fmt.Sprintf("%s %s: HTTP %d", method, args[0], resp.StatusCode))
			if len(bytes.TrimSpace(resp.Body)) > 0 {
				return printRows(c, resp.Body)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Data, "data", "", "JSON request body")
	_ = cmd.MarkFlagRequired("data")
	if method == http.MethodPost {
		cmd.Flags().BoolVar(&opts.Return, "return", false, "Return the created rows")
	}

	return cmd
}

func newAPIDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete PATH",
		Short:   "Delete rows",
		Example: `  autopro api delete "invoices?id=eq.7"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewCommandContext(cmd)
			client, err := c.DataClient()
			if err != nil {
				return err
			}

			resp, err := client.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !resp.OK() {
				c.Renderer.Warning(fmt.Sprintf("DELETE %s: HTTP %d (ignored)", args[0], resp.StatusCode))
				return nil
			}
			c.Renderer.Success(fmt.Sprintf("DELETE %s: HTTP %d", args[0], resp.StatusCode))
			return nil
		},
	}
}

// describeAPIError adds the response body to status errors.
func describeAPIError(err error) error {
	var se *dataapi.StatusError
	if errors.As(err, &se) && len(se.Body) > 0 {
		return fmt.Errorf("%s %s failed: %w\n%s", se.Method, se.Path, err, indentJSON(se.Body))
	}
	return err
}

// printRows prints a JSON body: structured modes re-encode it, tables are
// used for arrays of objects, anything else is printed as indented JSON.
func printRows(c *CommandContext, body []byte) error {
	r := c.Renderer

	switch r.EffectiveMode() {
	case output.ModeJSON:
		r.Println(indentJSON(body))
		return nil
	case output.ModeYAML:
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return r.YAML(v)
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		r.Println(indentJSON(body))
		return nil
	}
	if len(rows) == 0 {
		r.Muted("(0 rows)")
		return nil
	}

	cols := rowKeys(rows)
	table := make([][]string, len(rows))
	for i, row := range rows {
		table[i] = make([]string, len(cols))
		for j, col := range cols {
			table[i][j] = display.Text(row[col])
		}
	}
	r.Table(cols, table)
	r.Muted(fmt.Sprintf("(%d rows)", len(rows)))
	return nil
}

// rowKeys returns the union of keys of rows, sorted.
func rowKeys(rows []map[string]any) []string {
	seen := make(map[string]struct{})
	var keys []string
	for _, row := range rows {
		for k := range row {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// indentJSON re-indents raw JSON for display. Invalid JSON is returned as-is.
func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
