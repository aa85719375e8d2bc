package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sylvanlake-autopro/autopro/internal/cli"
)

// generateCLIDocs writes index.md plus one page per top-level command.
// Subcommands are documented as sections of their parent's page.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndexPage(root)}
	for _, cmd := range documented(root) {
		pages[pageName(cmd)] = commandPage(cmd)
	}

	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(outDir, name), pages[name], 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

// documented returns the visible children of cmd, skipping cobra's own
// help and completion plumbing.
func documented(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if !c.IsAvailableCommand() || c.Name() == "help" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func pageName(cmd *cobra.Command) string {
	return cmd.Name() + ".md"
}

// anchor returns the heading anchor a markdown renderer derives for a
// subcommand section, e.g. "api get" -> "api-get".
func anchor(cmd *cobra.Command) string {
	return strings.ReplaceAll(strings.TrimPrefix(cmd.CommandPath(), cmd.Root().Name()+" "), " ", "-")
}

func cliIndexPage(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for autopro")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/sylvanlake-autopro/autopro/cmd/autopro@latest\nautopro <command> [options]")

	cmds := documented(root)
	for _, g := range root.Groups() {
		w.Header(2, strings.TrimSuffix(g.Title, ":"))
		w.Table([]string{"Command", "Description"}, commandRows(cmds, g.ID))
	}
	w.Header(2, "Other Commands")
	w.Table([]string{"Command", "Description"}, commandRows(cmds, ""))

	w.Header(2, "Global Options")
	w.Paragraph("These flags are accepted by every command:")
	writeFlagsTable(w, root.PersistentFlags())

	w.Header(2, "Environment Variables")
	w.Paragraph("Every configuration key can also be set from the environment. Flags win over the environment, which wins over autopro.yaml.")
	var envRows [][]string
	for _, f := range configFields() {
		if f.Env == "" {
			continue
		}
		envRows = append(envRows, []string{InlineCode(f.Env), f.Description})
	}
	w.Table([]string{"Variable", "Description"}, envRows)

	return w.Bytes()
}

// commandRows lists the commands of one help group. Subcommands get their
// own row linking to their section on the parent page.
func commandRows(cmds []*cobra.Command, group string) [][]string {
	var rows [][]string
	for _, c := range cmds {
		if c.GroupID != group {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("[%s](%s)", InlineCode(c.Name()), pageName(c)),
			cleanDescription(c.Short),
		})
		for _, sub := range documented(c) {
			rows = append(rows, []string{
				fmt.Sprintf("[%s](%s#%s)", InlineCode(c.Name()+" "+sub.Name()), pageName(c), anchor(sub)),
				cleanDescription(sub.Short),
			})
		}
	}
	return rows
}

func commandPage(cmd *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.CommandPath(), cleanDescription(cmd.Short))
	w.GeneratedMarker()

	w.Header(1, cmd.CommandPath())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}
	if len(cmd.Aliases) > 0 {
		aliases := make([]string, len(cmd.Aliases))
		for i, a := range cmd.Aliases {
			aliases[i] = InlineCode(a)
		}
		w.Paragraph("Aliases: " + strings.Join(aliases, ", "))
	}

	subs := documented(cmd)
	if len(subs) == 0 {
		writeCommandBody(w, cmd, 2)
	} else {
		w.Header(2, "Usage")
		w.CodeBlock("bash", fmt.Sprintf("%s <subcommand> [options]", cmd.CommandPath()))
		for _, sub := range subs {
			w.Header(2, anchor(sub))
			w.Paragraph(sub.Short)
			writeCommandBody(w, sub, 3)
		}
	}

	w.Paragraph("Global options are listed in the [CLI reference](index.md#global-options).")
	return w.Bytes()
}

// writeCommandBody writes usage, accepted arguments, options and examples of
// a runnable command with headings at level.
func writeCommandBody(w *MarkdownWriter, cmd *cobra.Command, level int) {
	w.Header(level, "Usage")
	w.CodeBlock("bash", cmd.UseLine())

	if len(cmd.ValidArgs) > 0 {
		args := make([]string, len(cmd.ValidArgs))
		for i, a := range cmd.ValidArgs {
			args[i] = InlineCode(a)
		}
		w.Paragraph("Accepted arguments: " + strings.Join(args, ", "))
	}

	if cmd.HasAvailableLocalFlags() {
		w.Header(level, "Options")
		writeFlagsTable(w, cmd.LocalNonPersistentFlags())
	}

	if examples := parseExamples(cmd.Example); len(examples) > 0 {
		w.Header(level, "Examples")
		for _, ex := range examples {
			if ex.Comment != "" {
				w.Paragraph(ex.Comment + ":")
			}
			w.CodeBlock("bash", ex.Command)
		}
	}
}

// writeFlagsTable writes one row per visible flag.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		name := "--" + f.Name
		if f.Shorthand != "" {
			name = "-" + f.Shorthand + ", " + name
		}

		typ := f.Value.Type()
		def := ""
		switch {
		case typ == "bool":
			typ = ""
		case f.DefValue != "" && f.DefValue != "0" && f.DefValue != "[]":
			def = InlineCode(f.DefValue)
		}

		desc := cleanDescription(f.Usage)
		if _, ok := f.Annotations[cobra.BashCompOneRequiredFlag]; ok {
			desc += " (required)"
		}
		rows = append(rows, []string{InlineCode(name), typ, def, desc})
	})
	w.Table([]string{"Flag", "Type", "Default", "Description"}, rows)
}

// example is one entry of a command's Example text.
type example struct {
	Comment string
	Command string
}

// parseExamples splits Example text of the form
//
//	# Comment
//	autopro cmd --flag
//
// into entries. A comment starts a new entry; consecutive command lines
// without a comment between them stay in one entry.
func parseExamples(text string) []example {
	var (
		out []example
		cur example
		cmd []string
	)
	flush := func() {
		if len(cmd) > 0 {
			cur.Command = strings.Join(cmd, "\n")
			out = append(out, cur)
		}
		cur, cmd = example{}, nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
			flush()
			cur.Comment = strings.TrimSpace(strings.TrimPrefix(line, "#"))
		default:
			cmd = append(cmd, line)
		}
	}
	flush()
	return out
}
