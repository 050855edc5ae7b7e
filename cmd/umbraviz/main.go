// Command umbraviz is a small CLI over the engine package: every
// invocation loads a document from --file (a YAML blob sink, per
// spec.md's "persistence... treated as a byte blob sink/source"),
// performs one action against a fresh Engine, and writes the document
// back. Undo/redo and multi-step sequences that need a live history
// stack go through the run subcommand instead, which keeps one Engine
// alive for the whole script.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uprootiny/umbra-sub002/clipexport"
	"github.com/uprootiny/umbra-sub002/engine"
)

func main() {
	var file string
	var dim int

	root := &cobra.Command{
		Use:   "umbraviz",
		Short: "umbraviz — hyperbolic point-set CLI",
		Long:  "Builds, edits, and exports hyperbolic point sets persisted as YAML documents.",
	}
	root.PersistentFlags().StringVar(&file, "file", "umbraviz.yaml", "document file to load/save")
	root.PersistentFlags().IntVar(&dim, "dim", 2, "hyperbolic dimension for a new document")

	root.AddCommand(
		initCmd(&file, &dim),
		addCmd(&file, &dim),
		opCmd(&file, &dim),
		statsCmd(&file, &dim),
		exportCmd(&file, &dim),
		runCmd(&file, &dim),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadDoc(file string, dim int) (clipexport.Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return clipexport.Document{Dim: dim}, nil
		}
		return clipexport.Document{}, err
	}
	return clipexport.UnmarshalYAML(data)
}

func saveDoc(file string, doc clipexport.Document) error {
	data, err := clipexport.MarshalYAML(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0o644)
}

// openEngine loads file into a fresh Engine and returns it along with
// the point set's id, creating an empty point set if file doesn't
// exist yet.
func openEngine(file string, dim int) (*engine.Engine, string, error) {
	doc, err := loadDoc(file, dim)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", file, err)
	}
	e := engine.New(doc.Dim)
	psID, eerr := e.ImportPointSet(doc)
	if eerr != nil {
		return nil, "", fmt.Errorf("import %s: %w", file, eerr)
	}
	return e, psID, nil
}

func closeEngine(file string, e *engine.Engine, psID string) error {
	doc, eerr := e.ExportPointSet(psID)
	if eerr != nil {
		return eerr
	}
	return saveDoc(file, doc)
}

func initCmd(file *string, dim *int) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(*file); err == nil {
				return fmt.Errorf("%s already exists", *file)
			}
			return saveDoc(*file, clipexport.Document{Dim: *dim})
		},
	}
}

func addCmd(file *string, dim *int) *cobra.Command {
	var name, parent, content string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a point, optionally under a named parent",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, psID, err := openEngine(*file, *dim)
			if err != nil {
				return err
			}
			idx, eerr := e.AddPoint(psID, name, parent, tags, content)
			if eerr != nil {
				return eerr
			}
			if err := closeEngine(*file, e, psID); err != nil {
				return err
			}
			fmt.Printf("added %q at index %d\n", name, idx)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "point name (required)")
	cmd.Flags().StringVar(&parent, "parent", "", "parent point name (root if omitted)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&content, "content", "", "point content")
	cmd.MarkFlagRequired("name")
	return cmd
}

func opCmd(file *string, dim *int) *cobra.Command {
	return &cobra.Command{
		Use:   "op <operator-name>",
		Short: "Apply a named operator (select-all, fold-subtree:3, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, psID, err := openEngine(*file, *dim)
			if err != nil {
				return err
			}
			if _, eerr := e.ApplyOperator(psID, args[0]); eerr != nil {
				return eerr
			}
			return closeEngine(*file, e, psID)
		},
	}
}

func statsCmd(file *string, dim *int) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print point/depth/motif counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, psID, err := openEngine(*file, *dim)
			if err != nil {
				return err
			}
			stats, eerr := e.GetStats(psID)
			if eerr != nil {
				return eerr
			}
			fmt.Printf("points: %d\n", stats.Count)
			for depth, n := range stats.DepthHistogram {
				fmt.Printf("  depth %d: %d\n", depth, n)
			}
			return nil
		},
	}
}

func exportCmd(file *string, dim *int) *cobra.Command {
	var root int
	var width, height int

	cmd := &cobra.Command{
		Use:   "export <svg|md|mermaid> <outfile>",
		Short: "Render the document to svg, markdown, or mermaid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, psID, err := openEngine(*file, *dim)
			if err != nil {
				return err
			}
			var out string
			var eerr *engine.EngineError
			switch strings.ToLower(args[0]) {
			case "svg":
				out, eerr = e.ExportSVG(psID, width, height)
			case "md", "markdown":
				out, eerr = e.ExportMarkdown(psID, root)
			case "mermaid":
				out, eerr = e.ExportMermaid(psID, root)
			default:
				return fmt.Errorf("unknown export format %q", args[0])
			}
			if eerr != nil {
				return eerr
			}
			return os.WriteFile(args[1], []byte(out), 0o644)
		},
	}
	cmd.Flags().IntVar(&root, "root", 0, "subtree root index for markdown/mermaid export")
	cmd.Flags().IntVar(&width, "width", 800, "svg width")
	cmd.Flags().IntVar(&height, "height", 600, "svg height")
	return cmd
}

// runCmd executes a line-oriented script against one Engine for its
// whole lifetime, so undo/redo (which only make sense against a live
// history.Stack, not a reloaded document) can be exercised across
// several steps. Each line is one of:
//
//	add <name> [parent]
//	op <operator-name>
//	undo
//	redo
//	export <svg|md|mermaid> <outfile>
//
// Blank lines and lines starting with # are ignored.
func runCmd(file *string, dim *int) *cobra.Command {
	return &cobra.Command{
		Use:   "run <script>",
		Short: "Run a multi-step script against one live session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			e, psID, err := openEngine(*file, *dim)
			if err != nil {
				return err
			}
			for i, line := range strings.Split(string(script), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if err := runLine(e, psID, line); err != nil {
					return fmt.Errorf("line %d %q: %w", i+1, line, err)
				}
			}
			return closeEngine(*file, e, psID)
		},
	}
}

func runLine(e *engine.Engine, psID, line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "add":
		if len(fields) < 2 {
			return fmt.Errorf("add requires a name")
		}
		name := fields[1]
		parent := ""
		if len(fields) > 2 {
			parent = fields[2]
		}
		_, eerr := e.AddPoint(psID, name, parent, nil, "")
		return errOrNil(eerr)
	case "op":
		if len(fields) < 2 {
			return fmt.Errorf("op requires an operator name")
		}
		_, eerr := e.ApplyOperator(psID, fields[1])
		return errOrNil(eerr)
	case "undo":
		return errOrNil(e.Undo(psID))
	case "redo":
		return errOrNil(e.Redo(psID))
	case "export":
		if len(fields) < 3 {
			return fmt.Errorf("export requires a format and outfile")
		}
		root := 0
		if len(fields) > 3 {
			fmt.Sscanf(fields[3], "%d", &root)
		}
		var out string
		var eerr *engine.EngineError
		switch strings.ToLower(fields[1]) {
		case "svg":
			out, eerr = e.ExportSVG(psID, 800, 600)
		case "md", "markdown":
			out, eerr = e.ExportMarkdown(psID, root)
		case "mermaid":
			out, eerr = e.ExportMermaid(psID, root)
		default:
			return fmt.Errorf("unknown export format %q", fields[1])
		}
		if eerr != nil {
			return eerr
		}
		return os.WriteFile(fields[2], []byte(out), 0o644)
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func errOrNil(eerr *engine.EngineError) error {
	if eerr == nil {
		return nil
	}
	return eerr
}
