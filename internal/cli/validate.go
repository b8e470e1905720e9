package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	rerrors "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/roadmap"
	"github.com/matzehuels/roadmap/pkg/roadmap/builtin"
)

// validationReport lists the problems found in one document.
type validationReport struct {
	Invalid    error          // field-level rule violations
	Duplicates []string       // node ids declared more than once
	Dangling   []danglingEdge // edges with a missing endpoint
}

type danglingEdge struct {
	Edge    roadmap.EdgeRecord
	Missing []string
}

func (r validationReport) ok() bool {
	return r.Invalid == nil && len(r.Duplicates) == 0 && len(r.Dangling) == 0
}

func (r validationReport) count() int {
	n := len(r.Duplicates) + len(r.Dangling)
	if r.Invalid != nil {
		n++
	}
	return n
}

// validateCommand creates the validate command for authoring checks.
func (c *CLI) validateCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate [document|builtin:name]",
		Short: "Check a roadmap document for dangling edges and duplicate ids",
		Long: `Check a roadmap document.

Reports field errors, node ids declared more than once, and edges whose
source or target does not exist. Dangling edges do not stop a roadmap from
rendering, so they only fail validation with --strict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := decodeSource(args[0])
			if err != nil {
				return err
			}
			report := validateDocument(doc)
			printReport(cmd.OutOrStdout(), args[0], report)
			if report.Invalid != nil || len(report.Duplicates) > 0 || (strict && len(report.Dangling) > 0) {
				return rerrors.New(rerrors.ErrCodeInvalidDocument, "%s: %d problem(s) found", args[0], report.count())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat dangling edges as errors")
	return cmd
}

// decodeSource reads the document behind a file path or builtin reference.
func decodeSource(source string) (*roadmap.Document, error) {
	if name, ok := strings.CutPrefix(source, builtin.Prefix); ok {
		doc, found := builtin.Document(name)
		if !found {
			return nil, rerrors.New(rerrors.ErrCodeNotFound, "unknown builtin roadmap %q (have %s)", name, strings.Join(builtin.Names(), ", "))
		}
		return &doc, nil
	}
	format, err := roadmap.FormatFromPath(source)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(source)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rerrors.Wrap(rerrors.ErrCodeFileNotFound, err, "roadmap document %s not found", source)
		}
		return nil, err
	}
	defer f.Close()
	return roadmap.Decode(f, format)
}

// validateDocument checks doc without building a graph, so every problem
// is reported rather than the first.
func validateDocument(doc *roadmap.Document) validationReport {
	var r validationReport
	r.Invalid = doc.Validate()

	ids := make(map[string]int)
	var order []string
	note := func(id string) {
		if ids[id] == 0 {
			order = append(order, id)
		}
		ids[id]++
	}
	for _, n := range doc.Nodes {
		note(n.ID)
	}
	for _, it := range doc.Items {
		note(it.ID)
	}
	for _, id := range order {
		if ids[id] > 1 {
			r.Duplicates = append(r.Duplicates, id)
		}
	}

	for _, e := range doc.Edges {
		var missing []string
		if ids[e.From] == 0 {
			missing = append(missing, e.From)
		}
		if ids[e.To] == 0 && e.To != e.From {
			missing = append(missing, e.To)
		}
		if len(missing) > 0 {
			r.Dangling = append(r.Dangling, danglingEdge{Edge: e, Missing: missing})
		}
	}
	return r
}

func printReport(w io.Writer, source string, r validationReport) {
	if r.ok() {
		printSuccess(w, "%s is valid", source)
		return
	}
	if r.Invalid != nil {
		printError(w, "%s", rerrors.UserMessage(r.Invalid))
	}
	for _, id := range r.Duplicates {
		printError(w, "duplicate node id %q", id)
	}
	if len(r.Dangling) == 0 {
		return
	}
	printWarning(w, "%d dangling edge(s) will be skipped when rendering", len(r.Dangling))

	rows := make([][]string, len(r.Dangling))
	for i, d := range r.Dangling {
		rows[i] = []string{d.Edge.From, d.Edge.To, strings.Join(d.Missing, ", ")}
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("FROM", "TO", "MISSING").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return StyleTitle.Padding(0, 1)
			}
			if col == 2 {
				return StyleWarning.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}
