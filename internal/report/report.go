// Package report renders the asset registry for people: an aligned text
// table, a Markdown document, or that document converted to HTML.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wpsmith/iinject/internal/registry"
)

// row is one registry entry in display form.
type row struct {
	name, method, target, exists, depends, src string
}

var header = row{"NAME", "METHOD", "TARGET", "EXISTS", "DEPENDS", "SRC"}

func rows(reg *registry.Registry) []row {
	out := make([]row, 0, reg.Len())
	for _, name := range reg.Names() {
		e, _ := reg.Lookup(name)
		target := "head"
		if !e.Head() {
			target = "body"
		}
		out = append(out, row{name, e.Method, target, e.Exists, e.DependentVar, e.Src})
	}
	return out
}

func (r row) cells() []string {
	return []string{r.name, r.method, r.target, r.exists, r.depends, r.src}
}

// Text writes the registry as a column-aligned table.
func Text(w io.Writer, reg *registry.Registry) error {
	all := append([]row{header}, rows(reg)...)

	widths := make([]int, len(header.cells()))
	for _, r := range all {
		for i, c := range r.cells() {
			widths[i] = max(widths[i], len(c))
		}
	}

	for _, r := range all {
		cells := r.cells()
		var line strings.Builder
		for i, c := range cells {
			if i == len(cells)-1 {
				line.WriteString(c)
				break
			}
			fmt.Fprintf(&line, "%-*s  ", widths[i], orDash(c))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// Markdown returns the registry as a GFM document: a summary table followed
// by the registry file that reproduces it.
func Markdown(reg *registry.Registry) (string, error) {
	var b strings.Builder
	b.WriteString("# Asset registry\n\n")
	fmt.Fprintf(&b, "%d assets.\n\n", reg.Len())

	b.WriteString("| Name | Method | Target | Exists | Depends on | Source |\n")
	b.WriteString("|------|--------|--------|--------|------------|--------|\n")
	for _, r := range rows(reg) {
		cells := r.cells()
		for i, c := range cells {
			cells[i] = cell(c)
		}
		cells[len(cells)-1] = "`" + cell(r.src) + "`"
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	data, err := reg.Marshal()
	if err != nil {
		return "", fmt.Errorf("encoding registry: %w", err)
	}
	b.WriteString("\n## Registry file\n\n```yaml\n")
	b.Write(data)
	b.WriteString("```\n")
	return b.String(), nil
}

// cell escapes a value for a GFM table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
