package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/wpsmith/iinject/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	body := false
	reg, err := registry.New(map[string]registry.Entry{
		"lib":    {Src: "//cdn/lib.js", Exists: "Lib"},
		"plugin": {Src: "//cdn/plugin.js", Exists: "Plugin", DependentVar: "Lib", InHead: &body},
		"theme":  {Src: "//cdn/a|b.css", Method: "css"},
	})
	if err != nil {
		t.Fatalf("registry.New() error = %v", err)
	}
	return reg
}

func TestText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Text(&buf, testRegistry(t)); err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}

	want := [][]string{
		{"NAME", "METHOD", "TARGET", "EXISTS", "DEPENDS", "SRC"},
		{"lib", "js", "head", "Lib", "-", "//cdn/lib.js"},
		{"plugin", "js", "body", "Plugin", "Lib", "//cdn/plugin.js"},
		{"theme", "css", "head", "-", "-", "//cdn/a|b.css"},
	}
	for i, line := range lines {
		got := strings.Fields(line)
		if strings.Join(got, " ") != strings.Join(want[i], " ") {
			t.Errorf("line %d = %q, want fields %v", i, line, want[i])
		}
	}

	// Columns line up on the longest value.
	if idx := strings.Index(lines[0], "METHOD"); strings.Index(lines[2], "js") != idx {
		t.Errorf("METHOD column misaligned:\n%s", buf.String())
	}
}

func TestText_Empty(t *testing.T) {
	t.Parallel()

	reg, _ := registry.New(nil)
	var buf bytes.Buffer
	if err := Text(&buf, reg); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("empty registry printed %d lines, want header only", got)
	}
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	md, err := Markdown(testRegistry(t))
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}

	wantContains := []string{
		"# Asset registry",
		"3 assets.",
		"| Name | Method | Target | Exists | Depends on | Source |",
		"| lib | js | head | Lib | - | `//cdn/lib.js` |",
		"| plugin | js | body | Plugin | Lib | `//cdn/plugin.js` |",
		"## Registry file",
		"```yaml\nassets:\n",
		"dependentVar: Lib",
	}
	for _, want := range wantContains {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q\n%s", want, md)
		}
	}

	// The fenced registry reproduces the table.
	start := strings.Index(md, "```yaml\n") + len("```yaml\n")
	end := strings.LastIndex(md, "```")
	again, err := registry.Parse([]byte(md[start:end]))
	if err != nil {
		t.Fatalf("fenced registry does not parse: %v", err)
	}
	if again.Len() != 3 {
		t.Errorf("fenced registry Len() = %d, want 3", again.Len())
	}
}

func TestCell(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"", "-"},
		{"jQuery", "jQuery"},
		{"a|b", `a\|b`},
	}
	for _, tt := range tests {
		if got := cell(tt.in); got != tt.want {
			t.Errorf("cell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConverter_ToHTML(t *testing.T) {
	t.Parallel()

	md, err := Markdown(testRegistry(t))
	if err != nil {
		t.Fatalf("Markdown() error = %v", err)
	}

	out, err := NewConverter().ToHTML(context.Background(), md)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	wantContains := []string{
		"<!DOCTYPE html>",
		"<title>Asset registry</title>",
		"<h1>Asset registry</h1>",
		"<table>",
		"<code>//cdn/lib.js</code>",
		"<pre", // highlighted registry block
		`style="`,
		"</html>",
	}
	for _, want := range wantContains {
		if !strings.Contains(out, want) {
			t.Errorf("ToHTML() missing %q", want)
		}
	}
}

func TestConverter_ToHTML_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewConverter().ToHTML(ctx, "# x"); err != context.Canceled {
		t.Errorf("ToHTML() error = %v, want context.Canceled", err)
	}
}
