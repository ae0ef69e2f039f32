package registry

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "registry.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write registry file: %v", err)
	}
	return path
}

func TestDefault_SeedEntries(t *testing.T) {
	t.Parallel()

	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	want := []string{"headjs", "jquery", "spservices"}
	if got := reg.Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	tests := []struct {
		name         string
		src          string
		exists       string
		dependentVar string
	}{
		{"headjs", "//cdnjs.cloudflare.com/ajax/libs/headjs/1.0.3/head.load.min.js", "head", ""},
		{"jquery", "//ajax.googleapis.com/ajax/libs/jquery/1.11.1/jquery.min.js", "jQuery", ""},
		{"spservices", "//cdnjs.cloudflare.com/ajax/libs/jquery.SPServices/2014.01/jquery.SPServices.min.js", "SPServices", "jQuery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ok := reg.Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if e.Src != tt.src {
				t.Errorf("Src = %q, want %q", e.Src, tt.src)
			}
			if e.Exists != tt.exists {
				t.Errorf("Exists = %q, want %q", e.Exists, tt.exists)
			}
			if e.DependentVar != tt.dependentVar {
				t.Errorf("DependentVar = %q, want %q", e.DependentVar, tt.dependentVar)
			}
			if e.Method != DefaultMethod {
				t.Errorf("Method = %q, want %q", e.Method, DefaultMethod)
			}
			if !e.Head() {
				t.Error("Head() = false, want true")
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	body := false

	tests := []struct {
		name    string
		entries map[string]Entry
		wantErr error
		check   func(t *testing.T, r *Registry)
	}{
		{
			name:    "lower-cases keys",
			entries: map[string]Entry{"JQuery": {Src: "j.js"}},
			check: func(t *testing.T, r *Registry) {
				if _, ok := r.Lookup("jquery"); !ok {
					t.Error("expected lower-cased key")
				}
				if _, ok := r.Lookup("JQUERY"); !ok {
					t.Error("expected case-insensitive lookup")
				}
			},
		},
		{
			name:    "keeps explicit placement and method",
			entries: map[string]Entry{"theme": {Src: "t.css", Method: "css", InHead: &body}},
			check: func(t *testing.T, r *Registry) {
				e, _ := r.Lookup("theme")
				if e.Method != "css" {
					t.Errorf("Method = %q, want css", e.Method)
				}
				if e.Head() {
					t.Error("Head() = true, want false")
				}
			},
		},
		{
			name:    "empty name",
			entries: map[string]Entry{"": {Src: "x.js"}},
			wantErr: ErrInvalidName,
		},
		{
			name:    "name with whitespace",
			entries: map[string]Entry{"my lib": {Src: "x.js"}},
			wantErr: ErrInvalidName,
		},
		{
			name:    "names colliding after lower-casing",
			entries: map[string]Entry{"Lib": {Src: "a.js"}, "lib": {Src: "b.js"}},
			wantErr: ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tt.entries)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			tt.check(t, r)
		})
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r, err := New(map[string]Entry{"a": {Src: "a.js"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	e, _ := r.Lookup("a")
	*e.InHead = false

	again, _ := r.Lookup("a")
	if !again.Head() {
		t.Error("mutating a looked-up entry changed the registry")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base, _ := New(map[string]Entry{"a": {Src: "a.js"}, "b": {Src: "b.js"}})
	overlay, _ := New(map[string]Entry{"b": {Src: "b2.js"}, "c": {Src: "c.js"}})

	merged := Merge(base, overlay)

	if got := merged.Names(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("Names() = %v", got)
	}
	if e, _ := merged.Lookup("b"); e.Src != "b2.js" {
		t.Errorf("b.Src = %q, want overlay value", e.Src)
	}
	if e, _ := base.Lookup("b"); e.Src != "b.js" {
		t.Errorf("base modified: b.Src = %q", e.Src)
	}
}

func TestNilRegistry(t *testing.T) {
	t.Parallel()

	var r *Registry
	if _, ok := r.Lookup("jquery"); ok {
		t.Error("nil registry Lookup returned ok")
	}
	if r.Len() != 0 || r.Names() != nil {
		t.Error("nil registry should be empty")
	}
}

func TestParse_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("assets:\n  a:\n    src: a.js\n    version: 2\n"))
	if !errors.Is(err, ErrParse) {
		t.Errorf("Parse() error = %v, want ErrParse", err)
	}
}

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("loads entries", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "assets:\n  app:\n    src: /js/app.js\n    exists: App\n    dependentVar: jQuery\n")
		loader, err := NewFilesystemLoader(path)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		reg, err := loader.LoadRegistry()
		if err != nil {
			t.Fatalf("LoadRegistry() error = %v", err)
		}
		e, ok := reg.Lookup("app")
		if !ok {
			t.Fatal("app not found")
		}
		if e.Src != "/js/app.js" || e.DependentVar != "jQuery" {
			t.Errorf("entry = %+v", e)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("error = %v, want ErrInvalidPath", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("error = %v, want ErrInvalidPath", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(t.TempDir())
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("error = %v, want ErrInvalidPath", err)
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "assets: [unclosed")
		loader, err := NewFilesystemLoader(path)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if _, err := loader.LoadRegistry(); !errors.Is(err, ErrParse) {
			t.Errorf("LoadRegistry() error = %v, want ErrParse", err)
		}
	})
}

func TestResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("expected no custom loader")
		}
		reg, err := r.LoadRegistry()
		if err != nil {
			t.Fatalf("LoadRegistry() error = %v", err)
		}
		if reg.Len() != 3 {
			t.Errorf("Len() = %d, want 3", reg.Len())
		}
	})

	t.Run("custom overrides and extends", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "assets:\n  jquery:\n    src: /vendor/jquery.js\n    exists: jQuery\n  app:\n    src: /js/app.js\n")
		r, err := NewResolver(path)
		if err != nil {
			t.Fatalf("NewResolver() error = %v", err)
		}
		reg, err := r.LoadRegistry()
		if err != nil {
			t.Fatalf("LoadRegistry() error = %v", err)
		}
		if e, _ := reg.Lookup("jquery"); e.Src != "/vendor/jquery.js" {
			t.Errorf("jquery.Src = %q, want custom value", e.Src)
		}
		if _, ok := reg.Lookup("spservices"); !ok {
			t.Error("built-in spservices should remain")
		}
		if _, ok := reg.Lookup("app"); !ok {
			t.Error("custom app entry missing")
		}
	})

	t.Run("invalid custom path", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver("/nonexistent/registry-abc123.yaml")
		if !errors.Is(err, ErrInvalidPath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidPath", err)
		}
	})
}

func TestMarshal_ParsesBack(t *testing.T) {
	t.Parallel()

	reg, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	data, err := reg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	again, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v\n%s", err, data)
	}
	if !slices.Equal(again.Names(), reg.Names()) {
		t.Errorf("Names() = %v, want %v", again.Names(), reg.Names())
	}
	e, _ := again.Lookup("spservices")
	if e.DependentVar != "jQuery" || e.Method != DefaultMethod || !e.Head() {
		t.Errorf("spservices = %+v", e)
	}
}
