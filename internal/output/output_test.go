package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("attached printer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("defaults to stdout", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.Writer() != os.Stdout {
			t.Error("default printer should write to os.Stdout")
		}
	})
}

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"Print", func(p *Printer) { p.Print("mail", "wiki") }, "mailwiki"},
		{"Printf", func(p *Printer) { p.Printf("%s=%d", "items", 3) }, "items=3"},
		{"Println", func(p *Printer) { p.Println("alpha", "beta") }, "alpha beta\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.print(New(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinter_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := struct {
		Current string   `yaml:"currentProject"`
		Keys    []string `yaml:"keys"`
	}{Current: "alpha", Keys: []string{"mail"}}

	if err := New(&buf).YAML(v); err != nil {
		t.Fatalf("YAML() error = %v", err)
	}

	want := "currentProject: alpha\nkeys:\n  - mail\n"
	if got := buf.String(); got != want {
		t.Errorf("YAML() = %q, want %q", got, want)
	}
}
