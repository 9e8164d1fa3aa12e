package cli

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommand(t *testing.T) {
	c := New(os.Stderr, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "galley" {
		t.Errorf("root.Use = %q, want %q", root.Use, "galley")
	}

	want := []string{"simulate", "catalog", "render", "flow", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to json", "", []string{"json"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "json,svg,pdf", []string{"json", "svg", "pdf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestParseList(t *testing.T) {
	got := parseList(" gas_range_4burner, work_table_small ,")
	if len(got) != 2 || got[0] != "gas_range_4burner" || got[1] != "work_table_small" {
		t.Errorf("parseList() = %v", got)
	}
	if parseList("") != nil {
		t.Error("parseList(\"\") should be nil")
	}
}
