package util

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseGlobPattern(t *testing.T) {
	tests := []struct {
		name         string
		globPattern  string
		wantPositive []string
		wantNegative []string
	}{
		{
			name:        "empty pattern",
			globPattern: "",
		},
		{
			name:         "single positive pattern",
			globPattern:  "**/*.log",
			wantPositive: []string{"**/*.log"},
		},
		{
			name:         "single negative pattern",
			globPattern:  "!**/*.txt",
			wantNegative: []string{"**/*.txt"},
		},
		{
			name:         "mixed positive and negative patterns",
			globPattern:  "**/*.log,!**/keep.log",
			wantPositive: []string{"**/*.log"},
			wantNegative: []string{"**/keep.log"},
		},
		{
			name:         "pattern with spaces and empty elements",
			globPattern:  "**/*.log, ,**/*.tmp, !**/a.tmp",
			wantPositive: []string{"**/*.log", "**/*.tmp"},
			wantNegative: []string{"**/a.tmp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gp, err := ParseGlobPattern(tt.globPattern)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !reflect.DeepEqual(gp.positivePatterns, tt.wantPositive) {
				t.Errorf("positivePatterns = %v, want %v", gp.positivePatterns, tt.wantPositive)
			}
			if !reflect.DeepEqual(gp.negativePatterns, tt.wantNegative) {
				t.Errorf("negativePatterns = %v, want %v", gp.negativePatterns, tt.wantNegative)
			}
		})
	}
}

func TestParseGlobPatternInvalid(t *testing.T) {
	for _, pattern := range []string{"[abc", "ok.txt,!{a,b"} {
		if _, err := ParseGlobPattern(pattern); err == nil {
			t.Errorf("Expected error for invalid pattern %q", pattern)
		}
	}
}

func TestGlobPatternMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"extension", "*.log", "app.log", true},
		{"extension mismatch", "*.log", "app.txt", false},
		{"single star stops at separator", "*.log", "logs/app.log", false},
		{"doublestar crosses directories", "**/*.log", "logs/2024/app.log", true},
		{"negation vetoes", "**/*.log,!**/keep.log", "logs/keep.log", false},
		{"negation only matches everything else", "!*.txt", "notes.md", true},
		{"negation only rejects its own", "!*.txt", "notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gp, err := ParseGlobPattern(tt.pattern)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got := gp.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) with %q = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestExcludePaths(t *testing.T) {
	paths := []string{"c.log", "a.txt", "b.log", "keep.log"}

	gp, err := ParseGlobPattern("*.log,!keep.log")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got := ExcludePaths(paths, gp)
	want := []string{"a.txt", "keep.log"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	empty, _ := ParseGlobPattern("")
	if got := ExcludePaths(paths, empty); !reflect.DeepEqual(got, paths) {
		t.Errorf("Expected an empty exclude list to keep all paths, got %v", got)
	}
	if got := ExcludePaths(paths, nil); !reflect.DeepEqual(got, paths) {
		t.Errorf("Expected a nil exclude list to keep all paths, got %v", got)
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "c.md", "sub/d.txt"} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
			t.Fatalf("Failed to create test file %s: %v", name, err)
		}
	}
	join := func(name string) string { return filepath.Join(dir, name) }

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "plain paths are kept in order",
			args: []string{join("c.md"), join("a.txt"), join("missing.txt")},
			want: []string{join("c.md"), join("a.txt"), join("missing.txt")},
		},
		{
			name: "glob expands sorted in place",
			args: []string{join("c.md"), join("*.txt"), join("c.md")},
			want: []string{join("c.md"), join("a.txt"), join("b.txt"), join("c.md")},
		},
		{
			name: "doublestar recurses",
			args: []string{join("**/*.txt")},
			want: []string{join("a.txt"), join("b.txt"), join("sub/d.txt")},
		},
		{
			name: "directories are not expanded",
			args: []string{join("s*")},
			want: []string{join("s*")},
		},
		{
			name: "no match is kept literal",
			args: []string{join("*.csv")},
			want: []string{join("*.csv")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandPaths(tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// A file whose literal name contains metacharacters is not treated as a pattern
func TestExpandPathsLiteralMetaName(t *testing.T) {
	dir := t.TempDir()
	literal := filepath.Join(dir, "[draft].txt")
	if err := os.WriteFile(literal, []byte("x\n"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	got := ExpandPaths([]string{literal})
	if !reflect.DeepEqual(got, []string{literal}) {
		t.Errorf("Expected %v, got %v", []string{literal}, got)
	}
}
