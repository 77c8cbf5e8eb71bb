package planner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Score.auto", "Score"},
		{"Foo.bar.auto", "Foo"},
		{"NoExt", "NoExt"},
		{"Two Piece - Left.path", "Two Piece - Left"},
		{".hidden", ""},
	}

	for _, tt := range tests {
		if got := BaseName(tt.in); got != tt.want {
			t.Errorf("BaseName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDuplicateName(t *testing.T) {
	tests := []struct {
		file, suffix, ext string
		want              string
	}{
		{"Foo.bar.auto", "-X", AutoExt, "Foo-X.auto"},
		{"Center.auto", " - RED", AutoExt, "Center - RED.auto"},
		{"Score1.path", " - RED", PathExt, "Score1 - RED.path"},
	}

	for _, tt := range tests {
		if got := DuplicateName(tt.file, tt.suffix, tt.ext); got != tt.want {
			t.Errorf("DuplicateName(%q, %q, %q) = %q, want %q", tt.file, tt.suffix, tt.ext, got, tt.want)
		}
	}
}

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.auto", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListDir(dir)
	if err != nil {
		t.Fatalf("ListDir() error = %v", err)
	}
	sort.Strings(got)

	want := []string{"a.auto", "notes.txt", "sub"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListDir() mismatch (-want +got):\n%s", diff)
	}
}

func TestListDir_Missing(t *testing.T) {
	_, err := ListDir(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ListDir() error = %v, want fs.ErrNotExist", err)
	}
}
