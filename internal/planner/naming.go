package planner

import (
	"fmt"
	"os"
	"strings"
)

// BaseName strips everything from the first dot of a file name.
// "Foo.bar.auto" yields "Foo", not "Foo.bar". Multi-dot names lose their
// inner segments; existing decks rely on this naming so it is kept.
func BaseName(fileName string) string {
	base, _, _ := strings.Cut(fileName, ".")
	return base
}

// DuplicateName returns the file name a duplicate of fileName is written to.
func DuplicateName(fileName, suffix, ext string) string {
	return BaseName(fileName) + suffix + ext
}

// PathFileName turns the pathName of an auto command into its file name.
func PathFileName(pathName string) string {
	return pathName + PathExt
}

// ListDir returns the names of every entry in dir, files and directories
// alike, without filtering.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
