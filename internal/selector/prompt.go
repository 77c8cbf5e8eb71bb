// Package selector asks the operator which auto to duplicate, either
// through a numbered stdin prompt or an interactive list.
package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PromptText is printed after the numbered list.
const PromptText = "Which Auto would you like to duplicate?\nIndex: "

var (
	// ErrInvalidSelection is returned for answers that do not name an entry.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrSelectionCancelled is returned when the operator backs out.
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Prompt prints names as "[i] name", asks for an index on in, and returns
// the chosen name. Only an index written exactly as listed is accepted.
func Prompt(in io.Reader, out io.Writer, names []string) (string, error) {
	for i, name := range names {
		fmt.Fprintf(out, "[%d] %s\n", i, name)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w: nothing to choose from", ErrInvalidSelection)
	}

	fmt.Fprint(out, PromptText)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", fmt.Errorf("%w: no answer given", ErrInvalidSelection)
		}
		return "", err
	}

	answer := strings.TrimSpace(line)
	if !isIndex(answer) {
		return "", fmt.Errorf("%w: %q is not an index", ErrInvalidSelection, answer)
	}
	index, err := strconv.Atoi(answer)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not an index", ErrInvalidSelection, answer)
	}
	if index < 0 || index >= len(names) {
		return "", fmt.Errorf("%w: %d is not between 0 and %d", ErrInvalidSelection, index, len(names)-1)
	}

	return names[index], nil
}

// isIndex reports whether s is written the way indices are listed:
// plain digits, no sign, no leading zeros.
func isIndex(s string) bool {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
