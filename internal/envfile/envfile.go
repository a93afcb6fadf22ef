// Package envfile applies key-value mutations to line-oriented
// KEY=VALUE environment files.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Action says how an operation treats the target file.
type Action string

const (
	// ActionSet replaces or creates the named keys, leaving unrelated
	// lines alone.
	ActionSet Action = "set"
	// ActionMerge behaves like ActionSet; the name documents that the
	// operation is non-destructive toward existing unrelated lines.
	ActionMerge Action = "merge"
	// ActionAppend adds lines without checking for key collisions.
	ActionAppend Action = "append"
)

// Pair is one KEY=VALUE entry. Operations carry ordered pairs because
// later pairs overwrite earlier ones on key conflict.
type Pair struct {
	Key   string
	Value string
}

// Operation is one pending file mutation. Keys must be unique per
// operation; the scaffold providers construct them that way.
type Operation struct {
	File   string // relative to the base directory, e.g. ".env"
	Action Action
	Pairs  []Pair
}

// Apply performs the operation against baseDir. Repeated application of
// the same Set operation yields identical file content, so installers can
// safely re-run after a partial failure.
func Apply(op Operation, baseDir string) error {
	target := filepath.Join(baseDir, op.File)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating parent directory for %s: %w", op.File, err)
	}

	switch op.Action {
	case ActionSet, ActionMerge:
		return applySet(target, op.Pairs)
	case ActionAppend:
		return applyAppend(target, op.Pairs)
	default:
		return fmt.Errorf("unknown env file action %q", op.Action)
	}
}

// applySet replaces existing keys in place and appends unmatched keys at
// the end of the file.
func applySet(target string, pairs []Pair) error {
	lines := readLines(target)
	pending := make(map[string]string, len(pairs))
	order := make([]string, 0, len(pairs))
	for _, p := range pairs {
		if _, seen := pending[p.Key]; !seen {
			order = append(order, p.Key)
		}
		pending[p.Key] = p.Value
	}

	for i, line := range lines {
		key := lineKey(line)
		if key == "" {
			continue
		}
		if value, ok := pending[key]; ok {
			lines[i] = formatLine(key, value)
			delete(pending, key)
		}
	}
	for _, key := range order {
		if value, ok := pending[key]; ok {
			lines = append(lines, formatLine(key, value))
		}
	}
	return writeLines(target, lines)
}

func applyAppend(target string, pairs []Pair) error {
	f, err := os.OpenFile(target, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	for _, p := range pairs {
		if _, err := fmt.Fprintln(f, formatLine(p.Key, p.Value)); err != nil {
			return err
		}
	}
	return nil
}

// Read parses the target file into a key-value map. Missing files read as
// empty; comments and malformed lines are skipped.
func Read(path string) (map[string]string, error) {
	vars := make(map[string]string)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		key := lineKey(line)
		if key == "" {
			continue
		}
		_, value, _ := strings.Cut(line, "=")
		vars[key] = strings.Trim(strings.TrimSpace(value), `"`)
	}
	return vars, nil
}

// lineKey extracts the left-hand side of a KEY=VALUE line, or "" for
// comments, blanks, and anything else that is not an assignment.
func lineKey(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ""
	}
	key, _, found := strings.Cut(trimmed, "=")
	if !found {
		return ""
	}
	return strings.TrimSpace(key)
}

// formatLine renders one assignment, quoting the value only when it
// contains whitespace.
func formatLine(key, value string) string {
	if strings.ContainsAny(value, " \t") {
		return fmt.Sprintf("%s=%q", key, value)
	}
	return fmt.Sprintf("%s=%s", key, value)
}

func readLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

func writeLines(path string, lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
