package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lumipallolabs/pathdive/internal/model"
)

// ErrCancelled is returned when the destination picker was dismissed
// without choosing a file. Distinct from I/O failures so callers can stay
// quiet about it.
var ErrCancelled = errors.New("export cancelled")

// Render serializes entries as CSV text. This format is the tool's stable
// external output: header line, then one row per entry with the path field
// always double-quoted and embedded quotes doubled.
func Render(entries []model.Entry) string {
	var b strings.Builder
	b.WriteString("Path,Length\n")
	for _, e := range entries {
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(e.Path, `"`, `""`))
		b.WriteString(fmt.Sprintf(`",%d`, e.Length))
		b.WriteByte('\n')
	}
	return b.String()
}

// Write renders entries to dest. The text goes to a temp file in the
// destination directory first and is renamed into place, so a failed
// export never leaves a truncated file behind.
func Write(entries []model.Entry, dest string) error {
	if dest == "" {
		return ErrCancelled
	}

	dir := filepath.Dir(dest)
	tmp, err := os.CreateTemp(dir, ".pathdive-export-*")
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}

	if _, err := tmp.WriteString(Render(entries)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write export: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalize export: %w", err)
	}
	return nil
}

// Summary builds the success message shown after an export
func Summary(count int, dest string) string {
	noun := "paths"
	if count == 1 {
		noun = "path"
	}
	return fmt.Sprintf("Exported %d %s to %s", count, noun, dest)
}
