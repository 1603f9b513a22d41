//go:build !windows && !darwin

package ui

import "os/exec"

// openInFileManager opens the containing directory with xdg-open on Linux
func openInFileManager(path string) error {
	return exec.Command("xdg-open", path).Start()
}
