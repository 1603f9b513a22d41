//go:build !darwin && !windows

package ui

import "os/exec"

// previewFile opens the file with xdg-open on Linux
func previewFile(path string) error {
	return exec.Command("xdg-open", path).Start()
}
