//go:build windows

package ui

import "os/exec"

// previewFile opens the file with the Windows default viewer
func previewFile(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Start()
}
