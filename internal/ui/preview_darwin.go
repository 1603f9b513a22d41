//go:build darwin

package ui

import "os/exec"

// previewFile opens the file in macOS Quick Look
func previewFile(path string) error {
	return exec.Command("qlmanage", "-p", path).Start()
}
