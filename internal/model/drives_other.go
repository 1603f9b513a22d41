//go:build !windows && !darwin

package model

import (
	"os"

	"golang.org/x/sys/unix"
)

func getPlatformDrives() ([]Drive, error) {
	// Home directory first, filesystem root second. Long-path trouble
	// usually lives under the user's own tree.
	home, _ := os.UserHomeDir()

	var drives []Drive
	if home != "" {
		d := Drive{Letter: "home", Path: home, Label: home}
		d.TotalBytes, d.FreeBytes = getDiskSpace(home)
		drives = append(drives, d)
	}

	root := Drive{Letter: "root", Path: "/", Label: "/"}
	root.TotalBytes, root.FreeBytes = getDiskSpace("/")
	drives = append(drives, root)

	return drives, nil
}

func getDiskSpace(path string) (total, free int64) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, 0
	}

	return int64(stat.Blocks) * int64(stat.Bsize), int64(stat.Bavail) * int64(stat.Bsize)
}
