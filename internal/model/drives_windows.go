//go:build windows

package model

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

func getPlatformDrives() ([]Drive, error) {
	var drives []Drive

	for letter := 'A'; letter <= 'Z'; letter++ {
		path := fmt.Sprintf("%c:\\", letter)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			continue
		}

		drive := Drive{
			Letter: string(letter),
			Path:   path,
			Label:  path,
		}
		drive.TotalBytes, drive.FreeBytes = getDiskSpace(path)

		drives = append(drives, drive)
	}

	return drives, nil
}

func getDiskSpace(path string) (total, free int64) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return 0, 0
	}

	return int64(totalBytes), int64(freeBytesAvailable)
}
