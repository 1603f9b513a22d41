package model

// Drive represents a mounted drive/volume offered as a quick scan root
type Drive struct {
	Letter     string // e.g., "C" on Windows, mount name elsewhere
	Path       string // e.g., "C:\\"
	Label      string // volume label
	TotalBytes int64
	FreeBytes  int64
}

// UsedBytes returns bytes used on this drive
func (d Drive) UsedBytes() int64 {
	return d.TotalBytes - d.FreeBytes
}

// UsedPercent returns percentage of drive used
func (d Drive) UsedPercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.UsedBytes()) / float64(d.TotalBytes) * 100
}

// GetDrives returns all available drives on the system
func GetDrives() ([]Drive, error) {
	return getPlatformDrives()
}
