package cache

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lumipallolabs/pathdive/internal/model"
)

// Cache persists the entry list from a completed scan so the next scan of
// the same root can be diffed against it.
type Cache struct {
	dir string
}

// New creates a new cache in the given directory
func New(dir string) *Cache {
	return &Cache{dir: dir}
}

// DefaultDir returns the default cache directory
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pathdive"
	}
	return filepath.Join(home, ".pathdive", "cache")
}

// rootKey derives a stable filename fragment from a scan root
func rootKey(root string) string {
	h := fnv.New64a()
	h.Write([]byte(root))
	return fmt.Sprintf("%016x", h.Sum64())
}

// Save saves a scan's entries for the given root
func (c *Cache) Save(root string, entries []model.Entry) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.gob.gz",
		rootKey(root),
		time.Now().Format("2006-01-02_150405"))

	path := filepath.Join(c.dir, filename)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	defer gzWriter.Close()

	encoder := gob.NewEncoder(gzWriter)
	if err := encoder.Encode(entries); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// LoadLatest loads the most recent cached entries for a root
func (c *Cache) LoadLatest(root string) ([]model.Entry, error) {
	latest, err := c.latestFile(root)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(latest)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer gzReader.Close()

	var entries []model.Entry
	decoder := gob.NewDecoder(gzReader)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return entries, nil
}

// Timestamp returns the timestamp of the latest cached scan for a root
func (c *Cache) Timestamp(root string) (time.Time, error) {
	latest, err := c.latestFile(root)
	if err != nil {
		return time.Time{}, err
	}

	base := filepath.Base(latest)
	base = strings.TrimSuffix(base, ".gob.gz")
	parts := strings.SplitN(base, "_", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid filename")
	}

	return time.Parse("2006-01-02_150405", parts[1])
}

func (c *Cache) latestFile(root string) (string, error) {
	pattern := filepath.Join(c.dir, fmt.Sprintf("%s_*.gob.gz", rootKey(root)))
	files, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("glob: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no cache found for root %s", root)
	}

	// Filenames embed the timestamp, so the latest sorts last
	sort.Strings(files)
	return files[len(files)-1], nil
}
