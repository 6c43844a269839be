package connectors

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// FileMeta describes one discovered data file.
type FileMeta struct {
	Path     string
	Size     int64
	Modified time.Time
}

// DiscoveryOptions filter file discovery.
type DiscoveryOptions struct {
	Recursive bool
	MinSize   int64
	MaxSize   int64
}

// DiscoverFiles returns the files under root carrying the extension, in
// lexical order. Extension matching is case-insensitive.
func DiscoverFiles(root string, ext string, options DiscoveryOptions) ([]FileMeta, error) {
	if root == "" {
		return nil, fmt.Errorf("root directory cannot be empty")
	}
	stat, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("directory does not exist: %s", root)
	}
	if err != nil {
		return nil, err
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", root)
	}

	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return nil, fmt.Errorf("file extension cannot be empty")
	}

	pattern := "*"
	if options.Recursive {
		pattern = "**/*"
	}
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("directory walk error: %w", err)
	}

	var files []FileMeta
	for _, match := range matches {
		if !strings.EqualFold(filepath.Ext(match), "."+ext) {
			continue
		}
		path := filepath.Join(root, match)
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error getting file info for %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		if options.MinSize > 0 && info.Size() < options.MinSize {
			continue
		}
		if options.MaxSize > 0 && info.Size() > options.MaxSize {
			continue
		}
		files = append(files, FileMeta{
			Path:     path,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no matching files found in %s", root)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
