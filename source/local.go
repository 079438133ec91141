package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbukum/kthmin/errors"
)

// Local opens files from the local filesystem.
type Local struct {
	basePath string
}

// NewLocal creates a local opener. A non-empty basePath confines every
// locator to that directory; relative locators are resolved against it.
func NewLocal(basePath string) (*Local, error) {
	if basePath == "" {
		return &Local{}, nil
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("source: resolve base path: %w", err)
	}
	return &Local{basePath: abs}, nil
}

// Open opens a plain or file:// path.
func (l *Local) Open(_ context.Context, locator string) (io.ReadCloser, error) {
	path, err := l.resolve(locator)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(locator, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close() //nolint:errcheck // already failing
		return nil, unavailable(locator, err)
	}
	if info.IsDir() {
		f.Close() //nolint:errcheck // already failing
		return nil, errors.InvalidInput("path", fmt.Sprintf("%s is a directory", locator))
	}
	return f, nil
}

func (l *Local) resolve(locator string) (string, error) {
	path := strings.TrimPrefix(locator, SchemeFile+"://")
	if strings.TrimSpace(path) == "" {
		return "", errors.InvalidInput("path", "path is required")
	}
	if l.basePath == "" {
		return filepath.Clean(path), nil
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(l.basePath, path)
	}
	path = filepath.Clean(path)
	rel, err := filepath.Rel(l.basePath, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.InvalidInput("path", fmt.Sprintf("%s is outside the allowed directory", locator))
	}
	return path, nil
}

func (l *Local) check() error {
	if l.basePath == "" {
		return nil
	}
	info, err := os.Stat(l.basePath)
	if err != nil {
		return fmt.Errorf("base path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base path %s is not a directory", l.basePath)
	}
	return nil
}
