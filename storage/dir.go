package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/signpad/internal/atomicfile"
)

// Dir is a Store that keeps one file per key in a directory. Writes go
// through a temporary file and a rename, so a crash never leaves a
// half-written value behind.
type Dir struct {
	path string
}

// NewDir returns a store rooted at path. The directory is created on the
// first Save.
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// DefaultDir returns the per-user store location,
// {UserConfigDir}/signpad.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "signpad"), nil
}

// Path returns the store directory.
func (d *Dir) Path() string {
	return d.path
}

// Load implements Store.
func (d *Dir) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name, err := d.file(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, nil
}

// Save implements Store.
func (d *Dir) Save(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := d.file(key)
	if err != nil {
		return err
	}
	if err := atomicfile.Write(name, value, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// file maps a key to its file name. Keys must be plain names.
func (d *Dir) file(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(d.path, key+".value"), nil
}
