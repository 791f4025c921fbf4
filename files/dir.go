// Package files provides the directory the file routes read from and write to.
package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir abstracts whole-file access to a base directory.
// A nil Dir means no directory was configured.
type Dir interface {
	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)
	// WriteFile creates or truncates the named file and writes data to it.
	WriteFile(name string, data []byte) error
}

// DirFS implements [Dir] on top of the OS filesystem rooted at a directory.
//
// Unlike a plain join of root and name, names that are absolute or that
// escape the root through ".." are rejected with [ErrInvalidName].
type DirFS struct {
	root string
}

// NewDirFS creates a new DirFS rooted at root.
func NewDirFS(root string) *DirFS {
	return &DirFS{root: root}
}

// Root returns the directory the DirFS serves.
func (d *DirFS) Root() string {
	return d.root
}

func (d *DirFS) resolve(name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(d.root, name), nil
}

func (d *DirFS) ReadFile(name string) ([]byte, error) {
	p, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func (d *DirFS) WriteFile(name string, data []byte) error {
	p, err := d.resolve(name)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}
