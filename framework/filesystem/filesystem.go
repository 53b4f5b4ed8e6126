// Package filesystem provides the local-disk service the bridge binds as
// "files" — a thin Laravel-style wrapper over the os package.
package filesystem

import (
	"os"
	"path/filepath"
)

// Filesystem performs local disk operations rooted at the process working
// directory (paths may be absolute).
type Filesystem struct{}

// New creates a Filesystem.
func New() *Filesystem {
	return &Filesystem{}
}

// Exists reports whether a file or directory exists at path.
func (f *Filesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Get reads the full contents of a file.
func (f *Filesystem) Get(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Put writes contents to a file, creating parent directories as needed.
func (f *Filesystem) Put(path string, contents []byte) error {
	if err := f.MakeDirectory(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, contents, 0o644)
}

// Append appends contents to a file, creating it if absent.
func (f *Filesystem) Append(path string, contents []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = file.Write(contents)
	return err
}

// Delete removes a file. Deleting a missing file is not an error.
func (f *Filesystem) Delete(path string) error {
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MakeDirectory creates a directory and any missing parents.
func (f *Filesystem) MakeDirectory(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Files lists the file names (not directories) directly inside dir.
func (f *Filesystem) Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
		}
	}
	return out, nil
}
