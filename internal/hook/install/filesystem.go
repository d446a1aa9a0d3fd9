package install

import "os"

// FileSystem abstracts the filesystem operations used by the installer.
type FileSystem interface {
	Stat(path string) (os.FileInfo, error)
	MkdirAll(path string, permissions os.FileMode) error
	WriteFile(path string, content []byte, permissions os.FileMode) error
	ReadFile(path string) ([]byte, error)
	Remove(path string) error
}

// OSFileSystem implements FileSystem using the operating system facilities.
type OSFileSystem struct{}

// Stat reports file information for path.
func (OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// MkdirAll creates the directory hierarchy for path.
func (OSFileSystem) MkdirAll(path string, permissions os.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// WriteFile writes content to path with the provided permissions.
func (OSFileSystem) WriteFile(path string, content []byte, permissions os.FileMode) error {
	return os.WriteFile(path, content, permissions)
}

// ReadFile returns the content of path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Remove deletes the file at path.
func (OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}
