// Package types holds the interfaces shared across filewise packages.
package types

import "io/fs"

// FS abstracts the filesystem operations used by the finder and ops
// layers. Implementations live in pkg/filesystem; tests typically use
// the afero-backed one.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(path string) error
	Rename(oldpath, newpath string) error
}
