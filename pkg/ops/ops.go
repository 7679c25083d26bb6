package ops

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/filewise/pkg/errors"
	"github.com/arthur-debert/filewise/pkg/filesystem"
	"github.com/arthur-debert/filewise/pkg/finder"
	"github.com/arthur-debert/filewise/pkg/logging"
	"github.com/arthur-debert/filewise/pkg/types"
	"github.com/rs/zerolog"
)

// Ops performs bulk file and directory operations, selecting files by
// the same match modes the finder uses. File selection looks at the
// immediate children of each source directory only.
type Ops struct {
	fs     types.FS
	finder *finder.Finder
	logger zerolog.Logger
}

// New creates an Ops backed by the OS filesystem
func New() *Ops {
	return NewWithFS(filesystem.NewOS())
}

// NewWithFS creates an Ops backed by a custom filesystem.
// This is used for testing and callers that need a different filesystem.
func NewWithFS(fs types.FS) *Ops {
	return &Ops{
		fs:     fs,
		finder: finder.NewWithFS(fs),
		logger: logging.GetLogger("ops"),
	}
}

// selectFiles returns the matching files in the top level of dir
func (o *Ops) selectFiles(dir string, patterns []string, mt finder.MatchType) ([]string, error) {
	return o.finder.FindFiles(dir, finder.Query{
		Patterns:  patterns,
		MatchType: mt,
		TopOnly:   true,
	})
}

// MoveFiles moves files matching the patterns from each source
// directory into every destination directory.
func (o *Ops) MoveFiles(patterns, srcDirs, dstDirs []string, mt finder.MatchType) error {
	for _, src := range srcDirs {
		files, err := o.selectFiles(src, patterns, mt)
		if err != nil {
			return err
		}
		for _, file := range files {
			for _, dst := range dstDirs {
				target := filepath.Join(dst, filepath.Base(file))
				if err := o.fs.Rename(file, target); err != nil {
					return errors.Wrapf(err, errors.ErrFileMove,
						"failed to move %s to %s", file, target)
				}
				o.logger.Debug().Str("from", file).Str("to", target).Msg("moved file")
			}
		}
	}
	return nil
}

// CopyFiles copies files matching the patterns from each source
// directory into every destination directory.
func (o *Ops) CopyFiles(patterns, srcDirs, dstDirs []string, mt finder.MatchType) error {
	for _, src := range srcDirs {
		files, err := o.selectFiles(src, patterns, mt)
		if err != nil {
			return err
		}
		for _, file := range files {
			for _, dst := range dstDirs {
				target := filepath.Join(dst, filepath.Base(file))
				if err := o.copyFile(file, target); err != nil {
					return err
				}
				o.logger.Debug().Str("from", file).Str("to", target).Msg("copied file")
			}
		}
	}
	return nil
}

// RemoveFiles removes files matching the patterns from each source directory
func (o *Ops) RemoveFiles(patterns, srcDirs []string, mt finder.MatchType) error {
	for _, src := range srcDirs {
		files, err := o.selectFiles(src, patterns, mt)
		if err != nil {
			return err
		}
		for _, file := range files {
			if err := o.fs.Remove(file); err != nil {
				return errors.Wrapf(err, errors.ErrFileRemove,
					"failed to remove %s", file)
			}
			o.logger.Debug().Str("file", file).Msg("removed file")
		}
	}
	return nil
}

// MakeDirectories creates each directory, parents included. Existing
// directories are left alone.
func (o *Ops) MakeDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := o.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"failed to create directory %s", dir)
		}
	}
	return nil
}

// RemoveDirectories removes each directory and its contents. Missing
// directories are tolerated.
func (o *Ops) RemoveDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := o.fs.RemoveAll(dir); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove,
				"failed to remove directory %s", dir)
		}
	}
	return nil
}

// MoveDirectories moves each source directory to the destination at
// the same position. The lists must be the same length.
func (o *Ops) MoveDirectories(srcDirs, dstDirs []string) error {
	if len(srcDirs) != len(dstDirs) {
		return errors.New(errors.ErrInvalidInput,
			"source and destination lists must be the same length")
	}
	for i, src := range srcDirs {
		if err := o.fs.Rename(src, dstDirs[i]); err != nil {
			return errors.Wrapf(err, errors.ErrFileMove,
				"failed to move %s to %s", src, dstDirs[i])
		}
	}
	return nil
}

// CopyDirectories recursively copies each source directory to the
// destination at the same position. The lists must be the same length.
func (o *Ops) CopyDirectories(srcDirs, dstDirs []string) error {
	if len(srcDirs) != len(dstDirs) {
		return errors.New(errors.ErrInvalidInput,
			"source and destination lists must be the same length")
	}
	for i, src := range srcDirs {
		if err := o.copyTree(src, dstDirs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Rename renames each path to the new name at the same position. The
// lists must be the same length.
func (o *Ops) Rename(oldPaths, newPaths []string) error {
	if len(oldPaths) != len(newPaths) {
		return errors.New(errors.ErrInvalidInput,
			"path and renamed path lists must be the same length")
	}
	for i, old := range oldPaths {
		if err := o.fs.Rename(old, newPaths[i]); err != nil {
			return errors.Wrapf(err, errors.ErrFileMove,
				"failed to rename %s to %s", old, newPaths[i])
		}
	}
	return nil
}

// Cat writes the content of a file to w
func (o *Ops) Cat(w io.Writer, path string) error {
	data, err := o.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read %s", path)
	}
	_, err = w.Write(data)
	return err
}

// copyFile copies a single regular file, preserving its mode
func (o *Ops) copyFile(src, dst string) error {
	info, err := o.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to stat %s", src)
	}
	data, err := o.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to read %s", src)
	}
	if err := o.fs.WriteFile(dst, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy,
			"failed to write %s", dst)
	}
	return nil
}

// copyTree recursively copies a directory
func (o *Ops) copyTree(src, dst string) error {
	info, err := o.fs.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCopy, "failed to stat %s", src)
	}
	if !info.IsDir() {
		return o.copyFile(src, dst)
	}
	if err := o.fs.MkdirAll(dst, dirPerm(info)); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create directory %s", dst)
	}
	entries, err := o.fs.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", src)
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if err := o.copyTree(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func dirPerm(info fs.FileInfo) fs.FileMode {
	perm := info.Mode().Perm()
	if perm == 0 {
		return 0755
	}
	return perm
}
