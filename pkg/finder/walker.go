package finder

import "path/filepath"

// collect enumerates candidate paths under root. With topOnly set,
// only the immediate children of root are returned; otherwise every
// file and directory anywhere under root is a candidate, each path
// built by joining the walk's current directory with the entry name.
//
// Errors from the underlying ReadDir (permission denied, missing
// root) propagate to the caller unwrapped. Symlinked directories are
// not followed specially; a cyclic symlink behaves however ReadDir
// recursion behaves.
func (f *Finder) collect(root string, topOnly bool) ([]string, error) {
	if topOnly {
		entries, err := f.fs.ReadDir(root)
		if err != nil {
			return nil, err
		}
		items := make([]string, 0, len(entries))
		for _, entry := range entries {
			items = append(items, filepath.Join(root, entry.Name()))
		}
		return items, nil
	}

	var items []string
	var walk func(dir string) error
	walk = func(dir string) error {
		entries, err := f.fs.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			items = append(items, path)
			if entry.IsDir() {
				if err := walk(path); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return items, nil
}
