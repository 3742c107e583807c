package util

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyFile duplicates src at dest with the given mode. The copy reads the
// whole file into memory, which is fine for the log-sized files we handle.
func CopyFile(fs afero.Fs, src string, dest string, mode os.FileMode) error {
	content, err := afero.ReadFile(fs, src)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fs, dest, content, mode); err != nil {
		return err
	}
	// WriteFile leaves the mode of a pre-existing destination alone.
	return fs.Chmod(dest, mode)
}

// CopyTree duplicates the directory src under dest, keeping file modes.
func CopyTree(fs afero.Fs, src string, dest string) error {
	return afero.Walk(fs, src, func(srcPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, srcPath)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dest, relPath)
		if info.IsDir() {
			return fs.MkdirAll(destPath, info.Mode().Perm())
		}
		return CopyFile(fs, srcPath, destPath, info.Mode().Perm())
	})
}

// CreateFolderIfNotExist makes folder and any missing parents.
func CreateFolderIfNotExist(fs afero.Fs, folder string) error {
	if _, err := fs.Stat(folder); os.IsNotExist(err) {
		return fs.MkdirAll(folder, 0o755)
	} else if err != nil {
		return err
	}
	return nil
}
