// Package paths fixes where the packaged icon artifact lives and how it is
// written.
package paths

import (
	"os"
	"path/filepath"
)

const (
	// OutputDirName is created next to the working directory if missing.
	OutputDirName = "assets"
	IconFileName  = "icon.ico"

	DirPerm  = 0755
	FilePerm = 0644
)

// OutputPath returns the relative path the icon container is written to.
func OutputPath() string {
	return filepath.Join(OutputDirName, IconFileName)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed, so a failed
// run leaves either the previous file or no file, never a torn one.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
