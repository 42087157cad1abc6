package cmd

import (
	"fmt"
	"io"
	"os"
)

// copyFile copies a file from src to dst, carrying over the permission bits
// and modification time.
func copyFile(src, dst string) error {
	sourceFileStat, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !sourceFileStat.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	source, err := os.Open(src)
	if err != nil {
		return err
	}
	defer source.Close() // nolint:errcheck

	destination, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(destination, source); err != nil {
		destination.Close() // nolint:errcheck
		return err
	}
	if err := destination.Close(); err != nil {
		return err
	}
	if err := os.Chmod(dst, sourceFileStat.Mode()); err != nil {
		return err
	}
	return os.Chtimes(dst, sourceFileStat.ModTime(), sourceFileStat.ModTime())
}
