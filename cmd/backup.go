package cmd

import (
	"crypto/md5" // nolint:gosec
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// copyFn is swapped for the progress-rendering copy when stdout is a terminal.
var copyFn = copyFile

// backupFile copies the target to its sibling .backup path unless one is
// already there. An existing backup is never overwritten, so the very first
// pre-patch state survives repeated runs. A fresh backup is checksummed
// against the source before it is trusted. Reports whether a new backup was
// created.
func backupFile(path string) (bool, error) {
	backupPath := path + backupSuffix
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if err := copyFn(path, backupPath); err != nil {
		return false, err
	}

	srcSum, err := fileMD5(path)
	if err != nil {
		return false, err
	}
	backupSum, err := fileMD5(backupPath)
	if err != nil {
		return false, err
	}
	if srcSum != backupSum {
		return false, fmt.Errorf("backup %s does not match source (checksum mismatch)", backupPath)
	}
	return true, nil
}

// restoreFile copies the backup over the target, overwriting its current
// content, and checksums the result against the backup so an interrupted
// copy cannot pass as a restored file. Reports false when no backup exists.
// The backup itself is kept so the file can be restored again later.
func restoreFile(path string) (bool, error) {
	backupPath := path + backupSuffix
	if _, err := os.Stat(backupPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if err := copyFn(backupPath, path); err != nil {
		return false, err
	}

	backupSum, err := fileMD5(backupPath)
	if err != nil {
		return false, err
	}
	restoredSum, err := fileMD5(path)
	if err != nil {
		return false, err
	}
	if restoredSum != backupSum {
		return false, fmt.Errorf("restored %s does not match backup (checksum mismatch)", path)
	}
	return true, nil
}

func fileMD5(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close() // nolint:errcheck

	h := md5.New() // nolint:gosec
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
