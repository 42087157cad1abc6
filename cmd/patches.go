package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sort"
)

// patchEntry describes one in-place byte replacement at a fixed offset.
// original and patched always have the same length, so the target file never
// grows or shrinks.
type patchEntry struct {
	description string
	offset      int64
	original    []byte
	patched     []byte
}

// Signatures for game version 2.0.2.14, keyed by DLL name inside Game2.
var patches = map[string]patchEntry{
	"VRage.Render.dll": {
		description: "ForceAllAdaptersSupported - always return true",
		offset:      0x58588,
		original:    []byte{0x02, 0x7B, 0x58, 0x0D, 0x00, 0x04, 0x2A},
		patched:     []byte{0x17, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2A},
	},
	"VRage.Render12.dll": {
		description: "IsSupported bypass - skip GPU compatibility check",
		offset:      0x81FF2,
		original:    []byte{0x02, 0x28, 0xE4, 0x14, 0x00, 0x06},
		patched:     []byte{0x00, 0x17, 0x00, 0x00, 0x00, 0x00},
	},
}

type patchStatus int

const (
	statusOriginal patchStatus = iota
	statusPatched
	statusUnknown
)

func (s patchStatus) String() string {
	switch s {
	case statusOriginal:
		return "original"
	case statusPatched:
		return "patched"
	default:
		return "unknown"
	}
}

// targetNames returns the patch table keys in stable order.
func targetNames() []string {
	names := make([]string, 0, len(patches))
	for name := range patches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// checkPatchStatus reads the signature window at the entry's offset and
// classifies the file. Exact byte equality only; a file too short to hold
// the window is unknown.
func checkPatchStatus(path string, entry patchEntry) (patchStatus, error) {
	f, err := os.Open(path)
	if err != nil {
		return statusUnknown, err
	}
	defer f.Close() // nolint:errcheck

	window := make([]byte, len(entry.original))
	if _, err := f.ReadAt(window, entry.offset); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return statusUnknown, nil
		}
		return statusUnknown, err
	}

	switch {
	case bytes.Equal(window, entry.original):
		return statusOriginal, nil
	case bytes.Equal(window, entry.patched):
		return statusPatched, nil
	default:
		return statusUnknown, nil
	}
}

// applyPatch overwrites the signature window with the patched bytes.
// The driver is responsible for backing the file up first.
func applyPatch(path string, entry patchEntry) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return err
	}
	defer f.Close() // nolint:errcheck

	_, err = f.WriteAt(entry.patched, entry.offset)
	return err
}
