package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	patchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	originalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	unknownStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func styledStatus(s patchStatus) string {
	switch s {
	case statusOriginal:
		return originalStyle.Render("✗ not patched")
	case statusPatched:
		return patchedStyle.Render("✓ already patched")
	default:
		return unknownStyle.Render("? unknown version")
	}
}

func runPatcher(cmd *cobra.Command, args []string) {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		copyFn = copyWithProgress
	}

	gamePath := resolveGamePath(args)
	if info, err := os.Stat(gamePath); err != nil || !info.IsDir() {
		logger.Fatal("Path does not exist", "path", gamePath)
	}

	var missing []string
	for _, name := range targetNames() {
		if _, err := os.Stat(filepath.Join(gamePath, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		for _, name := range missing {
			logger.Error("Missing required file", "file", name)
		}
		logger.Fatal("Make sure the path points at the Game2 folder", "path", gamePath)
	}

	logger.Info("Space Engineers 2 GPU check patch", "tested_version", testedVersion)

	statuses := make(map[string]patchStatus, len(patches))
	for _, name := range targetNames() {
		status, err := checkPatchStatus(filepath.Join(gamePath, name), patches[name])
		if err != nil {
			logger.Fatal("Failed to read file", "file", name, "err", err)
		}
		statuses[name] = status
		fmt.Printf("  %s: %s\n", name, styledStatus(status))
	}

	switch {
	case doRestore:
		restoreAll(gamePath)
	case checkOnly:
		// read-only run, the report above is all there is
	default:
		if err := applyAll(gamePath, statuses); err != nil {
			logger.Fatal("Aborted", "err", err)
		}
	}
}

// resolveGamePath prefers an explicit argument, then the locator, then asks.
// An empty answer is fatal: there is nothing to patch without a path.
func resolveGamePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if path := findGamePath(defaultBottleRoots()); path != "" {
		logger.Info("Found game", "path", path)
		return path
	}

	var path string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Could not find a Space Engineers 2 installation.").
				Description("Enter the path to the Game2 folder").
				Value(&path),
		),
	).Run()
	if err != nil {
		logger.Fatal("UI failed", "err", err)
	}
	if path == "" {
		logger.Fatal("No game path supplied")
	}
	return path
}

// restoreAll puts every target back from its backup. A file without a backup
// is a per-file warning, never a reason to stop or to fail the run.
func restoreAll(gamePath string) {
	for _, name := range targetNames() {
		restored, err := restoreFile(filepath.Join(gamePath, name))
		switch {
		case err != nil:
			logger.Error("Restore failed", "file", name, "err", err)
		case restored:
			logger.Info("Restored from backup", "file", name)
		default:
			logger.Warn("No backup found", "file", name)
		}
	}
	logger.Info("Restore complete")
}

// confirmFn is swapped in tests; the real prompt needs a terminal.
var confirmFn = confirmUnknown

// applyAll backs up and patches every file that is not already patched.
// Unrecognized signatures need a one-time confirmation before anything is
// touched; declining returns an error with every file left as it was.
func applyAll(gamePath string, statuses map[string]patchStatus) error {
	var unknown []string
	allPatched := true
	for _, name := range targetNames() {
		switch statuses[name] {
		case statusUnknown:
			unknown = append(unknown, name)
			allPatched = false
		case statusOriginal:
			allPatched = false
		}
	}

	if len(unknown) > 0 && !confirmFn(unknown) {
		return errors.New("declined to patch unrecognized files, nothing was modified")
	}

	if allPatched {
		logger.Info("All files are already patched, nothing to do")
		return nil
	}

	for _, name := range targetNames() {
		if statuses[name] == statusPatched {
			logger.Info("Skipping, already patched", "file", name)
			continue
		}

		path := filepath.Join(gamePath, name)
		created, err := backupFile(path)
		if err != nil {
			return fmt.Errorf("backup of %s failed: %w", name, err)
		}
		if created {
			logger.Info("Created backup", "backup", name+backupSuffix)
		} else {
			logger.Info("Backup already exists, keeping it", "backup", name+backupSuffix)
		}

		if err := applyPatch(path, patches[name]); err != nil {
			return fmt.Errorf("patching %s failed: %w", name, err)
		}
		logger.Info("Patched", "file", name, "change", patches[name].description)
	}

	logger.Info("Patching complete. Run with --restore to undo")
	return nil
}

func confirmUnknown(files []string) bool {
	for _, name := range files {
		logger.Warn("Unrecognized signature, file may be from a different game version", "file", name)
	}

	var proceed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Some files have unrecognized signatures.").
				Description("Patching them may corrupt a game version this tool was not made for.\nContinue anyway?").
				Affirmative("Yes").
				Negative("No").
				Value(&proceed),
		),
	).Run()
	if err != nil {
		logger.Fatal("UI failed", "err", err)
	}
	return proceed
}
