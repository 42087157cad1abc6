package cmd

import (
	"os"
	"path/filepath"
)

// gameRelPath is where Steam puts the game inside a CrossOver bottle.
const gameRelPath = "drive_c/Program Files (x86)/Steam/steamapps/common/SpaceEngineers2/Game2"

func defaultBottleRoots() []string {
	roots := []string{
		"/Applications/CrossOver.app/Contents/SharedSupport/CrossOver/bottles",
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append([]string{
			filepath.Join(home, "Library/Application Support/CrossOver/Bottles"),
		}, roots...)
	}
	return roots
}

// findGamePath probes each bottle root for a bottle containing the Game2
// folder and returns the first match. Empty string means not found, which
// is not an error; the driver falls back to prompting for a path.
func findGamePath(roots []string) string {
	for _, root := range roots {
		bottles, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, bottle := range bottles {
			if !bottle.IsDir() {
				continue
			}
			gamePath := filepath.Join(root, bottle.Name(), filepath.FromSlash(gameRelPath))
			if info, err := os.Stat(gamePath); err == nil && info.IsDir() {
				return gamePath
			}
		}
	}
	return ""
}
