/*
Copyright © 2026 @se2mac
*/
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	// Game version the byte signatures were extracted from.
	testedVersion = "2.0.2.14"

	backupSuffix = ".backup"
)

var logger = log.New(os.Stderr)

var (
	checkOnly bool
	doRestore bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "se2patch [game-path]",
	Short: "run Space Engineers 2 on unsupported GPUs",
	Long: `se2patch patches the Space Engineers 2 renderer DLLs so the game starts on
GPUs that fail its FP64 capability check, such as Apple Silicon under
CrossOver/Wine. The game never actually uses FP64 shaders; only the check
is bypassed.

The Game2 folder is auto-detected in common CrossOver bottle locations, or
can be given as an argument. Originals are backed up next to the DLLs and
can be brought back with --restore.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run:     runPatcher,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := fang.Execute(context.Background(), rootCmd)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "report patch status without modifying anything")
	rootCmd.Flags().BoolVar(&doRestore, "restore", false, "restore original files from backups")
}
