package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v80/github"
	"github.com/spf13/cobra"
)

const version = "1.1.0"

const (
	releaseOwner = "se2mac"
	releaseRepo  = "se2patch"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "check whether a newer release of the patcher exists",
	Long: `Checks GitHub for the latest published release. New releases carry the
signatures for new game versions. Nothing is downloaded; the release page
URL is printed when an update is available.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tag, url, err := fetchLatestRelease()
		if err != nil {
			logger.Fatal("Failed to check releases", "err", err)
		}
		if strings.TrimPrefix(tag, "v") == version {
			logger.Info("Already on the latest release", "version", version)
			return
		}
		logger.Info("Newer release available", "current", version, "latest", tag)
		if url != "" {
			fmt.Println(url)
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

// fetchLatestRelease returns the tag and release page URL of the newest
// published release. Unauthenticated access is fine at this query volume.
func fetchLatestRelease() (string, string, error) {
	client := github.NewClient(nil)

	release, _, err := client.Repositories.GetLatestRelease(context.Background(), releaseOwner, releaseRepo)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch latest release: %w", err)
	}
	return release.GetTagName(), release.GetHTMLURL(), nil
}
