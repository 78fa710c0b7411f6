package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Propel-2-Excel/point-system-frontend/internal/appupdate"
	"github.com/Propel-2-Excel/point-system-frontend/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for updates.",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("pointsdash", version.String())

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			result, err := appupdate.Check(ctx, appupdate.CheckOptions{
				CurrentVersion: version.Version,
			})
			if err != nil {
				return
			}
			if result.UpdateAvailable {
				fmt.Printf("Update available: %s (%s)\n", result.LatestVersion, result.UpgradeHint)
			}
		},
	}
}
