package main

import (
	"fmt"
	"os"

	"github.com/rkuiper/tunesync/internal/client"
	"github.com/rkuiper/tunesync/internal/config"
	"github.com/rkuiper/tunesync/internal/push"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "tunesync",
	Short: "Stage and commit power/performance profiles to tunesyncd",
	Long:  "tunesync mirrors the tunesyncd daemon's settings and profiles, stages local edits, and hands committed changes to the daemon through a privilege-elevation helper.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show status
		return statusCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tunesync %s\n", version)
	},
}

// newClient builds the per-invocation service object and refreshes the
// mirror once from the daemon's state file.
func newClient() (*client.Client, config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	c := client.New(cfg, push.FileSource{Path: cfg.StateFile}, nil)
	c.Mirror.Refresh()
	return c, cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.File(), "client config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
