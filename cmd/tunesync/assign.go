package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assignCmd = &cobra.Command{
	Use:   "assign <profile> <state>",
	Short: "Set the active profile for an operating condition",
	Long: `Set the active profile for an operating condition.

Examples:
  tunesync assign LEGACY_COOL_AND_BREEZY power_bat
  tunesync assign Office power_ac`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		res := c.Pipeline.AssignProfile(cmd.Context(), args[0], args[1])
		if !res.OK {
			return fmt.Errorf("assign failed: %s: %s", res.Code, res.Detail)
		}
		fmt.Printf("Assigned %q to %s\n", args[0], args[1])
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Commit the current settings and profiles unchanged",
	Long:  "Re-stage the mirrored settings and custom profiles and hand them to the daemon. Useful to re-apply after a daemon reset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		res := c.Pipeline.SaveSettings(cmd.Context()).Wait(cmd.Context())
		if !res.OK {
			return fmt.Errorf("save failed: %s: %s", res.Code, res.Detail)
		}
		fmt.Println("Settings saved")
		return nil
	},
}
