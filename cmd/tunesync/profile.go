package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rkuiper/tunesync/internal/locale"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage custom profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		tr := locale.English()
		for _, p := range c.Mirror.AllProfiles() {
			kind := "custom"
			if _, ok := tr.Lookup(p.Name); ok {
				kind = "built-in"
			}
			fmt.Printf("%-10s %s\n", kind, locale.DisplayName(tr, p.Name))
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a profile's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := newClient()
		if err != nil {
			return err
		}
		p, ok := c.Mirror.Catalog().FindByName(args[0])
		if !ok {
			return fmt.Errorf("no profile named %q", args[0])
		}
		fmt.Printf("Name:        %s\n", p.Name)
		fmt.Printf("Governor:    %s\n", p.CPU.Governor)
		fmt.Printf("Frequency:   %d-%d kHz\n", p.CPU.MinFrequency, p.CPU.MaxFrequency)
		fmt.Printf("No turbo:    %v\n", p.CPU.NoTurbo)
		fmt.Printf("Fan table:   %s\n", p.Fan.Table)
		if t, ok := cfg.FanTable(p.Fan.Table); ok {
			fmt.Printf("Fan points:  %d\n", len(t.Points))
		}
		fmt.Printf("Brightness:  %d%% (applied: %v)\n", p.Display.Brightness, p.Display.UseBrightness)
		fmt.Printf("Webcam off:  %v\n", p.WebcamDisabled)
		return nil
	},
}

var profileCopyCmd = &cobra.Command{
	Use:   "copy <source> <new-name>",
	Short: "Copy a profile under a new name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		res := c.Pipeline.CopyProfile(cmd.Context(), args[0], args[1]).Wait(cmd.Context())
		if !res.OK {
			return fmt.Errorf("copy failed: %s: %s", res.Code, res.Detail)
		}
		fmt.Printf("Created profile %q\n", args[1])
		return nil
	},
}

var deleteYes bool

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a custom profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		if !deleteYes {
			var confirmed bool
			confirm := huh.NewConfirm().
				Title(fmt.Sprintf("Delete profile %q?", args[0])).
				Description("States assigned to it keep the stale name until reassigned.").
				Value(&confirmed)
			if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted")
				return nil
			}
		}

		res := c.Pipeline.DeleteCustomProfile(cmd.Context(), args[0]).Wait(cmd.Context())
		if !res.OK {
			return fmt.Errorf("delete failed: %s: %s", res.Code, res.Detail)
		}
		fmt.Printf("Deleted profile %q\n", args[0])
		return nil
	},
}

var setFlags struct {
	rename     string
	governor   string
	minFreq    int
	maxFreq    int
	noTurbo    bool
	fanTable   string
	brightness int
	states     []string
}

var profileSetCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Edit a custom profile and commit the result",
	Long: `Edit fields of a custom profile through an edit session and commit
the draft. Only flags that were set change the profile.

Examples:
  tunesync profile set Office --governor performance --max-freq 4200000
  tunesync profile set Office --rename Studio --state power_ac`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}

		if !c.Editor.Begin(args[0]) {
			return fmt.Errorf("no custom profile named %q", args[0])
		}
		draft := c.Editor.Draft()

		if cmd.Flags().Changed("rename") {
			draft.Name = setFlags.rename
		}
		if cmd.Flags().Changed("governor") {
			draft.CPU.Governor = setFlags.governor
		}
		if cmd.Flags().Changed("min-freq") {
			draft.CPU.MinFrequency = setFlags.minFreq
		}
		if cmd.Flags().Changed("max-freq") {
			draft.CPU.MaxFrequency = setFlags.maxFreq
		}
		if cmd.Flags().Changed("no-turbo") {
			draft.CPU.NoTurbo = setFlags.noTurbo
		}
		if cmd.Flags().Changed("fan-table") {
			draft.Fan.Table = setFlags.fanTable
		}
		if cmd.Flags().Changed("brightness") {
			draft.Display.Brightness = setFlags.brightness
			draft.Display.UseBrightness = true
		}

		// State reassignment rides along as one atomic commit.
		if len(setFlags.states) > 0 {
			res := c.Pipeline.WriteProfile(cmd.Context(), args[0], *draft, setFlags.states).Wait(cmd.Context())
			c.Editor.Clear()
			if !res.OK {
				return fmt.Errorf("write failed: %s: %s", res.Code, res.Detail)
			}
			fmt.Printf("Updated profile %q\n", draft.Name)
			return nil
		}

		res := c.Pipeline.CommitEditing(cmd.Context())
		if !res.OK {
			return fmt.Errorf("commit failed: %s: %s", res.Code, res.Detail)
		}
		fmt.Printf("Updated profile %q\n", draft.Name)
		return nil
	},
}

func init() {
	profileDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation")

	profileSetCmd.Flags().StringVar(&setFlags.rename, "rename", "", "new profile name")
	profileSetCmd.Flags().StringVar(&setFlags.governor, "governor", "", "CPU governor")
	profileSetCmd.Flags().IntVar(&setFlags.minFreq, "min-freq", 0, "minimum CPU frequency (kHz)")
	profileSetCmd.Flags().IntVar(&setFlags.maxFreq, "max-freq", 0, "maximum CPU frequency (kHz)")
	profileSetCmd.Flags().BoolVar(&setFlags.noTurbo, "no-turbo", false, "disable turbo boost")
	profileSetCmd.Flags().StringVar(&setFlags.fanTable, "fan-table", "", "fan curve table name")
	profileSetCmd.Flags().IntVar(&setFlags.brightness, "brightness", 0, "display brightness percent")
	profileSetCmd.Flags().StringSliceVar(&setFlags.states, "state", nil, "state identifier(s) to assign this profile to")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileCopyCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	profileCmd.AddCommand(profileSetCmd)
}
