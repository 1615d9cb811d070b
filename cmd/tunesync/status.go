package main

import (
	"fmt"
	"sort"

	"github.com/rkuiper/tunesync/internal/locale"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mirrored settings and profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := newClient()
		if err != nil {
			return err
		}
		tr := locale.English()

		settings := c.Mirror.CurrentSettings()
		fmt.Println("State assignments:")
		if len(settings.StateMap) == 0 {
			fmt.Println("  (none)")
		} else {
			states := make([]string, 0, len(settings.StateMap))
			for s := range settings.StateMap {
				states = append(states, s)
			}
			sort.Strings(states)
			for _, s := range states {
				fmt.Printf("  %-12s %s\n", s, locale.DisplayName(tr, settings.StateMap[s]))
			}
		}

		fmt.Println("\nBuilt-in profiles:")
		for _, p := range c.Mirror.BuiltinProfiles() {
			if e, ok := tr.Lookup(p.Name); ok {
				fmt.Printf("  %s: %s\n", e.Name, e.Description)
			} else {
				fmt.Printf("  %s\n", p.Name)
			}
		}

		fmt.Println("\nCustom profiles:")
		custom := c.Mirror.CustomProfiles()
		if len(custom) == 0 {
			fmt.Println("  (none)")
		}
		for _, p := range custom {
			fmt.Printf("  %s\n", p.Name)
		}
		return nil
	},
}
