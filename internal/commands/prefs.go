package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nixinlabs/nixin/internal/memory"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "List stored preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := memory.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open memory store: %w", err)
		}
		defer store.Close()

		prefs, err := store.GetPreferences()
		if err != nil {
			return err
		}
		if len(prefs) == 0 {
			fmt.Println("No preferences stored.")
			return nil
		}
		for _, p := range prefs {
			fmt.Printf("%s = %s  (updated %s)\n", p.Key, p.Value, p.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var prefsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a stored preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := memory.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open memory store: %w", err)
		}
		defer store.Close()

		if err := store.DeletePreference(args[0]); err != nil {
			return err
		}
		fmt.Printf("Preference %q deleted.\n", args[0])
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsDeleteCmd)
}
