package set

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var SetCmd = &cobra.Command{
	Use:   "set",
	Short: "Configure nixin settings interactively",
	Long:  `Open an interactive TUI to configure provider credentials, the embedding model, and the recall strategy.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(initialModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running settings: %v\n", err)
		}
	},
}
