package tasks

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	memstore "github.com/nixinlabs/nixin/internal/memory"
)

var TasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks and reminders interactively",
	Long:  `Open an interactive TUI to view, add, and delete stored tasks and reminders.`,
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(initialModel(), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Error running task manager: %v\n", err)
		}
	},
}

var tasksClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := memstore.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open memory store: %w", err)
		}
		defer store.Close()

		if err := store.ClearTasks(); err != nil {
			return err
		}
		fmt.Println("Tasks cleared.")
		return nil
	},
}

func init() {
	TasksCmd.AddCommand(tasksClearCmd)
}
