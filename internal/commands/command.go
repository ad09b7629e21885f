package commands

import (
	mcpcmd "github.com/nixinlabs/nixin/internal/commands/mcp"
	setcmd "github.com/nixinlabs/nixin/internal/commands/set"
	taskscmd "github.com/nixinlabs/nixin/internal/commands/tasks"
)

func init() {
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(mcpcmd.McpCmd)
	rootCmd.AddCommand(setcmd.SetCmd)
	rootCmd.AddCommand(taskscmd.TasksCmd)
}
