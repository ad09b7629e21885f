package mcp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/nixinlabs/nixin/internal/engine"
	"github.com/nixinlabs/nixin/internal/memory"
	"github.com/nixinlabs/nixin/internal/utils"
)

// McpCmd is the command to start the MCP server
var McpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio",
	Long:  `Start a Model Context Protocol (MCP) server that communicates over stdio. This allows nixin to be used as an MCP tool provider.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMcpServer(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runMcpServer() error {
	s := server.NewMCPServer(
		"nixin",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register the nixin_process tool
	processTool := mcp.NewTool("nixin_process",
		mcp.WithDescription("Process a natural-language utterance through the assistant pipeline: classify intent, extract entities, and execute the resulting action (save a preference, store a task, schedule a meeting, or recall a past turn)."),
		mcp.WithString("utterance",
			mcp.Required(),
			mcp.Description("The utterance to process (e.g., 'remind me to pay rent tomorrow')"),
		),
	)
	s.AddTool(processTool, handleProcess)

	// Register the nixin_recall tool
	recallTool := mcp.NewTool("nixin_recall",
		mcp.WithDescription("Search past conversation turns for the one most similar to the query. Returns the best match and its relevance score without recording the query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The query to search past turns for"),
		),
	)
	s.AddTool(recallTool, handleRecall)

	// Register the nixin_tasks tool
	tasksTool := mcp.NewTool("nixin_tasks",
		mcp.WithDescription("List all stored tasks and reminders with their scheduled times."),
	)
	s.AddTool(tasksTool, handleTasks)

	return server.ServeStdio(s)
}

func requireString(args map[string]any, name string) (string, *mcp.CallToolResult) {
	arg, ok := args[name]
	if !ok {
		return "", mcp.NewToolResultError(fmt.Sprintf("missing required parameter: %s", name))
	}
	value, ok := arg.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", mcp.NewToolResultError(fmt.Sprintf("parameter '%s' must be a non-empty string", name))
	}
	return value, nil
}

// handleProcess handles the nixin_process tool call
func handleProcess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("missing arguments"), nil
	}

	input, errResult := requireString(args, "utterance")
	if errResult != nil {
		return errResult, nil
	}

	config, err := utils.LoadConfig()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load config: %v", err)), nil
	}

	store, err := memory.NewStore()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open memory store: %v", err)), nil
	}
	defer store.Close()

	assistant := engine.New(store, config)
	turn, err := assistant.Process(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("processing failed: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Intent: %s (confidence %.2f)\n", turn.Analysis.Intent, turn.Analysis.Confidence)
	if turn.Analysis.Person != "" {
		fmt.Fprintf(&sb, "Person: %s\n", turn.Analysis.Person)
	}
	if turn.Analysis.Time != "" {
		fmt.Fprintf(&sb, "Time: %s\n", turn.Analysis.Time)
	}
	sb.WriteString(turn.Reply)
	return mcp.NewToolResultText(sb.String()), nil
}

// handleRecall handles the nixin_recall tool call
func handleRecall(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("missing arguments"), nil
	}

	query, errResult := requireString(args, "query")
	if errResult != nil {
		return errResult, nil
	}

	config, err := utils.LoadConfig()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load config: %v", err)), nil
	}

	store, err := memory.NewStore()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open memory store: %v", err)), nil
	}
	defer store.Close()

	assistant := engine.New(store, config)
	result, err := assistant.Recall(ctx, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("recall failed: %v", err)), nil
	}
	if result == nil {
		return mcp.NewToolResultText("No relevant memory found."), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Match: %s\nScore: %.2f", result.Match, result.Score)), nil
}

// handleTasks handles the nixin_tasks tool call
func handleTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store, err := memory.NewStore()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to open memory store: %v", err)), nil
	}
	defer store.Close()

	tasks, err := store.GetTasks()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list tasks: %v", err)), nil
	}
	if len(tasks) == 0 {
		return mcp.NewToolResultText("No tasks stored."), nil
	}

	var sb strings.Builder
	for _, task := range tasks {
		fmt.Fprintf(&sb, "- %s (%s)\n", task.Task, task.Time)
	}
	return mcp.NewToolResultText(strings.TrimRight(sb.String(), "\n")), nil
}
