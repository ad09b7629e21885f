package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nixinlabs/nixin/internal/memory"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "Show or search recorded conversation history",
	Long: `Show recent conversation history, or search it with full-text
search when a query is given.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := memory.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open memory store: %w", err)
		}
		defer store.Close()

		if len(args) > 0 {
			return searchHistory(store, strings.Join(args, " "))
		}
		return showRecentHistory(store)
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded conversation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := memory.NewStore()
		if err != nil {
			return fmt.Errorf("failed to open memory store: %w", err)
		}
		defer store.Close()

		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum entries to show")
	historyCmd.AddCommand(historyClearCmd)
}

func showRecentHistory(store *memory.Store) error {
	items, err := store.GetRecentHistory(historyLimit)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("No conversation history yet.")
		return nil
	}
	for _, item := range items {
		fmt.Printf("%s  %s\n", item.CreatedAt.Format("2006-01-02 15:04"), item.Content)
	}
	return nil
}

func searchHistory(store *memory.Store, query string) error {
	results, err := store.SearchHistory(query, historyLimit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%s  %s\n", r.Item.CreatedAt.Format("2006-01-02 15:04"), r.Snippet)
	}
	return nil
}
