package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nixinlabs/nixin/internal/engine"
	"github.com/nixinlabs/nixin/internal/memory"
	"github.com/nixinlabs/nixin/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "nixin",
	Short: "nixin is a rule-driven personal assistant with persistent memory",
	Long: `nixin is a rule-driven personal assistant with persistent memory.

Pass an utterance to process it through the intent pipeline:
  nixin "remind me to pay rent tomorrow"`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}

		input := strings.Join(args, " ")
		if err := runUtterance(input); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// AddCommand adds a subcommand to the root command
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runUtterance(input string) error {
	config, err := utils.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := memory.NewStore()
	if err != nil {
		return fmt.Errorf("failed to open memory store: %w", err)
	}
	defer store.Close()

	assistant := engine.New(store, config)
	turn, err := assistant.Process(context.Background(), input)
	if err != nil {
		return err
	}

	printTurn(turn, config.Debug)
	return nil
}

func printTurn(turn *engine.Turn, debug bool) {
	fmt.Println("===== CONTEXTUAL RESPONSE =====")
	fmt.Printf("Intent: %s\n", turn.Analysis.Intent)
	fmt.Printf("Confidence: %.2f\n", turn.Analysis.Confidence)
	if turn.Analysis.Person != "" {
		fmt.Printf("Person: %s\n", turn.Analysis.Person)
	}
	if turn.Analysis.Time != "" {
		fmt.Printf("Time: %s\n", turn.Analysis.Time)
	}
	if debug {
		for _, e := range turn.Analysis.Entities {
			fmt.Printf("Entity: %-6s %q\n", e.Label, e.Text)
		}
		fmt.Printf("Action: %s\n", turn.Plan.Action)
	}
	fmt.Printf("Assistant: %s\n", turn.Reply)
}
