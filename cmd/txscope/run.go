package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuemby/txscope/pkg/engine"
	"github.com/cuemby/txscope/pkg/fixtures"
	"github.com/cuemby/txscope/pkg/interpreter"
	"github.com/cuemby/txscope/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run <fixture-name>",
	Short: "Run a saved fixture against a fresh in-memory engine",
	Long: `Run loads a named fixture, seeds a new engine.ReferenceEngine with its
worktop contents, decodes its instruction list into a transaction, and
prints the outputs and any error interpreter.Run produces.

Examples:
  # Run the "take-return" fixture
  txscope run take-return --data-dir ./txscope-data`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("data-dir", "./txscope-data", "Directory holding the fixture database")
}

func runRun(cmd *cobra.Command, args []string) error {
	name := args[0]
	dataDir, _ := cmd.Flags().GetString("data-dir")

	store, err := fixtures.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open fixture store: %w", err)
	}
	defer store.Close()

	fixture, err := store.Get(name)
	if err != nil {
		return fmt.Errorf("load fixture %q: %w", name, err)
	}

	tx, err := fixture.ToTransaction()
	if err != nil {
		return fmt.Errorf("decode fixture %q: %w", name, err)
	}

	eng := engine.NewReferenceEngine()
	if err := seedEngine(eng, fixture); err != nil {
		return fmt.Errorf("seed engine: %w", err)
	}

	result := interpreter.Run(tx, eng)

	fmt.Printf("outputs (%d):\n", len(result.Outputs))
	for i, out := range result.Outputs {
		fmt.Printf("  [%d] %+v\n", i, out)
	}

	if result.Err != nil {
		fmt.Printf("error: %v\n", result.Err)
		fmt.Println("outcome: rejected")
		return nil
	}

	fmt.Println("outcome: committed")
	return nil
}

func seedEngine(eng *engine.ReferenceEngine, f *fixtures.Fixture) error {
	for _, seed := range f.SeedFungible {
		amount, err := types.ParseDecimal(seed.Amount)
		if err != nil {
			return fmt.Errorf("seed %q: %w", seed.Resource, err)
		}
		eng.SeedFungible(types.ResourceAddress(seed.Resource), amount)
	}

	for _, seed := range f.SeedNonFungible {
		ids := make([]types.NonFungibleId, len(seed.Ids))
		for i, id := range seed.Ids {
			ids[i] = types.NonFungibleId(id)
		}
		eng.SeedNonFungible(types.ResourceAddress(seed.Resource), ids)
	}

	return nil
}
