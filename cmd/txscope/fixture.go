package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cuemby/txscope/pkg/fixtures"
)

var fixtureCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Manage saved transaction fixtures",
}

var fixtureApplyCmd = &cobra.Command{
	Use:   "apply -f <file>",
	Short: "Save a fixture from a YAML file",
	Long: `Apply reads a fixture definition from a YAML file and saves it under
its Name in the fixture database.

Examples:
  txscope fixture apply -f take-return.yaml`,
	RunE: runFixtureApply,
}

var fixtureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved fixture names",
	RunE:  runFixtureList,
}

var fixtureDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved fixture",
	Args:  cobra.ExactArgs(1),
	RunE:  runFixtureDelete,
}

func init() {
	fixtureApplyCmd.Flags().StringP("file", "f", "", "YAML fixture file (required)")
	_ = fixtureApplyCmd.MarkFlagRequired("file")

	for _, c := range []*cobra.Command{fixtureApplyCmd, fixtureListCmd, fixtureDeleteCmd} {
		c.Flags().String("data-dir", "./txscope-data", "Directory holding the fixture database")
	}

	fixtureCmd.AddCommand(fixtureApplyCmd)
	fixtureCmd.AddCommand(fixtureListCmd)
	fixtureCmd.AddCommand(fixtureDeleteCmd)
}

func openStore(cmd *cobra.Command) (*fixtures.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	return fixtures.Open(dataDir)
}

func runFixtureApply(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")

	data, err := readFile(filename)
	if err != nil {
		return fmt.Errorf("read fixture file: %w", err)
	}

	var f fixtures.Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse fixture file: %w", err)
	}
	if f.Name == "" {
		return fmt.Errorf("fixture file %q has no name", filename)
	}

	store, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open fixture store: %w", err)
	}
	defer store.Close()

	if err := store.Save(&f); err != nil {
		return fmt.Errorf("save fixture %q: %w", f.Name, err)
	}

	fmt.Printf("saved fixture %q\n", f.Name)
	return nil
}

func runFixtureList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open fixture store: %w", err)
	}
	defer store.Close()

	names, err := store.List()
	if err != nil {
		return fmt.Errorf("list fixtures: %w", err)
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

func runFixtureDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open fixture store: %w", err)
	}
	defer store.Close()

	if err := store.Delete(args[0]); err != nil {
		return fmt.Errorf("delete fixture %q: %w", args[0], err)
	}

	fmt.Printf("deleted fixture %q\n", args[0])
	return nil
}
