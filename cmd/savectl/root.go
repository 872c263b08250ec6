package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/emeraldtools/savekit/namedb"
	"github.com/emeraldtools/savekit/pkg/save"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	slotArg int
	layout  string
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:   "savectl",
	Short: "Inspect Gen-3 flash save files",
	Long: `savectl reads Pokémon Emerald-family save files, including the Quetzal
ROM hack. It validates sectors, picks the newest save slot, reassembles the
logical save blocks and decodes the party and trainer data.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		IntVar(&slotArg, "slot", 0, "Force save slot (1 or 2, 0 = auto-detect)")
	rootCmd.PersistentFlags().
		StringVar(&layout, "layout", "quetzal", "Party record layout (quetzal, vanilla)")
	rootCmd.PersistentFlags().
		StringVar(&dataDir, "data", "", "Directory with name lookup tables (JSON)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openSave opens path with the global flag set applied.
func openSave(path string) (save.Reader, error) {
	opts := save.OpenOptions{
		Layout:             layout,
		CollectDiagnostics: true,
	}
	switch slotArg {
	case 0:
		opts.Slot = save.SlotAuto
	case 1:
		opts.Slot = save.Slot1
	case 2:
		opts.Slot = save.Slot2
	default:
		return nil, fmt.Errorf("invalid --slot %d (want 1 or 2)", slotArg)
	}
	printVerbose("Opening save: %s\n", path)
	return save.Open(path, opts)
}

// openNames loads the lookup tables, falling back to numeric rendering.
func openNames() *namedb.DB {
	if dataDir == "" {
		return namedb.Empty()
	}
	db, err := namedb.Load(dataDir)
	if err != nil {
		printError("%v (falling back to numeric names)\n", err)
		return namedb.Empty()
	}
	return db
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
