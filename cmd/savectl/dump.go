package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var dumpWidth int

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpWidth, "width", 16, "Bytes per output row")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <save>",
		Short: "Hex dump of the raw party record bytes",
		Long: `The dump command prints each decoded party record's raw bytes, with
the personality field highlighted. Useful when reverse-engineering layout
variants.

Example:
  savectl dump player1.sav
  savectl dump player1.sav --layout vanilla --width 26`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	r, err := openSave(args[0])
	if err != nil {
		return err
	}
	defer r.Close()
	db := openNames()

	party, err := r.Party()
	if err != nil {
		return err
	}
	if len(party) == 0 {
		printInfo("No Pokémon found in party.\n")
		return nil
	}

	if dumpWidth < 1 {
		dumpWidth = 16
	}
	for _, p := range party {
		printInfo("%s\n", styled(boldStyle,
			fmt.Sprintf("Slot %d: %s", p.Slot, db.DecodeText(p.NicknameRaw))))
		printInfo("%s\n", hexRows(p.Raw, dumpWidth, 4))
	}
	return nil
}

// hexRows renders b as space-separated hex bytes, width per row, with the
// first highlight bytes styled.
func hexRows(b []byte, width, highlight int) string {
	var out strings.Builder
	for i, c := range b {
		cell := fmt.Sprintf("%02x", c)
		if i < highlight {
			cell = styled(faintedStyle, cell)
		}
		out.WriteString(cell)
		if (i+1)%width == 0 {
			out.WriteByte('\n')
		} else if i != len(b)-1 {
			out.WriteByte(' ')
		}
	}
	return strings.TrimRight(out.String(), "\n")
}
