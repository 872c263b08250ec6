package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <save>",
		Short: "Validate a save file and report slot selection and trainer data",
		Long: `The info command parses a save file and displays slot selection,
sector statistics, the player name and play time, and the party size.

Example:
  savectl info player1.sav
  savectl info player1.sav --slot 2
  savectl info player1.sav --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

func runInfo(args []string) error {
	r, err := openSave(args[0])
	if err != nil {
		return err
	}
	defer r.Close()
	db := openNames()

	if jsonOut {
		view, err := makeSaveView(db, r, verbose)
		if err != nil {
			return err
		}
		return printJSON(view)
	}

	info := r.Info()
	printInfo("%s\n", styled(headerStyle, "Save Information"))
	printInfo("  File: %s (%d bytes)\n", args[0], info.FileSize)
	printInfo("  Layout: %s\n", info.Layout)
	printInfo("  Active slot: %s (sector %d", info.ActiveSlotName, info.ActiveSlotStart)
	if info.Forced {
		printInfo(", forced")
	}
	printInfo(")\n")
	printInfo("  Slot counters: slot1=%d slot2=%d\n", info.Slot1Counter, info.Slot2Counter)
	printInfo("  Valid sectors: %d/%d, mapped ids: %d\n",
		info.ValidSectors, len(r.Sectors()), info.MappedSectors)

	trainer, err := r.Trainer()
	if err != nil {
		return fmt.Errorf("trainer data: %w", err)
	}
	printInfo("\n%s\n", styled(headerStyle, "Trainer"))
	printInfo("  Player: %s\n", db.DecodeText(trainer.NameRaw))
	printInfo("  Play time: %dh %dm %ds\n",
		trainer.PlayTimeHours, trainer.PlayTimeMinutes, trainer.PlayTimeSeconds)

	party, err := r.Party()
	if err != nil {
		return fmt.Errorf("party data: %w", err)
	}
	printInfo("  Party: %d Pokémon\n", len(party))

	if rep := r.Diagnostics(); rep != nil && len(rep.Diagnostics) > 0 {
		printInfo("\n%s\n", styled(headerStyle, "Diagnostics"))
		printInfo("  %d error(s), %d warning(s), %d info\n",
			rep.Summary.Errors, rep.Summary.Warnings, rep.Summary.Info)
		if verbose {
			for _, d := range rep.Diagnostics {
				printInfo("  %s\n", d)
			}
		}
	}
	return nil
}
