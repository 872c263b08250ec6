package main

import (
	"github.com/emeraldtools/savekit/pkg/save"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newSectorsCmd())
}

func newSectorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sectors <save>",
		Short: "Show per-sector footer details for both save slots",
		Long: `The sectors command lists every physical sector's logical id, save
counter and validity, grouped by slot region, and shows which slot was
selected and why.

Example:
  savectl sectors player1.sav
  savectl sectors player1.sav --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSectors(args)
		},
	}
	return cmd
}

func runSectors(args []string) error {
	r, err := openSave(args[0])
	if err != nil {
		return err
	}
	defer r.Close()

	sectors := r.Sectors()
	info := r.Info()

	if jsonOut {
		return printJSON(struct {
			Info    save.SaveInfo     `json:"info"`
			Sectors []save.SectorInfo `json:"sectors"`
			Map     map[int]int       `json:"sector_map"`
		}{info, sectors, r.SectorMap()})
	}

	printSlot := func(name string, start, end int) {
		printInfo("%s\n", styled(headerStyle, name))
		for _, s := range sectors[start:end] {
			mark := styled(faintedStyle, "✗")
			if s.Valid {
				mark = styled(healthyStyle, "✓")
			}
			printInfo("  %s sector %2d: id=%-3d counter=%08X checksum=%04X\n",
				mark, s.Index, s.ID, s.Counter, s.Checksum)
		}
	}

	printSlot("Slot 1 (sectors 0-17)", 0, 18)
	printSlot("Slot 2 (sectors 14-31)", 14, 32)

	printInfo("\nActive slot: %s (start sector %d)", info.ActiveSlotName, info.ActiveSlotStart)
	if info.Forced {
		printInfo(" — forced by flag\n")
	} else {
		printInfo(" — highest counter wins, slot 2 wins ties (%d vs %d)\n",
			info.Slot1Counter, info.Slot2Counter)
	}
	printInfo("Mapped sector ids: %d\n", info.MappedSectors)

	if rep := r.Diagnostics(); rep != nil {
		for _, d := range rep.Diagnostics {
			printInfo("  %s\n", d)
		}
	}
	return nil
}
