package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var partyDetailed bool

func init() {
	cmd := newPartyCmd()
	cmd.Flags().BoolVar(&partyDetailed, "detailed", false, "Show per-Pokémon panels with moves and training data")
	rootCmd.AddCommand(cmd)
}

func newPartyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party <save>",
		Short: "Decode and display the party Pokémon",
		Long: `The party command decodes the party records out of the save file.

Example:
  savectl party player1.sav
  savectl party player1.sav --detailed
  savectl party player1.sav --json --data ./data`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParty(args)
		},
	}
	return cmd
}

func runParty(args []string) error {
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

	if jsonOut {
		views := make([]monView, 0, len(party))
		for _, p := range party {
			views = append(views, makeMonView(db, p))
		}
		return printJSON(views)
	}

	if len(party) == 0 {
		printInfo("No Pokémon found in party.\n")
		return nil
	}

	if partyDetailed {
		for _, p := range party {
			printInfo("%s\n", renderMonPanel(makeMonView(db, p)))
		}
		return nil
	}

	header := fmt.Sprintf(
		"%-5s%-8s%-12s%-4s%-10s%-30s %-5s%-5s%-5s%-5s%-5s%-10s%-7s",
		"Slot", "Dex ID", "Nickname", "Lv", "Nature",
		"HP", "Atk", "Def", "Spe", "SpA", "SpD", "OT Name", "IDNo",
	)
	printInfo("%s\n%s\n", styled(headerStyle, header), strings.Repeat("-", len(header)))
	for _, p := range party {
		v := makeMonView(db, p)
		hp := fmt.Sprintf("[%s] %d/%d", hpBar(p.CurrentHP, p.MaxHP, 20), p.CurrentHP, p.MaxHP)
		printInfo("%-5d%-8d%-12s%-4d%-10s%-30s %-5d%-5d%-5d%-5d%-5d%-10s%-7s\n",
			p.Slot, p.SpeciesID, v.Nickname, p.Level, v.DisplayNature, hp,
			p.Attack, p.Defense, p.Speed, p.SpAttack, p.SpDefense,
			v.OTName, v.DisplayOTID)
	}
	return nil
}

// renderMonPanel builds the detailed bordered view of one record.
func renderMonPanel(v monView) string {
	var b strings.Builder

	status := styled(healthyStyle, "HEALTHY")
	if v.CurrentHP == 0 {
		status = styled(faintedStyle, "FAINTED")
	}

	fmt.Fprintf(&b, "%s\n", styled(boldStyle, fmt.Sprintf("Slot %d: %s", v.Slot, strings.ToUpper(v.Nickname))))
	fmt.Fprintf(&b, "Species: %s (#%d)   Level: %d   Nature: %s\n",
		v.SpeciesName, v.SpeciesID, v.Level, v.DisplayNature)
	fmt.Fprintf(&b, "Trainer: %s (ID: %s)\n", v.OTName, v.DisplayOTID)
	fmt.Fprintf(&b, "HP: [%s] %d/%d %s\n", hpBar(v.CurrentHP, v.MaxHP, 20), v.CurrentHP, v.MaxHP, status)
	fmt.Fprintf(&b, "Stats: Atk %d  Def %d  Spe %d  SpA %d  SpD %d\n",
		v.Attack, v.Defense, v.Speed, v.SpAttack, v.SpDefense)

	fmt.Fprintf(&b, "Moves:\n")
	for i, name := range v.MoveNames {
		if v.Moves[i] == 0 {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, styled(mutedStyle, "---"))
			continue
		}
		fmt.Fprintf(&b, "  %d. %-16s PP %-3d %s\n",
			i+1, name, v.PP[i], styled(mutedStyle, fmt.Sprintf("(#%d)", v.Moves[i])))
	}

	fmt.Fprintf(&b, "%-5s", "EVs:")
	for _, ev := range v.EVs {
		fmt.Fprintf(&b, " %4d", ev)
	}
	fmt.Fprintf(&b, "  total %s\n", styled(evStyle(v.TotalEVs), fmt.Sprintf("%d", v.TotalEVs)))

	fmt.Fprintf(&b, "%-5s", "IVs:")
	for _, iv := range v.IVs {
		fmt.Fprintf(&b, " %s", styled(ivStyle(iv), fmt.Sprintf("%4d", iv)))
	}
	fmt.Fprintf(&b, "  total %d\n", v.TotalIVs)

	if noColor {
		return b.String()
	}
	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}
