package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTrainerCmd())
}

func newTrainerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trainer <save>",
		Short: "Decode the player name and play time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrainer(args)
		},
	}
	return cmd
}

func runTrainer(args []string) error {
	r, err := openSave(args[0])
	if err != nil {
		return err
	}
	defer r.Close()
	db := openNames()

	trainer, err := r.Trainer()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(struct {
			PlayerName string `json:"player_name"`
			Hours      uint32 `json:"hours"`
			Minutes    uint8  `json:"minutes"`
			Seconds    uint8  `json:"seconds"`
		}{db.DecodeText(trainer.NameRaw), trainer.PlayTimeHours,
			trainer.PlayTimeMinutes, trainer.PlayTimeSeconds})
	}

	printInfo("Player Name: %s\n", db.DecodeText(trainer.NameRaw))
	printInfo("Play Time: %dh %dm %ds\n",
		trainer.PlayTimeHours, trainer.PlayTimeMinutes, trainer.PlayTimeSeconds)
	return nil
}
