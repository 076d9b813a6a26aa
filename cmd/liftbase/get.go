package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"liftbase"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Look up an exercise by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		ex, err := repo.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printExercise(ex)
		return nil
	},
}

func printExercise(ex liftbase.Exercise) {
	fmt.Printf("%s\n", ex.Name)
	fmt.Printf("  id:            %s\n", ex.ID)
	if ex.Description != "" {
		fmt.Printf("  description:   %s\n", ex.Description)
	}
	fmt.Printf("  muscle groups: %s\n", strings.Join(ex.MuscleGroups, ", "))
	if ex.RequiresEquipment() {
		fmt.Printf("  equipment:     %s\n", ex.EquipmentNeeded)
	} else {
		fmt.Printf("  equipment:     none (bodyweight)\n")
	}
	fmt.Printf("  difficulty:    %d (%s)\n", ex.DifficultyLevel, ex.DifficultyDescription())
}

func init() {
	rootCmd.AddCommand(getCmd)
}
