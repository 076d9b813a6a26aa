package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"liftbase"
)

var (
	addID         string
	addName       string
	addDesc       string
	addMuscles    []string
	addEquipment  string
	addDifficulty int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		var ex liftbase.Exercise
		if addID != "" {
			ex = liftbase.NewExerciseWithID(addID, addName, addDesc, addMuscles, addEquipment, addDifficulty)
		} else {
			ex = liftbase.NewExercise(addName, addDesc, addMuscles, addEquipment, addDifficulty)
		}

		// Policy: the CLI enforces validation before storage.
		if err := ex.Validate(); err != nil {
			return &liftbase.InvalidInputError{Message: err.Error()}
		}

		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := repo.Add(cmd.Context(), ex); err != nil {
			return err
		}

		fmt.Println(ex.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addID, "id", "", "record id (generated when omitted)")
	addCmd.Flags().StringVar(&addName, "name", "", "exercise name")
	addCmd.Flags().StringVar(&addDesc, "description", "", "optional description")
	addCmd.Flags().StringSliceVar(&addMuscles, "muscle", nil, "targeted muscle group (repeatable)")
	addCmd.Flags().StringVar(&addEquipment, "equipment", "", "required equipment (empty for bodyweight)")
	addCmd.Flags().IntVar(&addDifficulty, "difficulty", 5, "difficulty level 1-10 (clamped)")
	_ = addCmd.MarkFlagRequired("name")
}
