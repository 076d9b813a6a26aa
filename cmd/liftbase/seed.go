package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"liftbase"
	"liftbase/internal/logging"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a starter catalog of common exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		log := logging.Component("seed")

		added := 0
		for _, ex := range starterCatalog() {
			if err := repo.Add(cmd.Context(), ex); err != nil {
				// Re-seeding an existing catalog hits primary-key
				// conflicts; skip those rows and keep going.
				log.Warn().Str("name", ex.Name).Err(err).Msg("skipping exercise")
				continue
			}
			added++
		}

		fmt.Printf("seeded %d exercises\n", added)
		return nil
	},
}

// starterCatalog returns a small set of common movements across the major
// muscle groups.
func starterCatalog() []liftbase.Exercise {
	return []liftbase.Exercise{
		liftbase.NewExerciseWithID("seed-squat", "Barbell Squat",
			"Compound lower-body lift", []string{"Quadriceps", "Glutes", "Core"}, "Barbell", 7),
		liftbase.NewExerciseWithID("seed-deadlift", "Deadlift",
			"Full body compound movement", []string{"Hamstrings", "Glutes", "Back"}, "Barbell", 9),
		liftbase.NewExerciseWithID("seed-bench", "Barbell Bench Press",
			"Upper body strength exercise", []string{"Chest", "Triceps", "Shoulders"}, "Barbell", 6),
		liftbase.NewExerciseWithID("seed-ohp", "Overhead Press",
			"Standing barbell press", []string{"Shoulders", "Triceps"}, "Barbell", 6),
		liftbase.NewExerciseWithID("seed-row", "Barbell Row",
			"Horizontal pull", []string{"Back", "Biceps"}, "Barbell", 6),
		liftbase.NewExerciseWithID("seed-pullup", "Pull Up",
			"Vertical bodyweight pull", []string{"Back", "Biceps"}, "", 7),
		liftbase.NewExerciseWithID("seed-pushup", "Push Up",
			"Basic bodyweight exercise", []string{"Chest", "Triceps"}, "", 3),
		liftbase.NewExerciseWithID("seed-lunge", "Walking Lunge",
			"Unilateral leg exercise", []string{"Quadriceps", "Glutes"}, "", 4),
		liftbase.NewExerciseWithID("seed-plank", "Plank",
			"Isometric core hold", []string{"Core"}, "", 2),
		liftbase.NewExerciseWithID("seed-curl", "Dumbbell Curl",
			"Isolation arm exercise", []string{"Biceps"}, "Dumbbell", 2),
	}
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
