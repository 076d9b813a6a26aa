package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listVerbose bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all exercises, ordered by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		exercises, err := repo.ListAll(cmd.Context())
		if err != nil {
			return err
		}

		if len(exercises) == 0 {
			fmt.Println("catalog is empty")
			return nil
		}

		for _, ex := range exercises {
			if listVerbose {
				printExercise(ex)
				continue
			}
			fmt.Printf("%-36s  %-30s  %-9s  %s\n",
				ex.ID, ex.Name, ex.DifficultyDescription(), strings.Join(ex.MuscleGroups, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "print full records")
}
