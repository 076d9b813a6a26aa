package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := openRepo()
		if err != nil {
			return err
		}
		defer repo.Close()

		deleted, err := repo.Delete(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		// Absent targets are a normal outcome for delete, not an error.
		if deleted {
			fmt.Printf("deleted %s\n", args[0])
		} else {
			fmt.Printf("no exercise with id %s\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
