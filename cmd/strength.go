package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"drill/internal/exercise"
)

// strengthCommand constructs the 'strength' subcommand that runs the password
// strength drill against a single password and prints true or false.
func strengthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strength",
		Short: "Checks whether a password passes the strength drill",
		Run: func(cmd *cobra.Command, args []string) {
			password, _ := cmd.Flags().GetString("password")

			fmt.Println(strconv.FormatBool(exercise.IsStrong(password))) //nolint: forbidigo
		},
	}

	cmd.Flags().String("password", "", "Password to check")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
