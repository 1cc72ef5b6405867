package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drill/internal/exercise"
	"drill/pkg/logger"
)

// listCommand constructs the 'list' subcommand that prints every registered
// drill name with its description.
func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the available drills",
		Run: func(cmd *cobra.Command, args []string) {
			registry, err := exercise.BuiltIn()
			if err != nil {
				logger.Fatal(context.Background(), "could not build drill registry", zap.Error(err))
			}

			for _, spec := range registry.All() {
				fmt.Printf("%-15s %s\n", spec.Name, spec.Description) //nolint: forbidigo
			}
		},
	}
}
