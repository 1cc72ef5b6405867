package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drill/internal/config"
	"drill/internal/exercise"
	"drill/internal/runner"
	"drill/pkg/domain"
	"drill/pkg/logger"
)

// formatResult renders one case result as a single output line, e.g.
//
//	tableRow(5, 4) = 5 10 15 20 [PASS]
//	tableRow(5, 4) = 5 10 15 [FAIL] want "5 10 15 20"
func formatResult(result domain.CaseResult) string {
	if result.Err != "" {
		return fmt.Sprintf("%s [FAIL] %s", result.Case, result.Err)
	}
	if result.Status == domain.CaseStatusPassed {
		return fmt.Sprintf("%s = %s [PASS]", result.Case, result.Got)
	}

	return fmt.Sprintf("%s = %s [FAIL] want %q", result.Case, result.Got, result.Want)
}

// runCommand constructs the 'run' subcommand that executes drill sample cases
// and prints one result per line. The command exits zero once all lines are
// printed; case failures are visible per line, not via the exit code.
func runCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Runs drill sample cases and prints one result per line",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			registry, err := exercise.BuiltIn()
			if err != nil {
				logger.Fatal(ctx, "could not build drill registry", zap.Error(err))
			}

			options := runner.NewOptions(cfg)
			options.Only, _ = cmd.Flags().GetStringSlice("only")
			if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
				options.Seed = seed
			}

			report, err := runner.New(registry, options).Run(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not run drills", zap.Error(err))
			}

			for _, result := range report.Results {
				fmt.Println(formatResult(result)) //nolint: forbidigo
			}
		},
	}

	cmd.Flags().StringSlice("only", nil, "Run only the named drills")
	cmd.Flags().Uint64("seed", 0, "Seed for the random drill (0 keeps a random seed)")

	return cmd
}
