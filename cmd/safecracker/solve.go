package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DmarshalTU/safecracker/pkg/config"
	"github.com/DmarshalTU/safecracker/pkg/inputfile"
	"github.com/DmarshalTU/safecracker/pkg/logging"
	"github.com/DmarshalTU/safecracker/pkg/solve"
)

func newSolveCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:     "solve [file]",
		Short:   MsgSolveShort,
		Long:    MsgSolveLong,
		Example: MsgSolveExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, *cfg, args)
		},
	}
}

// runSolve is shared by the root command and the solve subcommand.
func runSolve(cmd *cobra.Command, cfg config.Config, args []string) error {
	logger := logging.GetLogger("cmd.solve")

	path := cfg.Input
	if len(args) > 0 {
		path = args[0]
	}

	input, err := inputfile.Read(path)
	if err != nil {
		return err
	}

	res := solve.Run(input)

	logger.Info().
		Str("path", path).
		Int("rotations", res.Rotations).
		Int("skipped", res.Skipped).
		Int("finalPosition", res.FinalPosition).
		Msg("Solve finished")

	fmt.Fprintln(cmd.OutOrStdout(), formatPassword(res.Password, cfg.NoColor))
	return nil
}
