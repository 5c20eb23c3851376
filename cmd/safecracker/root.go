package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DmarshalTU/safecracker/internal/version"
	"github.com/DmarshalTU/safecracker/pkg/config"
	"github.com/DmarshalTU/safecracker/pkg/inputfile"
	"github.com/DmarshalTU/safecracker/pkg/logging"
	"github.com/DmarshalTU/safecracker/pkg/topics"
)

//go:embed docs
var docsFS embed.FS

// NewRootCmd creates and returns the root command. Running the root with
// no subcommand solves the configured input, matching the single-purpose
// binary this tool started as.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		inputPath string
		noColor   bool
	)

	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:     "safecracker [file]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}

			// Flags win over the config file.
			if verbosity > 0 {
				cfg.Verbosity = verbosity
			}
			if cmd.Flags().Changed("input") {
				cfg.Input = inputPath
			}
			if noColor {
				cfg.NoColor = true
			}

			logging.Setup(cfg.Verbosity, cfg.NoColor)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, cfg, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", inputfile.DefaultName,
		"Path to the rotation log")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")

	rootCmd.AddCommand(newSolveCmd(&cfg))
	rootCmd.AddCommand(newVersionCmd())

	docs, err := fs.Sub(docsFS, "docs")
	if err == nil {
		err = topics.Initialize(rootCmd, docs, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		// Help topics are a convenience; the solver works without them.
		log.Warn().Err(err).Msg("Failed to initialize help topics")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "safecracker version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
