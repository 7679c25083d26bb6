package filewise

import (
	"fmt"

	"github.com/arthur-debert/filewise/internal/version"
	"github.com/arthur-debert/filewise/pkg/config"
	"github.com/arthur-debert/filewise/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	var verbosity int
	var output string

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Default()
	}

	rootCmd := &cobra.Command{
		Use:   "filewise",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if cfgErr != nil {
				log.Warn().Err(cfgErr).Msg("Failed to load config, using defaults")
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", cfg.Output,
		"Output format: text, json, yaml or xml")

	app := &appContext{cfg: cfg, output: &output}

	rootCmd.AddCommand(
		newFilesCmd(app),
		newDirsCmd(app),
		newItemsCmd(app),
		newMoveCmd(app),
		newCopyCmd(app),
		newRemoveCmd(app),
		newMkdirCmd(app),
		newRmdirCmd(app),
		newMoveDirCmd(app),
		newCopyDirCmd(app),
		newRenameCmd(app),
		newCatCmd(app),
		newGenConfigCmd(),
		newDocsCmd(),
		newVersionCmd(),
		newManCmd(rootCmd),
	)

	return rootCmd
}

// appContext carries config-derived defaults into the subcommands
type appContext struct {
	cfg    config.Config
	output *string
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("filewise version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "FILEWISE",
				Section: "1",
			}
			return doc.GenManTree(rootCmd, header, "/tmp")
		},
	}
}
