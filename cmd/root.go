package cmd

import (
	"github.com/jsphweid/chordtone/chord"
	"github.com/jsphweid/chordtone/config"
	"github.com/jsphweid/chordtone/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	formulasPath string
	logLevel     string

	cfg    config.Config
	log    *zap.SugaredLogger
	engine *chord.Engine
)

var rootCmd = &cobra.Command{
	Use:          "chordtone",
	Short:        "Spells chords and lays them out on a staff",
	Long:         `Spells the notes of a chord from a root and a chord type, and places them on a treble staff.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formulasPath, "formulas", "", "YAML file with extra chord formulas")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// setup builds config, logger and engine. Flags win over the environment.
func setup() error {
	var err error
	cfg, err = config.ProvideConfig()
	if err != nil {
		return err
	}
	if formulasPath != "" {
		cfg.FormulasPath = formulasPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log, err = logger.ProvideLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	tables, err := chord.TablesWithFormulas(cfg.FormulasPath)
	if err != nil {
		return err
	}
	engine = chord.New(log, tables)
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
