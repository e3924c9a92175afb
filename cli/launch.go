// Package cli implements the corsikasub command tree.
package cli

import (
	"os"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/spf13/cobra"
)

var log = config.NamedLogger("cli")

// Launch ...
func Launch() {
	conf, err := config.SetupConfig()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	if err := newRootCmd(conf).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(conf *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "corsikasub",
		Short:         "generate and submit CORSIKA/CoREAS simulation jobs",
		Long:          "generates steering cards, antenna files and SLURM job scripts of air shower simulation runs and submits them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ApplySite(conf)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&conf.Username, "username", conf.Username, "username written into the steering card")
	flags.StringVar(&conf.DirSimulations, "dirSimulations", conf.DirSimulations, "directory receiving data/ and logs/")
	flags.StringVar(&conf.PathCorsika, "pathCorsika", conf.PathCorsika, "corsika run directory")
	flags.StringVar(&conf.CorsikaExe, "corsikaExe", conf.CorsikaExe, "corsika executable inside pathCorsika")
	flags.StringVar(&conf.InputParameterFile, "inputParameterFile", conf.InputParameterFile, "sweep parameter file")
	flags.StringVar(&conf.AntennaType, "antenna_type", conf.AntennaType, "antenna layout, one of: random, starshape")
	flags.StringVar(&conf.SitePath, "site", conf.SitePath, "TOML file with cluster and physics constants")
	flags.StringVar(&conf.LoggingLevel, "logging-level", conf.LoggingLevel, "one of: "+config.AvailableLoggingLevelsString)
	flags.BoolVar(&conf.DryRun, "dryrun", conf.DryRun, "write files without submitting jobs")
	flags.BoolVar(&conf.Debug, "debug", conf.Debug, "submit to the debug partition")

	rootCmd.AddCommand(
		newSubmitCmd(conf),
		newGenerateCmd(conf),
		newShowCmd(),
	)
	return rootCmd
}
