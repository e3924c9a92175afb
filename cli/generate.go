package cli

import (
	"fmt"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/generator"
	"github.com/corsika-radio/corsikasub/sweep"
	"github.com/spf13/cobra"
)

var sweepFlags = []string{
	"primary", "startNumber", "endNumber", "energyStart", "energyEnd",
	"energyStep", "zenithStart", "zenithEnd", "obslev",
}

func newGenerateCmd(conf *config.Config) *cobra.Command {
	var s sweep.Sweep
	var runNumber int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate and submit runs",
		Long: "writes card, antenna files and job script of every run of a sweep, or of the run given by --run, " +
			"and submits the job scripts. Without sweep flags the sweep is read from the parameter file",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Check(conf); err != nil {
				return err
			}
			if !anyChanged(cmd, sweepFlags) {
				fromFile, err := sweep.ReadParameterFile(conf.InputParameterFile)
				if err != nil {
					return err
				}
				s = fromFile
			}
			g, err := newGenerator(conf)
			if err != nil {
				return err
			}
			if err := generator.PrepareOutputLayout(conf.DirSimulations); err != nil {
				return err
			}

			results := []generator.RunResult{}
			if cmd.Flags().Changed("run") {
				run, err := s.Select(runNumber)
				if err != nil {
					return err
				}
				result, err := g.GenerateRun(cmd.Context(), run)
				if err != nil {
					return err
				}
				results = append(results, result)
			} else {
				results, err = g.GenerateSweep(cmd.Context(), s)
				if err != nil {
					return err
				}
			}

			for _, result := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", result.Layout.Run().Name(), result.Layout.Folder(), jobLabel(result.JobID))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&s.Primary, "primary", 0, "CORSIKA particle code of the primary")
	flags.IntVar(&s.StartRun, "startNumber", 0, "first run number")
	flags.IntVar(&s.EndRun, "endNumber", 0, "last run number of the first energy bin")
	flags.Float64Var(&s.EnergyStart, "energyStart", 0, "lowest log10(E/GeV)")
	flags.Float64Var(&s.EnergyEnd, "energyEnd", 0, "highest log10(E/GeV)")
	flags.Float64Var(&s.EnergyStep, "energyStep", 0, "log10(E/GeV) step between energy bins")
	flags.Float64Var(&s.ZenithStart, "zenithStart", 0, "lowest zenith angle in degrees")
	flags.Float64Var(&s.ZenithEnd, "zenithEnd", 0, "highest zenith angle in degrees")
	flags.Float64Var(&s.ObsLevel, "obslev", 0, "observation level in cm")
	flags.IntVar(&runNumber, "run", 0, "generate only this run of the sweep")
	return cmd
}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func jobLabel(jobID string) string {
	if jobID == "" {
		return "not submitted"
	}
	return "job " + jobID
}
