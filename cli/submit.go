package cli

import (
	"fmt"
	"os"

	"github.com/corsika-radio/corsikasub/config"
	"github.com/corsika-radio/corsikasub/generator"
	"github.com/corsika-radio/corsikasub/registry"
	"github.com/corsika-radio/corsikasub/sweep"
	"github.com/spf13/cobra"
)

func newSubmitCmd(conf *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "submit",
		Short: "submit a sweep",
		Long:  "reads the parameter file and submits a sweep job which generates and submits every run",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Check(conf); err != nil {
				return err
			}
			s, err := sweep.ReadParameterFile(conf.InputParameterFile)
			if err != nil {
				return err
			}
			g, err := newGenerator(conf)
			if err != nil {
				return err
			}
			if err := generator.PrepareOutputLayout(conf.DirSimulations); err != nil {
				return err
			}

			result, err := g.SubmitSweep(cmd.Context(), s)
			if err != nil {
				return err
			}
			if conf.DryRun {
				content, err := os.ReadFile(result.Script)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(content))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Submitted sweep %s as job %s\n", result.Script, result.JobID)
			return nil
		},
	}
}

func newGenerator(conf *config.Config) (*generator.Generator, error) {
	submitter, err := generator.NewSubmitter(conf)
	if err != nil {
		return nil, err
	}
	return generator.New(conf, registry.Default(), submitter)
}
