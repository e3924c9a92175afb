package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/corsika-radio/corsikasub/card"
	"github.com/corsika-radio/corsikasub/registry"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <card>",
		Short: "summarize a steering card",
		Long:  "parses a generated steering card and prints run number, primary, energy, angles and seeds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := card.ReadFile(args[0])
			if err != nil {
				return err
			}
			return showCard(cmd.OutOrStdout(), parsed, registry.Default())
		},
	}
}

func showCard(w io.Writer, parsed card.Card, tables registry.Tables) error {
	runNumber, err := parsed.Int("RUNNR", 0)
	if err != nil {
		return err
	}
	primary, err := parsed.Int("PRMPAR", 0)
	if err != nil {
		return err
	}
	energy, err := parsed.Float("ERANGE", 0)
	if err != nil {
		return err
	}
	zenith, err := parsed.Fields("THETAP")
	if err != nil {
		return err
	}
	azimuth, err := parsed.Fields("PHIP")
	if err != nil {
		return err
	}
	obsLevel, err := parsed.Fields("OBSLEV")
	if err != nil {
		return err
	}

	seeds := []string{}
	for _, fields := range parsed.All("SEED") {
		if len(fields) > 0 {
			seeds = append(seeds, fields[0])
		}
	}

	fmt.Fprintf(w, "run:      %d\n", runNumber)
	fmt.Fprintf(w, "primary:  %d (%s)\n", primary, tables.Particles.Name(primary))
	fmt.Fprintf(w, "energy:   %.6E GeV\n", energy)
	fmt.Fprintf(w, "zenith:   %s deg\n", strings.Join(zenith, " "))
	fmt.Fprintf(w, "azimuth:  %s deg\n", strings.Join(azimuth, " "))
	fmt.Fprintf(w, "obslev:   %s cm\n", strings.Join(obsLevel, " "))
	fmt.Fprintf(w, "seeds:    %s\n", strings.Join(seeds, " "))
	return nil
}
