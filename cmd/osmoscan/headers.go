package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-osmo/loader"
	"github.com/cwbudde/algo-osmo/scan"
)

func headersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "headers file",
		Short: "Print the column headers of an export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := loader.PeekHeaders(args[0], a.cfg.LoaderOptions(log.Logger)...)
			if err != nil {
				return err
			}
			if headers == nil {
				return fmt.Errorf("%s: %w", args[0], loader.ErrNoHeader)
			}
			for _, h := range headers {
				fmt.Fprintln(cmd.OutOrStdout(), h)
			}
			return nil
		},
	}
}

func kindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the analysis kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := scan.DefaultRegistry(a.cfg.FeatureOptions()...)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Kind\tSchema\tStress\tResponse\n")
			for _, k := range reg.Kinds() {
				an, err := reg.Lookup(k)
				if err != nil {
					return err
				}
				s := an.Schema()
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", k, s.Name, s.Stress, s.Response)
			}
			return tw.Flush()
		},
	}
}
