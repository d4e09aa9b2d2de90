package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-osmo/plot"
	"github.com/cwbudde/algo-osmo/report"
	"github.com/cwbudde/algo-osmo/scan"
)

func analyzeCmd(ctx context.Context, a *app) *cobra.Command {
	var (
		kind      string
		format    string
		out       string
		plotDir   string
		tieWindow int
	)

	cmd := &cobra.Command{
		Use:   "analyze file ...",
		Short: "Extract the feature set of each export",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("kind") {
				a.cfg.Analysis.Kind = kind
			}
			if flags.Changed("format") {
				a.cfg.Output.Format = format
			}
			if flags.Changed("plot-dir") {
				a.cfg.Output.PlotDir = plotDir
			}
			if flags.Changed("tie-window") {
				a.cfg.Analysis.TieWindow = tieWindow
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			k, _ := scan.ParseKind(a.cfg.Analysis.Kind)
			f, _ := report.ParseFormat(a.cfg.Output.Format)
			if f == report.FormatParquet && out == "" {
				return fmt.Errorf("parquet output needs --out")
			}

			results, failed := a.analyzeFiles(ctx, k, args)
			rows := report.Rows(results)

			if out == "" {
				if err := writeReport(cmd.OutOrStdout(), f, rows); err != nil {
					return err
				}
			} else {
				if err := report.WriteFile(out, f, rows); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
				log.Info().Str("path", out).Int("rows", len(rows)).Msg("report written")
				if err := printSummary(cmd.OutOrStdout(), rows); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "analysis kind (osmo, oxy)")
	cmd.Flags().StringVar(&format, "format", "", "report format (json, csv, parquet)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "report file (default stdout)")
	cmd.Flags().StringVar(&plotDir, "plot-dir", "", "directory for HTML charts")
	cmd.Flags().IntVar(&tieWindow, "tie-window", 0, "tie-break half-width in samples")
	return cmd
}

// analyzeFiles processes paths in order. Failing files are logged and
// counted; the rest are still analysed.
func (a *app) analyzeFiles(ctx context.Context, k scan.Kind, paths []string) ([]*scan.Result, int) {
	reg := scan.DefaultRegistry(a.cfg.FeatureOptions()...)
	loaderOpts := a.cfg.LoaderOptions(log.Logger)

	var (
		results []*scan.Result
		failed  int
	)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Str("file", path).Msg("analysis cancelled")
			failed++
			continue
		}

		log.Debug().Str("file", path).Str("kind", k.String()).Msg("analysing")
		res, err := reg.AnalyzeFile(path, k, loaderOpts...)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("analysis failed")
			failed++
			continue
		}

		if dir := a.cfg.Output.PlotDir; dir != "" {
			if err := renderPlot(dir, res); err != nil {
				log.Error().Err(err).Str("file", path).Msg("plot failed")
				failed++
				continue
			}
		}

		log.Info().Str("file", path).Float64("ei_max", res.Max.Response).Msg("analysed")
		results = append(results, res)
	}
	return results, failed
}

func renderPlot(dir string, res *scan.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	base := strings.TrimSuffix(filepath.Base(res.Source), filepath.Ext(res.Source))
	return plot.RenderFile(filepath.Join(dir, base+".html"), res)
}

func writeReport(w io.Writer, f report.Format, rows []report.Row) error {
	if f == report.FormatCSV {
		return report.WriteCSV(w, rows)
	}
	return report.WriteJSON(w, rows)
}

func printSummary(w io.Writer, rows []report.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Source\tKind\tEI max\tStress at max\tHyper\tArea\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t------\t-------------\t-----\t----\n"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.2f\t%s\t%s\n",
			r.Source,
			r.Kind,
			r.ResponseMax,
			r.StressAtMax,
			optional(r.StressAtHalfMax, "%.2f"),
			optional(r.Area, "%.2f"),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func optional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
