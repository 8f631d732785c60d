package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"recdict/internal/analyze"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <package>...",
		Short: "Report record schemas of Go packages",
		Long: `Statically load the given Go packages and list, for every exported struct,
its dict field names with the field kind they resolve to. Tag problems and
kinds that do not fit their Go type are reported as diagnostics.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := analyze.NewAnalyzer().LoadPackages(args...)
			if err != nil {
				return err
			}

			if err := printReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}

			return report.Diagnostics.Error()
		},
	}
}

func printReport(w io.Writer, report *analyze.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, m := range report.Models {
		fmt.Fprintf(tw, "%s\n", m.ID)

		for _, f := range m.Fields {
			mark := ""
			if f.Name == m.PK {
				mark = "*"
			}

			fmt.Fprintf(tw, "  %s%s\t%s\t%s\n", f.Name, mark, f.Kind, f.GoName)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	for _, d := range report.Diagnostics.All() {
		fmt.Fprintln(w, d.String())
	}

	return nil
}
