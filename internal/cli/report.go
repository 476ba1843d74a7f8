// report.go implements the "zoopage report" command.
//
// The report command prints a plain-text summary of each record to
// stdout instead of writing a page. It accepts only the global flags.
package cli

import (
	"github.com/spf13/cobra"
)

// NewReportCommand creates the "report" cobra command.
func NewReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the animal records as text",
		Long: `Print each animal record as "Label: value" lines, Name first,
with a blank line between records.

Examples:
  zoopage report
  zoopage report --data zoo.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd)
		},
	}
}

func runReport(cmd *cobra.Command) error {
	paths, err := resolvePaths()
	if err != nil {
		return err
	}

	newPipeline(cmd).Report(paths)
	return nil
}
