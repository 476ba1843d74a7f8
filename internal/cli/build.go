// build.go implements the "zoopage build" command.
//
// The build command loads the data file, renders one HTML card per
// record and writes the template with the cards substituted for the
// placeholder.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/zoopage/internal/compose"
)

// NewBuildCommand creates the "build" cobra command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the animal cards into the page template",
		Long: `Render every animal record as an HTML card and write the page.

The template must contain the literal token ` + compose.Placeholder + `.
Every occurrence is replaced with the cards. The output file is
overwritten atomically.

Examples:
  zoopage build
  zoopage build --data zoo.yaml --output public/index.html`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
	}

	addPageFlags(cmd)

	return cmd
}

// addPageFlags registers the flags that only matter when a page is
// written.
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pathFlags.Template, "template", "", "Page template containing "+compose.Placeholder)
	cmd.Flags().StringVar(&pathFlags.Output, "output", "", "Where to write the finished page")
}

// runBuild resolves the paths and runs the HTML pipeline. Pipeline errors
// are already logged, so they do not become a command error.
func runBuild(cmd *cobra.Command) error {
	paths, err := resolvePaths()
	if err != nil {
		return err
	}

	newPipeline(cmd).Build(paths)
	return nil
}
