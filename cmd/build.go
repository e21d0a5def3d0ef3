package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/cornerstones/internal/render"
)

var buildOut string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the document as a static site",
	Long:  `Write one HTML page per section into the output directory. Progress is kept in the browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		sections, err := a.source.Sections()
		if err != nil {
			return err
		}

		written, err := render.Export(buildOut, sections)
		if err != nil {
			return err
		}

		a.logger.Info().Str("out", buildOut).Int("pages", len(written)).Msg("site exported")
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(written), buildOut)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOut, "out", "o", "dist", "Output directory")
	rootCmd.AddCommand(buildCmd)
}
