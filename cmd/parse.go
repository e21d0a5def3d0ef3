package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Print the parsed document tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		sections, err := a.source.Sections()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch parseFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(sections)
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(sections); err != nil {
				return err
			}
			return enc.Close()
		default:
			return fmt.Errorf("unknown format %q (json, yaml)", parseFormat)
		}
	},
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "Output format (json, yaml)")
	rootCmd.AddCommand(parseCmd)
}
