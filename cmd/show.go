package cmd

import (
	"github.com/spf13/cobra"

	"github.com/itsmostafa/cornerstones/internal/render"
)

var showWidth int

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the document's sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		sections, err := a.source.Sections()
		if err != nil {
			return err
		}
		if len(sections) == 0 {
			render.NoContent(cmd.OutOrStdout())
			return nil
		}

		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		done, err := store.All(localVisitor)
		if err != nil {
			return err
		}

		render.SectionTable(cmd.OutOrStdout(), sections, done)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Render one section in the terminal",
	Long:  `Render a section in the terminal. Without a slug the first section is shown.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		sections, err := a.source.Sections()
		if err != nil {
			return err
		}
		if len(sections) == 0 {
			render.NoContent(cmd.OutOrStdout())
			return nil
		}

		section := &sections[0]
		if len(args) == 1 {
			if section, err = a.source.Section(args[0]); err != nil {
				return err
			}
		}

		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		done, err := store.All(localVisitor)
		if err != nil {
			return err
		}

		render.NewTerminal(cmd.OutOrStdout(), showWidth).Section(section, done)
		return nil
	},
}

func init() {
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 80, "Wrap width")
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(showCmd)
}
