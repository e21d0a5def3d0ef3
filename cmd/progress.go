package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/itsmostafa/cornerstones/internal/progress"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Inspect or change checklist progress",
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List checklist items and whether they are done",
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

		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		done, err := store.All(localVisitor)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i := range sections {
			for _, it := range progress.SectionItems(&sections[i]) {
				mark := " "
				if done[it.Key] {
					mark = "x"
				}
				fmt.Fprintf(out, "[%s] %s  %s\n", mark, it.Key, it.Item.Text)
			}
		}

		// keys left over from earlier versions of the document
		known := progress.KnownKeys(sections)
		var stale []string
		for key := range done {
			if !known[key] {
				stale = append(stale, key)
			}
		}
		sort.Strings(stale)
		for _, key := range stale {
			fmt.Fprintf(out, "[?] %s  (no longer in document)\n", key)
		}
		return nil
	},
}

var progressToggleCmd = &cobra.Command{
	Use:   "toggle KEY",
	Short: "Toggle a checklist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		sections, err := a.source.Sections()
		if err != nil {
			return err
		}

		key := args[0]
		if !progress.KnownKeys(sections)[key] {
			return fmt.Errorf("unknown checklist item %q (see 'cornerstones progress list')", key)
		}

		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		done, err := store.Toggle(localVisitor, key)
		if err != nil {
			return err
		}

		state := "not done"
		if done {
			state = "done"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, state)
		return nil
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget all local progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}

		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Reset(localVisitor); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Progress reset")
		return nil
	},
}

func init() {
	progressCmd.AddCommand(progressListCmd, progressToggleCmd, progressResetCmd)
	rootCmd.AddCommand(progressCmd)
}
