package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mzums/keysnap/internal/models"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func NewAddCommand(service ShortcutSI) *cobra.Command {
	return &cobra.Command{
		Use:   "add <shortcut> <description> <category>",
		Short: "Add a shortcut to the catalog",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := service.AddShortcut(args[0], args[1], args[2])
			if err != nil {
				if errors.Is(err, models.ErrIO) {
					fmt.Fprintf(cmd.ErrOrStderr(), "⚠️ Added as #%d but the catalog could not be saved.\n", pos+1)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Added %s (#%d)\n", args[0], pos+1)
			return nil
		},
	}
}

func NewListCommand(service ShortcutSI) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shortcuts in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shortcuts := service.Shortcuts(category)
			if len(shortcuts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No shortcuts found.")
				return nil
			}
			renderShortcuts(cmd.OutOrStdout(), shortcuts)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only show this category")

	return cmd
}

func NewCategoriesCommand(service ShortcutSI) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories in the order they were first used",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := service.Categories()
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories yet.")
				return nil
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func NewDeleteCommand(service ShortcutSI) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <shortcut> <description> <category>",
		Short: "Delete the first shortcut matching all three fields",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := service.DeleteShortcut(args[0], args[1], args[2])
			if err != nil {
				if removed {
					fmt.Fprintln(cmd.ErrOrStderr(), "⚠️ Deleted but the catalog could not be saved.")
				}
				return err
			}
			if !removed {
				return fmt.Errorf("no shortcut %q / %q in category %q", args[0], args[1], args[2])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Deleted %s\n", args[0])
			return nil
		},
	}
}

func renderShortcuts(w io.Writer, shortcuts []models.Shortcut) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Shortcut", "Description", "Category"})
	table.SetAutoWrapText(false)
	for _, s := range shortcuts {
		table.Append([]string{s.Shortcut, s.Description, s.Category})
	}
	table.Render()
}
