package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"noticeboard/internal/notices"
)

func newCategoriesCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List notice categories and how many notices each has",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := notices.Load(s.dataFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range src.Categories() {
				fmt.Fprintf(out, "%-16s %3d\n", c.Name, c.Count)
			}
			fmt.Fprintf(out, "%-16s %3d\n", "All", src.Len())
			return nil
		},
	}
}
