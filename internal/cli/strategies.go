package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueforge/internal/palette"
)

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "strategies",
		Aliases: []string{"list"},
		Short:   "List palette strategies",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable([]string{"STRATEGY", "ACCENTS", "OFFSETS", "DESCRIPTION"})
			table.SetColumnMaxWidth(3, 48)

			for _, s := range palette.Strategies() {
				accents, offsets := "-", "-"
				if n := s.Accents(); n > 0 {
					accents = strconv.Itoa(n)
					offsets = fmt.Sprint(palette.AccentOffsets(s))
				}
				table.AddRow([]string{s.String(), accents, offsets, s.Description()})
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return err
		},
	}
}
