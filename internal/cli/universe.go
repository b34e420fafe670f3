package cli

import (
	"fmt"
	"io"
	"strconv"

	"startrek/internal/planet"
	"startrek/internal/ship"
	"startrek/internal/spatial"
	"startrek/internal/universe"
	"startrek/internal/voyage"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func runVoyage(registry *universe.Registry) error {
	if _, err := voyage.Run(registry); err != nil {
		return fmt.Errorf("voyage failed: %w", err)
	}
	return nil
}

func newUniverseCommand(registry *universe.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "universe",
		Short: "Run the voyage, then list every registered space object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runVoyage(registry); err != nil {
				return err
			}
			renderUniverse(cmd.OutOrStdout(), registry)
			return nil
		},
	}
}

func newSnapshotCommand(registry *universe.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Run the voyage, then print the universe as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runVoyage(registry); err != nil {
				return err
			}
			raw, err := registry.Snapshot()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return err
		},
	}
}

func renderUniverse(w io.Writer, registry *universe.Registry) {
	objects := registry.Objects()
	planets, ships := registry.Planets(), registry.Ships()
	totalCrew := lo.SumBy(ships, func(s *ship.Ship) int64 {
		return s.Crew
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Kind", "Name", "Crew", "Position"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	table.AppendBulk(lo.Map(objects, func(obj spatial.SpaceObject, i int) []string {
		return objectRow(i, obj)
	}))
	table.SetFooter([]string{
		"",
		"",
		fmt.Sprintf("%d planets, %d ships", len(planets), len(ships)),
		strconv.FormatInt(totalCrew, 10),
		"",
	})
	table.Render()
}

func objectRow(i int, obj spatial.SpaceObject) []string {
	name, crew := "", "-"
	switch o := obj.(type) {
	case *planet.Planet:
		name = o.Name
	case *ship.Ship:
		name = o.Name
		crew = strconv.FormatInt(o.Crew, 10)
	}
	return []string{
		strconv.Itoa(i),
		string(obj.Kind()),
		name,
		crew,
		fmt.Sprintf("%v", obj.CurrentPosition()),
	}
}
