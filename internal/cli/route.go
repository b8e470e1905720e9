package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/pkg/geometry"
)

// routeCommand creates the route command, a debug tool that prints the
// connector path between two points.
func (c *CLI) routeCommand() *cobra.Command {
	var (
		dashed   bool
		straight bool
		radius   float64
		offsetX  float64
		offsetY  float64
	)

	cmd := &cobra.Command{
		Use:   "route x1 y1 x2 y2",
		Short: "Print the connector path between two points (debug tool)",
		Long: `Print the SVG path data of the connector between two points.

Points are in roadmap coordinates; the offset is added before routing, as
it is for every connector in a rendered roadmap. Without --straight the
connector is a rounded elbow that bends at the vertical midpoint.`,
		Example: `  # Elbow from (0,0) down and right to (100,120)
  roadmap route 0 0 100 120

  # Same route, tighter corners, shifted into the frame
  roadmap route 0 0 100 120 --radius 8 --offset-x 40 --offset-y 40`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkRadius(cmd); err != nil {
				return err
			}
			var coords [4]float64
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", arg, err)
				}
				coords[i] = v
			}
			start := geometry.Pt(coords[0], coords[1])
			end := geometry.Pt(coords[2], coords[3])

			r := geometry.Router{Radius: radius, Offset: geometry.Pt(offsetX, offsetY)}
			var conn geometry.Connector
			if straight {
				conn = r.Straight(start, end, dashed)
			} else {
				conn = r.Route(start, end, dashed)
			}

			c.Logger.Debug("routed connector", "start", start, "end", end, "radius", radius, "dashed", conn.Dashed)
			fmt.Fprintln(cmd.OutOrStdout(), conn.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dashed, "dashed", false, "mark the connector dashed")
	cmd.Flags().BoolVar(&straight, "straight", false, "draw a straight segment instead of an elbow")
	cmd.Flags().Float64Var(&radius, "radius", geometry.DefaultRadius, "elbow corner radius, must be positive")
	cmd.Flags().Float64Var(&offsetX, "offset-x", 0, "horizontal offset")
	cmd.Flags().Float64Var(&offsetY, "offset-y", 0, "vertical offset")

	return cmd
}
