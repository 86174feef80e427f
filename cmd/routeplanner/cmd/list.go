package cmd

import (
	"fmt"
	"io"

	"github.com/lintang-b-s/modalroute/pkg/network"

	"github.com/spf13/cobra"
)

func newCitiesCmd(p *planner) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List the cities of the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printCities(cmd.OutOrStdout(), p.network)
			return nil
		},
	}
}

func newRoutesCmd(p *planner) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every route with its distance, mode and cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printRoutes(cmd.OutOrStdout(), p.network)
			return nil
		},
	}
}

func printCities(w io.Writer, n *network.Network) {
	for _, c := range n.Cities() {
		fmt.Fprintf(w, "%d: %s\n", c.ID, c.Name)
	}
}

func printRoutes(w io.Writer, n *network.Network) {
	for _, r := range n.Routes() {
		fmt.Fprintf(w, "%s to %s - Distance: %d km, %s - Cost: $%d\n",
			n.CityName(r.FromNodeID), n.CityName(r.ToNodeID), r.Distance, r.Mode.Title(), r.Cost)
	}
}
