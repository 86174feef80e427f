package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/lintang-b-s/modalroute/pkg/engine/routingalgorithm"
	"github.com/lintang-b-s/modalroute/pkg/network"
	"github.com/lintang-b-s/modalroute/pkg/server/rest/service"

	"github.com/spf13/cobra"
)

var errInvalidInput = errors.New("invalid input")

// planner holds what the subcommands share once the network is loaded.
type planner struct {
	networkPath string
	network     *network.Network
	svc         *service.NavigationService
}

func (p *planner) load() error {
	n, err := network.Load(p.networkPath)
	if err != nil {
		return err
	}
	p.network = n
	p.svc = service.NewNavigationService(n, routingalgorithm.NewRouteAlgorithm(n.Graph()), nil)
	return nil
}

// NewRootCmd builds the command tree. Running the root command without a subcommand
// lists the network and then asks for a query, like the path command with no flags.
func NewRootCmd() *cobra.Command {
	p := &planner{}

	rootCmd := &cobra.Command{
		Use:   "routeplanner",
		Short: "Cheapest route between two cities using one transportation mode",
		Long: `routeplanner finds the cheapest route between two cities of a transportation
network, travelling only on routes of one mode (train, car or airplane).

The network is read from --network or MODALROUTE_NETWORK (.json, .bin or .zst).
Without either, the built-in five city network is used.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return p.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Cities:")
			printCities(out, p.network)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Routes:")
			printRoutes(out, p.network)
			fmt.Fprintln(out)

			return p.runPath(cmd, bufio.NewScanner(cmd.InOrStdin()), pathQuery{})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&p.networkPath, "network", "n", NetworkPath(), "network definition file")

	rootCmd.AddCommand(newCitiesCmd(p))
	rootCmd.AddCommand(newRoutesCmd(p))
	rootCmd.AddCommand(newPathCmd(p))
	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
