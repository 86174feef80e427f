package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/lintang-b-s/modalroute/pkg/datastructure"
	"github.com/lintang-b-s/modalroute/pkg/util"

	"github.com/spf13/cobra"
)

// pathQuery holds the flag values, nil fields are asked for on stdin.
type pathQuery struct {
	from *int32
	to   *int32
	mode *string
}

func newPathCmd(p *planner) *cobra.Command {
	var (
		from, to int32
		mode     string
	)

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Find the cheapest route between two cities",
		Long: `Find the cheapest route between two cities using only routes of one mode.

Missing flags are prompted for.

Examples:
  routeplanner path --from 0 --to 4 --mode train
  routeplanner path --mode car`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := pathQuery{}
			if cmd.Flags().Changed("from") {
				q.from = &from
			}
			if cmd.Flags().Changed("to") {
				q.to = &to
			}
			if cmd.Flags().Changed("mode") {
				q.mode = &mode
			}
			return p.runPath(cmd, bufio.NewScanner(cmd.InOrStdin()), q)
		},
	}

	pathCmd.Flags().Int32VarP(&from, "from", "f", 0, "source city id")
	pathCmd.Flags().Int32VarP(&to, "to", "t", 0, "destination city id")
	pathCmd.Flags().StringVarP(&mode, "mode", "m", "", "transportation mode: train, car, airplane or 0-2")
	return pathCmd
}

func (p *planner) runPath(cmd *cobra.Command, in *bufio.Scanner, q pathQuery) error {
	out := cmd.OutOrStdout()
	in.Split(bufio.ScanWords)
	last := p.network.NumCities() - 1

	from, okFrom := q.from, true
	if from == nil {
		fmt.Fprintf(out, "Select source city (0-%d): ", last)
		from, okFrom = scanCityID(in)
	}
	to, okTo := q.to, true
	if to == nil {
		fmt.Fprintf(out, "Select destination city (0-%d): ", last)
		to, okTo = scanCityID(in)
	}
	modeText := ""
	if q.mode != nil {
		modeText = *q.mode
	} else {
		printModeMenu(out)
		if in.Scan() {
			modeText = in.Text()
		}
	}
	mode, errMode := datastructure.ParseMode(modeText)

	if !okFrom || !okTo || errMode != nil || !p.network.HasCity(*from) || !p.network.HasCity(*to) {
		fmt.Fprintln(out, "Invalid input. Exiting...")
		return errInvalidInput
	}

	route, err := p.svc.ShortestPath(context.Background(), *from, *to, mode)
	if err != nil {
		return err
	}
	printPath(out, p.network.CityName, *from, *to, mode, route.Result)
	return nil
}

func scanCityID(in *bufio.Scanner) (*int32, bool) {
	if !in.Scan() {
		return nil, false
	}
	id, err := strconv.ParseInt(in.Text(), 10, 32)
	if err != nil {
		return nil, false
	}
	id32 := int32(id)
	return &id32, true
}

func printModeMenu(w io.Writer) {
	fmt.Fprintln(w, "Select transportation mode:")
	for _, m := range datastructure.AllModes() {
		fmt.Fprintf(w, "%d. %s\n", m, m.Title())
	}
}

func printPath(w io.Writer, name func(int32) string, from, to int32, mode datastructure.Mode,
	res datastructure.PathResult) {
	if !res.Found {
		fmt.Fprintf(w, "No path found from city %s to city %s\n", name(from), name(to))
		return
	}

	fmt.Fprintf(w, "Shortest path from %s to %s using %s:\n", name(from), name(to), mode)
	fmt.Fprintln(w, util.JoinNames(res.Path, name, " -> "))
	fmt.Fprintf(w, "Total cost: $%d\n", res.Cost)
}
