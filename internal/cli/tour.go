package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/powergrab/config"
	"github.com/katalvlaran/powergrab/geo"
	"github.com/katalvlaran/powergrab/geomap"
	"github.com/katalvlaran/powergrab/tsp"
)

// stop is a station to visit; tours are computed over stops so ids survive reordering.
type stop struct {
	id  string
	pos geo.Position
}

func (s stop) Distance(o stop) float64 { return s.pos.Distance(o.pos) }

// tourOpts holds the command-line flags of the tour command.
type tourOpts struct {
	lat, lng      float64
	maxIterations int // negative means unbounded
	asymmetric    bool
	first         bool // first improvement instead of best
	shuffle       bool
	seed          int64
	heuristic     string
}

func newTourCmd() *cobra.Command {
	start := config.Default().Start
	opts := tourOpts{
		lat:           start.Lat,
		lng:           start.Lng,
		maxIterations: -1,
		heuristic:     tsp.ThreeOpt.String(),
	}

	cmd := &cobra.Command{
		Use:   "tour <map.geojson|url>",
		Short: "Print the optimized visiting order of the positive stations of a map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd, args[0], opts)
		},
	}

	cmd.Flags().Float64Var(&opts.lat, "lat", opts.lat, "latitude of the starting point")
	cmd.Flags().Float64Var(&opts.lng, "lng", opts.lng, "longitude of the starting point")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", opts.maxIterations, "refinement sweeps allowed to improve the tour (negative: unbounded)")
	cmd.Flags().BoolVar(&opts.asymmetric, "asymmetric", false, "price moves by full tour length")
	cmd.Flags().BoolVar(&opts.first, "first-improvement", false, "apply the first improving move of a sweep")
	cmd.Flags().BoolVar(&opts.shuffle, "shuffle", false, "scan the neighbourhood in a seeded random order")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed for --shuffle")
	cmd.Flags().StringVar(&opts.heuristic, "heuristic", opts.heuristic, "local search: three-opt or relocate-two-opt")

	return cmd
}

func runTour(cmd *cobra.Command, source string, opts tourOpts) error {
	var (
		ctx    = cmd.Context()
		logger = loggerFromContext(ctx)
		doc    *geomap.Document
		err    error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		doc, err = geomap.Source{}.Fetch(ctx, source)
	} else {
		doc, err = geomap.ReadFile(source)
	}
	if err != nil {
		return err
	}
	m, err := doc.Map()
	if err != nil {
		return err
	}

	h, err := tsp.ParseHeuristic(opts.heuristic)
	if err != nil {
		return err
	}
	to := tsp.DefaultOptions()
	to.Heuristic = h
	to.Symmetric = !opts.asymmetric
	to.BestImprovement = !opts.first
	to.ShuffleNeighborhood = opts.shuffle
	to.Seed = opts.seed
	if opts.maxIterations >= 0 {
		to.MaxIterations = opts.maxIterations
	}
	solver, err := tsp.NewSolver[stop](to)
	if err != nil {
		return err
	}
	solver.SetInitialNode(stop{id: "start", pos: geo.Position{Lat: opts.lat, Lng: opts.lng}})

	var stops []stop
	for _, s := range m.Positive() {
		stops = append(stops, stop{id: s.ID, pos: s.Position})
	}
	nn := solver.NearestNeighbours(stops)
	tour, moves := solver.Improve(nn)
	logger.Debug("tour refined", "stations", len(stops), "heuristic", h, "moves", moves)

	out := cmd.OutOrStdout()
	for i, s := range tour {
		fmt.Fprintf(out, "%3d  %s  %s\n", i+1, s.id, s.pos)
	}
	fmt.Fprintf(out, "length %.6f (nearest neighbour %.6f, %d improving moves)\n",
		solver.Length(tour), solver.Length(nn), moves)

	return nil
}
