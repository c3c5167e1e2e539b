package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/powergrab/config"
	"github.com/katalvlaran/powergrab/game"
	"github.com/katalvlaran/powergrab/geomap"
	"github.com/katalvlaran/powergrab/pilot"
	"github.com/katalvlaran/powergrab/simulation"
)

// dateLayout is the dd-MM-yyyy form used in flags and file names.
const dateLayout = "02-01-2006"

// errBadDate indicates a day, month and year that do not form a calendar date.
var errBadDate = errors.New("invalid date")

// runOpts holds the command-line flags of the run command.
type runOpts struct {
	configPath  string // TOML or YAML file applied before the flags
	to          string // last day of the range, dd-MM-yyyy
	mapDir      string // local map tree
	mapURL      string // remote URL template
	outDir      string // output directory
	noLog       bool   // skip the flight log and GeoJSON trace
	stats       bool   // append to performance-<pilot>.csv
	maxMoves    int    // move budget per flight
	searchBound int    // stateful planner bound
}

func newRunCmd() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [flags] <day> <month> <year> <lat> <lng> <seed> <pilot>",
		Short: "Fly a pilot over the map of a day or a range of days",
		Long: `Fly a drone from (lat, lng) over the PowerGrab map of the given day.

Pilots: stateless, stateful, attraction.

For each day the command writes <pilot>-<dd-MM-yyyy>.txt, one move per line,
and <pilot>-<dd-MM-yyyy>.geojson, the map with the flight path added.

Flags go before the positional arguments, so negative coordinates such as
-3.188396 are read as values rather than flags.`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, from, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			until := from
			if opts.to != "" {
				if until, err = time.Parse(dateLayout, opts.to); err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				if until.Before(from) {
					return fmt.Errorf("--to %s is before %s", opts.to, from.Format(dateLayout))
				}
			}
			return runRange(cmd, cfg, from, until)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "load settings from a TOML or YAML file")
	cmd.Flags().StringVar(&opts.to, "to", "", "last day to simulate (dd-MM-yyyy)")
	cmd.Flags().StringVar(&opts.mapDir, "dir", "", "local map tree <dir>/YYYY/MM/DD/"+geomap.FileName)
	cmd.Flags().StringVar(&opts.mapURL, "url", geomap.DefaultURLTemplate, "remote map URL template (year, month, day)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&opts.noLog, "no-log", false, "do not write flight logs and traces")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "append score and time to performance-<pilot>.csv")
	cmd.Flags().IntVar(&opts.maxMoves, "max-moves", 250, "move budget per flight")
	cmd.Flags().IntVar(&opts.searchBound, "search-bound", pilot.DefaultSearchBound, "frontier and explored bound of the stateful pilot")

	return cmd
}

// resolve merges defaults, the config file, explicit flags and the positional
// arguments, in that order, and returns the validated settings and first day.
func (o runOpts) resolve(cmd *cobra.Command, args []string) (config.Run, time.Time, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, time.Time{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.MapDir = o.mapDir
	}
	if flags.Changed("url") {
		cfg.MapURL = o.mapURL
	}
	if flags.Changed("out") {
		cfg.OutDir = o.outDir
	}
	if flags.Changed("no-log") {
		cfg.WriteFlight = !o.noLog
	}
	if flags.Changed("stats") {
		cfg.Stats = o.stats
	}
	if flags.Changed("max-moves") {
		cfg.MaxMoves = o.maxMoves
	}
	if flags.Changed("search-bound") {
		cfg.SearchBound = o.searchBound
	}

	date, err := parseDate(args[0], args[1], args[2])
	if err != nil {
		return cfg, time.Time{}, err
	}
	if cfg.Start.Lat, err = strconv.ParseFloat(args[3], 64); err != nil {
		return cfg, time.Time{}, fmt.Errorf("latitude: %w", err)
	}
	if cfg.Start.Lng, err = strconv.ParseFloat(args[4], 64); err != nil {
		return cfg, time.Time{}, fmt.Errorf("longitude: %w", err)
	}
	if cfg.Seed, err = strconv.ParseInt(args[5], 10, 64); err != nil {
		return cfg, time.Time{}, fmt.Errorf("seed: %w", err)
	}
	cfg.Pilot = args[6]

	return cfg, date, cfg.Validate()
}

// parseDate builds a UTC date from day, month and year, rejecting overflow such as 31 02.
func parseDate(day, month, year string) (time.Time, error) {
	var (
		v   [3]int
		err error
	)
	for i, s := range []string{day, month, year} {
		if v[i], err = strconv.Atoi(s); err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", errBadDate, s)
		}
	}
	t := time.Date(v[2], time.Month(v[1]), v[0], 0, 0, 0, 0, time.UTC)
	if t.Day() != v[0] || int(t.Month()) != v[1] || t.Year() != v[2] {
		return time.Time{}, fmt.Errorf("%w: %s-%s-%s", errBadDate, day, month, year)
	}

	return t, nil
}

// runRange flies one simulation per day from first to last inclusive.
func runRange(cmd *cobra.Command, cfg config.Run, first, last time.Time) error {
	var (
		ctx    = cmd.Context()
		runID  = uuid.NewString()
		logger = loggerFromContext(ctx).With("run", runID[:8], "pilot", cfg.Pilot)
	)
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		res, err := flyDay(ctx, cfg, day, logger.With("date", day.Format(dateLayout)))
		if err != nil {
			return fmt.Errorf("%s: %w", day.Format(dateLayout), err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s moves=%d coins=%g/%g score=%.4f\n",
			day.Format(dateLayout), cfg.Pilot, len(res.Moves), res.Coins, res.Total, res.Score)

		if cfg.Stats {
			row := statsRow{Date: day, Score: res.Score, Elapsed: res.Duration, RunID: runID}
			if err = appendStats(statsPath(cfg.OutDir, cfg.Pilot), row); err != nil {
				return err
			}
		}
	}

	return nil
}

// flyDay loads the map of day, flies the configured pilot and writes the flight files.
func flyDay(ctx context.Context, cfg config.Run, day time.Time, logger *log.Logger) (simulation.Result, error) {
	doc, err := cfg.Source().Load(ctx, day)
	if err != nil {
		return simulation.Result{}, err
	}
	m, err := doc.Map()
	if err != nil {
		return simulation.Result{}, err
	}
	logger.Debug("map loaded", "stations", len(m.Stations), "coins", m.TotalPositiveCoins())

	drone, err := game.NewDrone(cfg.Start, m, cfg.Coins, cfg.Power, cfg.Rules)
	if err != nil {
		return simulation.Result{}, err
	}
	p, err := pilot.New(cfg.Pilot, cfg.PilotOptions())
	if err != nil {
		return simulation.Result{}, err
	}
	sim, err := simulation.New(drone, p, cfg.MaxMoves, logger)
	if err != nil {
		return simulation.Result{}, err
	}
	res, err := sim.Run(ctx)
	if err != nil {
		return res, err
	}

	if cfg.WriteFlight {
		base := filepath.Join(cfg.OutDir, cfg.Pilot+"-"+day.Format(dateLayout))
		if err = os.WriteFile(base+".txt", []byte(simulation.Log(res.Moves)), 0o644); err != nil {
			return res, fmt.Errorf("write flight log: %w", err)
		}
		doc.AddPath(simulation.Path(res.Moves))
		if err = doc.WriteFile(base + ".geojson"); err != nil {
			return res, err
		}
		logger.Debug("flight written", "path", base)
	}

	return res, nil
}
