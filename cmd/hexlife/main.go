// Command hexlife runs a game of life on a hexagonal board and reports on a
// noise-generated terrain layer.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"github.com/talgya/hexgrid/internal/config"
	"github.com/talgya/hexgrid/internal/engine"
	"github.com/talgya/hexgrid/internal/entropy"
	"github.com/talgya/hexgrid/internal/grid"
	"github.com/talgya/hexgrid/internal/hex"
	"github.com/talgya/hexgrid/internal/life"
	"github.com/talgya/hexgrid/internal/noise"
	"github.com/talgya/hexgrid/internal/persistence"
)

func main() {
	configPath := flag.StringP("config", "c", "", "path to YAML config file")
	generations := flag.Uint64P("generations", "g", 0, "override run.generations")
	resume := flag.Bool("resume", false, "continue from the board saved in storage.path")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if flag.CommandLine.Changed("generations") {
		cfg.Run.Generations = *generations
	}

	slog.SetDefault(slog.New(newHandler(cfg.Log)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *resume); err != nil {
		slog.Error("hexlife failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newHandler picks a text handler on a terminal and JSON otherwise, unless
// the format is set explicitly.
func newHandler(lc config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(lc.Level)}
	format := lc.Format
	if format == "auto" {
		format = "json"
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			format = "text"
		}
	}
	if format == "json" {
		return slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.NewTextHandler(os.Stdout, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func run(ctx context.Context, cfg *config.Config, resume bool) error {
	var db *persistence.DB
	if cfg.Storage.Path != "" {
		var err error
		if db, err = persistence.Open(cfg.Storage.Path); err != nil {
			return err
		}
		defer db.Close()
		slog.Info("database opened", "path", cfg.Storage.Path)
	}

	if cfg.Terrain.Enabled {
		reportTerrain(cfg.Terrain)
	}

	eng := engine.NewEngine()
	eng.Interval = cfg.Interval()
	eng.CheckpointEvery = cfg.Run.CheckpointEvery

	board, err := initialBoard(cfg, db, resume, eng)
	if err != nil {
		return err
	}
	eng.MaxGenerations = eng.Generation + cfg.Run.Generations
	if cfg.Run.Generations == 0 {
		eng.MaxGenerations = 0
	}

	slog.Info("board ready",
		"cells", humanize.Comma(int64(board.Len())),
		"alive", humanize.Comma(int64(life.Alive(board))),
		"generation", eng.Generation,
	)

	eng.OnGeneration = func(gen uint64) {
		next := life.Step(board, cfg.Board.Size)
		change := life.Compare(board, next)
		board = next
		slog.Info("generation",
			"gen", gen,
			"alive", humanize.Comma(int64(life.Alive(board))),
			"births", humanize.Comma(int64(change.Births)),
			"deaths", humanize.Comma(int64(change.Deaths)),
		)
	}
	if db != nil {
		eng.OnCheckpoint = func(gen uint64) {
			if err := checkpoint(db, cfg.Storage.Layer, board, gen); err != nil {
				slog.Error("checkpoint failed", "gen", gen, "error", err)
			}
		}
	}

	err = eng.Run(ctx)
	if db != nil {
		if saveErr := checkpoint(db, cfg.Storage.Layer, board, eng.Generation); saveErr != nil {
			return saveErr
		}
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// initialBoard restores the saved board when resuming, or seeds a fresh one.
func initialBoard(cfg *config.Config, db *persistence.DB, resume bool, eng *engine.Engine) (*grid.Layer[bool, int], error) {
	if resume && db != nil {
		board, err := persistence.LoadLayer[bool, int](db, cfg.Storage.Layer)
		switch {
		case err == nil:
			if s, err := db.GetMeta("generation"); err == nil {
				if gen, err := strconv.ParseUint(s, 10, 64); err == nil {
					eng.Generation = gen
				}
			}
			slog.Info("board restored", "layer", cfg.Storage.Layer, "generation", eng.Generation)
			return board, nil
		case errors.Is(err, persistence.ErrLayerNotFound):
			slog.Info("no saved board, seeding a new one", "layer", cfg.Storage.Layer)
		default:
			return nil, err
		}
	}

	seed := entropy.Resolve(cfg.Board.Seed)
	slog.Info("seeding board", "seed", seed, "size", cfg.Board.Size, "probability", cfg.Board.AliveProbability)
	board := life.NewBoard[int](cfg.Board.Size)
	life.Seed(board, cfg.Board.SeedRadius, cfg.Board.AliveProbability, entropy.NewRand(seed))
	return board, nil
}

func checkpoint(db *persistence.DB, layer string, board *grid.Layer[bool, int], gen uint64) error {
	snapshot, err := persistence.SaveLayerWithMeta(db, layer, board, map[string]string{
		"generation": strconv.FormatUint(gen, 10),
	})
	if err != nil {
		return err
	}
	slog.Debug("checkpoint saved", "layer", layer, "gen", gen, "snapshot", snapshot)
	return nil
}

// reportTerrain generates a noise heightmap, blocks the high ground and logs
// what is reachable and visible from the origin.
func reportTerrain(tc config.TerrainConfig) {
	origin := hex.Origin[int]()
	heights := noise.Heightmap(tc.Noise, tc.Range, origin)
	blocked := noise.Blocked(heights, tc.BlockLevel)
	// Keep the origin open so the queries have somewhere to start.
	blocked.Set(origin, false)

	walls := 0
	for b := range blocked.Data() {
		if b {
			walls++
		}
	}

	visible := grid.FieldOfView(blocked, origin, tc.ViewRange)
	reachable := grid.FieldOfMove(blocked, origin, tc.MoveRange)

	// Path to the farthest cell in the walkable area, if any.
	target := origin
	for _, pos := range reachable.Sorted() {
		if pos.Distance(origin) > target.Distance(origin) {
			target = pos
		}
	}
	path := grid.Pathfinding(blocked, origin, target)

	slog.Info("terrain",
		"cells", humanize.Comma(int64(blocked.Len())),
		"blocked", humanize.Comma(int64(walls)),
		"visible", humanize.Comma(int64(visible.Len())),
		"reachable", humanize.Comma(int64(reachable.Len())),
		"path_to", target,
		"path_len", len(path),
	)
}
