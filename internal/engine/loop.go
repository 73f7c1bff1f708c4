// Package engine drives a generation-based simulation loop.
package engine

import (
	"context"
	"log/slog"
	"time"
)

// Engine steps a simulation forward one generation at a time.
type Engine struct {
	Generation      uint64        // Last completed generation (monotonic)
	Interval        time.Duration // Minimum wall time per generation; 0 runs flat out
	MaxGenerations  uint64        // Stop after this many generations; 0 = until cancelled
	CheckpointEvery uint64        // OnCheckpoint cadence in generations; 0 disables

	// Callbacks, populated during setup.
	OnGeneration func(gen uint64)
	OnCheckpoint func(gen uint64)
}

// NewEngine creates an engine with default settings.
func NewEngine() *Engine {
	return &Engine{
		Interval:        0,
		CheckpointEvery: 1,
	}
}

// Run steps until MaxGenerations is reached or ctx is cancelled.
// It returns ctx.Err() when stopped by cancellation.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("engine started", "generation", e.Generation, "max", e.MaxGenerations)

	for e.MaxGenerations == 0 || e.Generation < e.MaxGenerations {
		if err := ctx.Err(); err != nil {
			slog.Info("engine stopped", "generation", e.Generation)
			return err
		}

		start := time.Now()
		e.step()

		if elapsed := time.Since(start); elapsed < e.Interval {
			select {
			case <-ctx.Done():
			case <-time.After(e.Interval - elapsed):
			}
		}
	}

	slog.Info("engine finished", "generation", e.Generation)
	return nil
}

// step advances the simulation by one generation.
func (e *Engine) step() {
	e.Generation++

	if e.OnGeneration != nil {
		e.OnGeneration(e.Generation)
	}
	if e.CheckpointEvery > 0 && e.Generation%e.CheckpointEvery == 0 && e.OnCheckpoint != nil {
		e.OnCheckpoint(e.Generation)
	}
}
