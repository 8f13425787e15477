// Package app sequences the asset generators.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/glebschkv/phone-pet-paradise/internal/log"
)

// Generator produces one asset family on disk. Implementations resolve
// their own input and output paths and must not write anything when they
// return an error.
type Generator interface {
	Name() string
	Generate(ctx context.Context) error
}

// NoopGenerator stands in for a disabled asset family.
type NoopGenerator struct {
	Label string
}

func (n NoopGenerator) Name() string {
	if n.Label == "" {
		return "noop"
	}
	return n.Label
}

func (NoopGenerator) Generate(context.Context) error { return nil }

// App runs generators in order, stopping at the first failure.
type App struct {
	Generators []Generator
}

func New(generators ...Generator) *App {
	return &App{Generators: generators}
}

// Run executes every generator sequentially. The returned error carries the
// failing generator's name.
func (app *App) Run(ctx context.Context) error {
	started := time.Now()
	for _, gen := range app.Generators {
		if err := ctx.Err(); err != nil {
			return err
		}
		genStart := time.Now()
		log.Infof("%s: generating", gen.Name())
		if err := gen.Generate(ctx); err != nil {
			return fmt.Errorf("%s: %w", gen.Name(), err)
		}
		log.Infof("%s: done in %s", gen.Name(), time.Since(genStart).Round(time.Millisecond))
	}
	log.Infof("all assets generated in %s", time.Since(started).Round(time.Millisecond))
	return nil
}
