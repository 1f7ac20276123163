// Command hexforge generates a terrain map from a sample and prints it.
//
//	hexforge -sample testdata/test.txt -radius 8
//	hexforge -seed AAEPWOIF -regions
//	hexforge -width 40 -height 20 -verbose
//
// Without -sample a noise sample is synthesized (see -noise).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"time"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
	"github.com/katalvlaran/hexforge/regions"
	"github.com/katalvlaran/hexforge/sample"
	"github.com/katalvlaran/hexforge/terrain"
	"github.com/katalvlaran/hexforge/wfc"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	samplePath    string
	noiseSeed     int64
	noiseRadius   int
	seed          string
	radius        int
	width, height int
	verbose       bool
	timeout       time.Duration
	regions       bool
	rotationsOnly bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hexforge", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.samplePath, "sample", "", "Sample file (default: a noise sample)")
	fs.Int64Var(&o.noiseSeed, "noise", 1, "Noise seed for the synthesized sample")
	fs.IntVar(&o.noiseRadius, "noise-radius", 6, "Radius of the synthesized sample")
	fs.StringVar(&o.seed, "seed", "", "Seed text to replay; overrides -radius, -width and -height")
	fs.IntVar(&o.radius, "radius", 8, "Radius of a hexagonal map")
	fs.IntVar(&o.width, "width", 0, "Width of a rectangular map")
	fs.IntVar(&o.height, "height", 0, "Height of a rectangular map")
	fs.BoolVar(&o.verbose, "verbose", false, "Log every collapse and rewind")
	fs.DurationVar(&o.timeout, "timeout", time.Minute, "The timeout for the generator")
	fs.BoolVar(&o.regions, "regions", false, "Report connected regions per terrain kind")
	fs.BoolVar(&o.rotationsOnly, "rotations-only", false, "Learn tiles under rotations only, without mirror images")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if (o.width > 0) != (o.height > 0) {
		return o, errors.New("-width and -height must be given together")
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "hexforge:", err)
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := generate(o, log, stdout); err != nil {
		log.Error("generation failed", slog.Any("err", err))
		return 1
	}
	return 0
}

func generate(o options, log *slog.Logger, stdout io.Writer) error {
	src, err := loadSample(o)
	if err != nil {
		return err
	}
	var topts []wfc.TemplateOption
	if o.rotationsOnly {
		topts = append(topts, wfc.WithTransforms(hex.Rotations()...))
	}
	tpl, err := wfc.BuildTemplate(src, topts...)
	if err != nil {
		return err
	}
	log.Info("template ready", slog.Int("tiles", tpl.Len()), slog.String("sample", src.Layout().String()))

	seed, err := pickSeed(o)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	var gopts []wfc.Option
	if o.verbose {
		gopts = append(gopts, wfc.WithLogger(log))
	}
	switch seed.Shape {
	case wfc.ShapeSquare:
		return runGenerator[layout.Square](ctx, tpl, seed, gopts, o.regions, log, stdout)
	default:
		return runGenerator[layout.Hexagonal](ctx, tpl, seed, gopts, o.regions, log, stdout)
	}
}

func loadSample(o options) (*grid.Grid[layout.Hexagonal, terrain.Kind], error) {
	if o.samplePath != "" {
		return sample.ParseFile(o.samplePath, terrain.Symbols())
	}
	return sample.Noise(o.noiseRadius, o.noiseSeed, terrain.Kinds())
}

func pickSeed(o options) (wfc.Seed, error) {
	if o.seed != "" {
		return wfc.ParseSeed(o.seed)
	}
	rng := rand.Uint64()
	if o.width > 0 {
		return wfc.SquareSeed(o.width, o.height, rng), nil
	}
	return wfc.HexagonalSeed(o.radius, rng), nil
}

func runGenerator[L layout.Layout](ctx context.Context, tpl *wfc.Template[terrain.Kind], seed wfc.Seed, opts []wfc.Option, report bool, log *slog.Logger, stdout io.Writer) error {
	g, err := wfc.NewWithSeed[L](tpl, seed, opts...)
	if err != nil {
		return err
	}
	start := time.Now()
	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("after %d steps: %w", g.Steps(), err)
	}
	log.Info("generated",
		slog.String("layout", g.Layout().String()),
		slog.Int("steps", g.Steps()),
		slog.Int("rewinds", g.Rewinds()),
		slog.Duration("took", time.Since(start)),
	)

	out, err := g.Export()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "seed:", seed)
	if err := sample.Dump(stdout, out, terrain.Glyphs()); err != nil {
		return err
	}
	if report {
		return printRegions(stdout, out)
	}
	return nil
}

// printRegions writes one line per kind: its region count, the size of the
// largest region and, when there are several, how many other cells must be
// converted to join the two largest.
func printRegions[L layout.Layout](w io.Writer, out *grid.Grid[L, terrain.Kind]) error {
	counts := regions.Count(out)
	kinds := make([]terrain.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		ranked := regions.Rank(out, k)
		line := fmt.Sprintf("%-8s %3d regions, largest %d cells", k, counts[k], ranked[0].Size())
		if len(ranked) > 1 {
			same := func(v terrain.Kind) bool { return v == k }
			_, cost, err := regions.Bridge(out, ranked[0].Cells, ranked[1].Cells, same)
			if err != nil {
				return fmt.Errorf("bridge %v: %w", k, err)
			}
			line += fmt.Sprintf(", bridge %d", cost)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
