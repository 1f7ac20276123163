package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/layout"
	"github.com/katalvlaran/hexforge/sample"
	"github.com/katalvlaran/hexforge/terrain"
	"github.com/katalvlaran/hexforge/wfc"
)

// goldenPath is the radius-5 terrain sample shared by the package tests.
const goldenPath = "../testdata/test.txt"

// goldenMapPath is the radius-8 map generated from goldenPath with seed
// AAEPWOIF.
const goldenMapPath = "../testdata/AAEPWOIF.golden"

// maxSteps bounds every generation loop in tests so a broken search fails
// instead of hanging.
const maxSteps = 200_000

func goldenSample(tb testing.TB) *grid.Grid[layout.Hexagonal, terrain.Kind] {
	tb.Helper()
	g, err := sample.ParseFile(goldenPath, terrain.Symbols())
	require.NoError(tb, err)
	return g
}

func goldenTemplate(tb testing.TB) *wfc.Template[terrain.Kind] {
	tb.Helper()
	tpl, err := wfc.BuildTemplate(goldenSample(tb))
	require.NoError(tb, err)
	return tpl
}

type stepper interface {
	Step() (wfc.Event, bool)
}

// runBounded steps g to completion, failing the test if it takes more than
// maxSteps. check, if non-nil, runs after every step.
func runBounded(tb testing.TB, g stepper, check func()) []wfc.Event {
	tb.Helper()
	var events []wfc.Event
	for i := 0; i < maxSteps; i++ {
		ev, ok := g.Step()
		if !ok {
			return events
		}
		events = append(events, ev)
		if check != nil {
			check()
		}
	}
	tb.Fatalf("generation did not finish in %d steps", maxSteps)
	return nil
}
