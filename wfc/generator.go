package wfc

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexforge/bitset"
	"github.com/katalvlaran/hexforge/grid"
	"github.com/katalvlaran/hexforge/hex"
	"github.com/katalvlaran/hexforge/layout"
)

// EventKind tells what a Step did.
type EventKind int

const (
	// EventCollapsed means Event.Coord was fixed to Event.Tile.
	EventCollapsed EventKind = iota
	// EventRewound means the most recent collapse, of Event.Coord to
	// Event.Tile, was undone and that tile is now rejected there.
	EventRewound
)

func (k EventKind) String() string {
	switch k {
	case EventCollapsed:
		return "collapsed"
	case EventRewound:
		return "rewound"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event describes the outcome of one Step.
type Event struct {
	Kind  EventKind
	Coord hex.Coord
	Tile  int
}

func (e Event) String() string {
	return fmt.Sprintf("%v %v tile %d", e.Kind, e.Coord, e.Tile)
}

type trailEntry struct {
	coord    hex.Coord
	tile     int
	rejected *bitset.Set
}

// Generator fills a layout one cell per Step, backtracking on contradiction.
// A Generator is not safe for concurrent use; the Template it reads may be
// shared.
type Generator[L layout.Layout, T cmp.Ordered] struct {
	tpl   *Template[T]
	cells *grid.Grid[L, Cell]
	seed  Seed
	rng   *rand.Rand
	log   *slog.Logger

	trail   []trailEntry
	pending mapset.Set[hex.Coord]

	next         hex.Coord
	hasNext      bool
	nextRejected *bitset.Set

	steps   int
	rewinds int
}

// NewWithLayout starts a generator over l with a fresh RNG seed. The seed in
// use is available from Seed, so the run can be repeated with NewWithSeed.
func NewWithLayout[L layout.Layout, T cmp.Ordered](tpl *Template[T], l L, opts ...Option) (*Generator[L, T], error) {
	seed, err := SeedFor(l, freshSeed())
	if err != nil {
		return nil, err
	}
	return newGenerator(tpl, l, seed, opts)
}

// NewWithSeed starts a generator over the layout described by seed. L must be
// the seed's layout type, otherwise ErrSeedLayoutMismatch is returned.
func NewWithSeed[L layout.Layout, T cmp.Ordered](tpl *Template[T], seed Seed, opts ...Option) (*Generator[L, T], error) {
	lay, err := seed.Layout()
	if err != nil {
		return nil, err
	}
	l, ok := lay.(L)
	if !ok {
		return nil, fmt.Errorf("%v into %T: %w", seed.Shape, l, ErrSeedLayoutMismatch)
	}
	return newGenerator(tpl, l, seed, opts)
}

func newGenerator[L layout.Layout, T cmp.Ordered](tpl *Template[T], l L, seed Seed, opts []Option) (*Generator[L, T], error) {
	if tpl == nil || tpl.Len() == 0 {
		return nil, ErrEmptyTemplate
	}
	cfg := genConfig{first: l.Center()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !l.Contains(cfg.first) {
		return nil, fmt.Errorf("first %v in %v: %w", cfg.first, l, ErrOutsideLayout)
	}

	n := tpl.Len()
	g := &Generator[L, T]{
		tpl: tpl,
		cells: grid.FromFunc(l, func(hex.Coord) Cell {
			return Cell{alts: bitset.Full(n)}
		}),
		seed:         seed,
		rng:          newRNG(seed.RNG),
		log:          cfg.logger,
		trail:        make([]trailEntry, 0, l.Size()),
		pending:      mapset.New[hex.Coord](),
		next:         cfg.first,
		hasNext:      true,
		nextRejected: bitset.New(n),
	}
	return g, nil
}

// Template returns the tile catalogue the generator draws from.
func (g *Generator[L, T]) Template() *Template[T] { return g.tpl }

// Layout returns the output layout.
func (g *Generator[L, T]) Layout() L { return g.cells.Layout() }

// Seed returns the seed that reproduces this run.
func (g *Generator[L, T]) Seed() Seed { return g.seed }

// Steps returns the number of Step calls that made progress.
func (g *Generator[L, T]) Steps() int { return g.steps }

// Rewinds returns how many collapses have been undone.
func (g *Generator[L, T]) Rewinds() int { return g.rewinds }

// Collapsed returns the number of collapsed cells.
func (g *Generator[L, T]) Collapsed() int { return len(g.trail) }

// Remaining returns the number of cells still to collapse.
func (g *Generator[L, T]) Remaining() int { return g.cells.Len() - len(g.trail) }

// Done reports whether every cell is collapsed.
func (g *Generator[L, T]) Done() bool { return g.Remaining() == 0 }

// CellAt returns a snapshot of the cell at c.
func (g *Generator[L, T]) CellAt(c hex.Coord) (Cell, bool) {
	cell, ok := g.cells.At(c)
	if !ok {
		return Cell{}, false
	}
	if !cell.collapsed {
		cell.alts = cell.alts.Clone()
	}
	return cell, true
}

// Trail yields the collapsed coordinates with their tiles, oldest first.
func (g *Generator[L, T]) Trail() iter.Seq2[hex.Coord, int] {
	return func(yield func(hex.Coord, int) bool) {
		for _, e := range g.trail {
			if !yield(e.coord, e.tile) {
				return
			}
		}
	}
}

// Step collapses one cell or, if the chosen cell has no tile left, undoes the
// most recent collapse. It returns false once every cell is collapsed.
//
// Panics if a contradiction is reached with nothing left to undo, which
// means the template cannot fill the layout at all.
func (g *Generator[L, T]) Step() (Event, bool) {
	at, rejected, ok := g.advance()
	if !ok {
		return Event{}, false
	}
	g.steps++

	cell := g.cells.Ptr(at)
	if cell.collapsed {
		panic(fmt.Sprintf("wfc: selected collapsed cell %v", at))
	}
	count := cell.alts.Count()
	if count == 0 {
		ev := g.rewind(at)
		g.debug(ev)
		return ev, true
	}
	tile, _ := cell.alts.Nth(g.rng.IntN(count))

	cell.collapsed = true
	cell.tile = tile
	cell.alts = nil
	g.pending.Remove(at)
	if rejected == nil {
		rejected = bitset.New(g.tpl.Len())
	}
	g.trail = append(g.trail, trailEntry{coord: at, tile: tile, rejected: rejected})

	for d, nb := range at.Neighbors() {
		n := g.cells.Ptr(nb)
		if n == nil || n.collapsed {
			continue
		}
		n.alts.And(g.tpl.Compat(tile, d))
		g.pending.Put(nb)
	}

	ev := Event{Kind: EventCollapsed, Coord: at, Tile: tile}
	g.debug(ev)
	return ev, true
}

// advance picks the next cell to work on: the re-queued cell after a rewind,
// else the pending cell with the fewest alternatives (ties by Q then R), else
// the first uncollapsed cell in scan order.
func (g *Generator[L, T]) advance() (hex.Coord, *bitset.Set, bool) {
	if g.hasNext {
		at, rej := g.next, g.nextRejected
		g.hasNext, g.nextRejected = false, nil
		g.pending.Remove(at)
		return at, rej, true
	}

	var (
		best      hex.Coord
		bestCount int
		found     bool
	)
	g.pending.Each(func(c hex.Coord) {
		n := g.cells.Get(c).Count()
		if !found || n < bestCount || (n == bestCount && c.Less(best)) {
			best, bestCount, found = c, n, true
		}
	})
	if found {
		g.pending.Remove(best)
		return best, nil, true
	}

	for c, cell := range g.cells.All() {
		if !cell.collapsed {
			return c, nil, true
		}
	}
	return hex.Coord{}, nil, false
}

// rewind undoes the newest collapse after failing ran out of tiles. The
// undone tile joins the rejected set of its cell, which is re-queued next.
func (g *Generator[L, T]) rewind(failing hex.Coord) Event {
	if len(g.trail) == 0 {
		panic(fmt.Sprintf("wfc: contradiction at %v with empty trail", failing))
	}
	last := g.trail[len(g.trail)-1]
	g.trail = g.trail[:len(g.trail)-1]
	g.rewinds++

	last.rejected.Set(last.tile)
	cell := g.cells.Ptr(last.coord)
	cell.collapsed = false
	cell.alts = bitset.New(g.tpl.Len())
	g.recompute(last.coord, last.rejected)

	for _, nb := range last.coord.Neighbors() {
		if n, ok := g.cells.At(nb); ok && !n.collapsed {
			g.recompute(nb, nil)
		}
	}
	if failing != last.coord {
		g.recompute(failing, nil)
	}

	g.next, g.hasNext, g.nextRejected = last.coord, true, last.rejected
	return Event{Kind: EventRewound, Coord: last.coord, Tile: last.tile}
}

// recompute rebuilds the alternatives of the uncollapsed cell at c from its
// collapsed neighbors, minus rejected.
func (g *Generator[L, T]) recompute(c hex.Coord, rejected *bitset.Set) {
	cell := g.cells.Ptr(c)
	g.constrain(c, cell.alts, rejected)
	if cell.alts.Count() < cell.alts.Len() {
		g.pending.Put(c)
	} else {
		g.pending.Remove(c)
	}
}

// constrain fills dst with every tile allowed at c by its collapsed neighbors
// and removes rejected.
func (g *Generator[L, T]) constrain(c hex.Coord, dst, rejected *bitset.Set) {
	dst.Fill()
	for d, nb := range c.Neighbors() {
		n, ok := g.cells.At(nb)
		if !ok || !n.collapsed {
			continue
		}
		dst.And(g.tpl.Compat(n.tile, d.Opposite()))
	}
	if rejected != nil {
		dst.AndNot(rejected)
	}
}

// Run steps until every cell is collapsed or ctx is done.
func (g *Generator[L, T]) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, ok := g.Step(); !ok {
			return nil
		}
	}
}

// Export maps every collapsed cell to its tile's contribution.
// Returns ErrIncomplete while any cell is uncollapsed.
func (g *Generator[L, T]) Export() (*grid.Grid[L, T], error) {
	if rem := g.Remaining(); rem > 0 {
		return nil, fmt.Errorf("%d cells left: %w", rem, ErrIncomplete)
	}
	return grid.Map(g.cells, func(_ hex.Coord, c Cell) T {
		return g.tpl.Contribution(c.tile)
	}), nil
}

// CheckInvariants verifies the internal state and returns the first
// violation found, or nil. It costs O(cells·tiles) and is meant for tests.
func (g *Generator[L, T]) CheckInvariants() error {
	n := g.tpl.Len()
	onTrail := make(map[hex.Coord]int, len(g.trail))
	for i, e := range g.trail {
		if j, dup := onTrail[e.coord]; dup {
			return fmt.Errorf("wfc: %v on trail at %d and %d", e.coord, j, i)
		}
		onTrail[e.coord] = i
		cell, ok := g.cells.At(e.coord)
		if !ok {
			return fmt.Errorf("wfc: trail entry %v outside layout", e.coord)
		}
		if !cell.collapsed || cell.tile != e.tile {
			return fmt.Errorf("wfc: trail entry %v tile %d but cell is %v", e.coord, e.tile, cell)
		}
		if e.rejected.Test(e.tile) {
			return fmt.Errorf("wfc: %v collapsed to rejected tile %d", e.coord, e.tile)
		}
	}

	want := bitset.New(n)
	for c, cell := range g.cells.All() {
		if cell.collapsed {
			if _, ok := onTrail[c]; !ok {
				return fmt.Errorf("wfc: collapsed %v missing from trail", c)
			}
			if g.pending.Has(c) {
				return fmt.Errorf("wfc: collapsed %v still pending", c)
			}
			for d, nb := range c.Neighbors() {
				o, ok := g.cells.At(nb)
				if ok && o.collapsed && !g.tpl.Compat(cell.tile, d).Test(o.tile) {
					return fmt.Errorf("wfc: %v tile %d conflicts with %v tile %d", c, cell.tile, nb, o.tile)
				}
			}
			continue
		}
		var rejected *bitset.Set
		if g.hasNext && g.next == c {
			rejected = g.nextRejected
		}
		g.constrain(c, want, rejected)
		if !want.Equal(cell.alts) {
			return fmt.Errorf("wfc: %v has %v, neighbors allow %v", c, cell.alts, want)
		}
		if cell.alts.Count() < n && !g.pending.Has(c) && !(g.hasNext && g.next == c) {
			return fmt.Errorf("wfc: constrained %v not pending", c)
		}
	}
	return nil
}

func (g *Generator[L, T]) debug(ev Event) {
	if g.log == nil {
		return
	}
	g.log.Debug("wfc step",
		slog.String("event", ev.Kind.String()),
		slog.String("coord", ev.Coord.String()),
		slog.Int("tile", ev.Tile),
		slog.Int("collapsed", len(g.trail)),
		slog.Int("remaining", g.Remaining()),
	)
}
