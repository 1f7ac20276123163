package wfc

import (
	"fmt"

	"github.com/katalvlaran/hexforge/bitset"
)

// Cell is one output position: either collapsed to a single tile, or holding
// the set of tiles still allowed there. An uncollapsed cell with no
// alternatives is a contradiction; it only exists until the next Step rewinds.
type Cell struct {
	collapsed bool
	tile      int
	alts      *bitset.Set
}

// Collapsed reports the chosen tile ID, if any.
func (c Cell) Collapsed() (int, bool) {
	return c.tile, c.collapsed
}

// Count returns the number of allowed tiles: 1 once collapsed.
func (c Cell) Count() int {
	if c.collapsed {
		return 1
	}
	return c.alts.Count()
}

// Alternatives returns a copy of the allowed tile set, or nil once collapsed.
func (c Cell) Alternatives() *bitset.Set {
	if c.collapsed {
		return nil
	}
	return c.alts.Clone()
}

func (c Cell) String() string {
	if c.collapsed {
		return fmt.Sprintf("Collapsed(%d)", c.tile)
	}
	return fmt.Sprintf("Alternatives(%d, %v)", c.alts.Count(), c.alts)
}
