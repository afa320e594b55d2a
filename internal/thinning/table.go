package thinning

import (
	"strings"
	"sync"
)

// DecisionTable holds a deletion decision for every 8-neighbor pattern,
// indexed by the two codes returned by Ring.Codes: table[northEast][southWest]
// is true when a pixel with that neighborhood is deleted.
type DecisionTable [16][16]bool

// BuildTable evaluates rule for sub over all 256 neighborhoods.
func BuildTable(sub SubIteration, rule Rule) DecisionTable {
	var t DecisionTable
	for ne := uint8(0); ne < 16; ne++ {
		for sw := uint8(0); sw < 16; sw++ {
			t[ne][sw] = rule(sub, RingFromCodes(ne, sw))
		}
	}
	return t
}

// Deletes reports the decision stored for r.
func (t *DecisionTable) Deletes(r Ring) bool {
	ne, sw := r.Codes()
	return t[ne][sw]
}

// Count returns how many patterns the table deletes.
func (t *DecisionTable) Count() int {
	n := 0
	for _, row := range t {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// String renders the table as 16 lines of 16 characters, '1' for delete,
// rows by northEast code and columns by southWest code.
func (t *DecisionTable) String() string {
	var sb strings.Builder
	for _, row := range t {
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

var extendedTables = sync.OnceValue(func() *[2]DecisionTable {
	return &[2]DecisionTable{
		First:  BuildTable(First, ExtendedRule),
		Second: BuildTable(Second, ExtendedRule),
	}
})

// ExtendedTable returns the shared, read-only ExtendedRule table for sub.
// The tables are built on first use. Any value other than First selects the
// Second table, as the rules themselves do.
func ExtendedTable(sub SubIteration) *DecisionTable {
	if sub != First {
		sub = Second
	}
	return &extendedTables()[sub]
}

// TableEngine thins with ExtendedRule through precomputed DecisionTables.
//
// Each pass runs a single sub-iteration. The pass reads the current image,
// writes survivors into a scratch image and then hands the scratch image on
// as the next current image, alternating First and Second. The engine stops
// after the first pass that deletes nothing.
type TableEngine struct {
	// Observe, when set, is called after every pass.
	Observe Observer
}

// Thin implements Engine.
func (e *TableEngine) Thin(img *BinaryImage) (*BinaryImage, Stats) {
	var stats Stats
	current := img.Clone()
	scratch := NewBlank(img.Width(), img.Height())
	active := First

	for changed := true; changed; {
		changed = false
		table := ExtendedTable(active)
		removed := 0

		for p := range current.All() {
			keep := p.Value
			if keep {
				_, ring := current.Neighbors(p.X, p.Y)
				if table.Deletes(ring) {
					keep = false
					changed = true
					removed++
				}
			}
			scratch.pix[p.Y][p.X] = keep
		}

		current, scratch = scratch, current
		active = active.next()

		stats.Passes++
		stats.Removed += removed
		if e.Observe != nil {
			// current becomes the scratch image of the next pass.
			e.Observe(PassInfo{Pass: stats.Passes, Removed: removed, Image: current.Clone()})
		}
	}

	stats.Remaining = current.Count()
	return current, stats
}
