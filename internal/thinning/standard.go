package thinning

// StandardEngine thins with StandardRule.
//
// Each pass runs the First and then the Second sub-iteration. A sub-iteration
// decides every pixel against the image as it was when the sub-iteration
// started, collects the deletions in a mask and applies the mask in one
// Difference. The engine converges when a whole pass removes nothing.
type StandardEngine struct {
	// Observe, when set, is called after every pass.
	Observe Observer
}

// Thin implements Engine.
func (e *StandardEngine) Thin(img *BinaryImage) (*BinaryImage, Stats) {
	var stats Stats
	current := img.Clone()

	for converged := false; !converged; {
		removed := 0
		for _, sub := range []SubIteration{First, Second} {
			mask, n := markDeletions(current, sub, StandardRule)
			if n > 0 {
				current = current.Difference(mask)
			}
			removed += n
		}

		stats.Passes++
		stats.Removed += removed
		converged = removed == 0
		if e.Observe != nil {
			e.Observe(PassInfo{Pass: stats.Passes, Removed: removed, Image: current})
		}
	}

	stats.Remaining = current.Count()
	return current, stats
}

// markDeletions returns a mask of the ink pixels of snapshot that rule
// deletes during sub, and how many there are. snapshot is not modified.
func markDeletions(snapshot *BinaryImage, sub SubIteration, rule Rule) (*BinaryImage, int) {
	mask := NewBlank(snapshot.Width(), snapshot.Height())
	n := 0
	for p := range snapshot.All() {
		if !p.Value {
			continue
		}
		if _, ring := snapshot.Neighbors(p.X, p.Y); rule(sub, ring) {
			mask.pix[p.Y][p.X] = true
			n++
		}
	}
	return mask, n
}
