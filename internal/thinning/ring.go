package thinning

// Ring holds the eight neighbors of a pixel, indexed by P2..P9.
type Ring [8]bool

// Neighbor positions within a Ring, clockwise from north.
// Every rule in this package depends on this order.
const (
	P2 = iota // north       (x, y-1)
	P3        // north-east  (x+1, y-1)
	P4        // east        (x+1, y)
	P5        // south-east  (x+1, y+1)
	P6        // south       (x, y+1)
	P7        // south-west  (x-1, y+1)
	P8        // west        (x-1, y)
	P9        // north-west  (x-1, y-1)
)

// RingOf builds a Ring from P2..P9 in order.
func RingOf(p2, p3, p4, p5, p6, p7, p8, p9 bool) Ring {
	return Ring{p2, p3, p4, p5, p6, p7, p8, p9}
}

// Classify returns the crossing number A_p and the neighbor count B_p of r.
//
// The crossing number counts paper-to-ink transitions walking P2, P3, ...,
// P9 and back to P2, that is the number of separate runs of ink around the
// pixel. The neighbor count is the number of ink neighbors.
func Classify(r Ring) (crossing, count int) {
	for i, v := range r {
		if !v {
			if r[(i+1)%len(r)] {
				crossing++
			}
			continue
		}
		count++
	}
	return crossing, count
}

// Codes packs r into two 4-bit codes. northEast holds P2..P5 and southWest
// holds P6..P9, lowest-numbered neighbor in bit 0.
func (r Ring) Codes() (northEast, southWest uint8) {
	for i := 0; i < 4; i++ {
		if r[P2+i] {
			northEast |= 1 << i
		}
		if r[P6+i] {
			southWest |= 1 << i
		}
	}
	return northEast, southWest
}

// RingFromCodes is the inverse of Ring.Codes. Bits above the low nibble are
// ignored.
func RingFromCodes(northEast, southWest uint8) Ring {
	var r Ring
	for i := 0; i < 4; i++ {
		r[P2+i] = northEast&(1<<i) != 0
		r[P6+i] = southWest&(1<<i) != 0
	}
	return r
}
