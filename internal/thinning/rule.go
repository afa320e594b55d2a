package thinning

import "fmt"

// SubIteration selects which half of a thinning pass is running. The two
// halves peel opposite sides of a stroke.
type SubIteration int

const (
	// First removes south-east boundary pixels and north-west corners.
	First SubIteration = iota
	// Second removes north-west boundary pixels and south-east corners.
	Second
)

func (s SubIteration) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("SubIteration(%d)", int(s))
	}
}

// next returns the other sub-iteration.
func (s SubIteration) next() SubIteration {
	if s == First {
		return Second
	}
	return First
}

// Rule decides whether an ink pixel with neighborhood r is deleted during
// sub-iteration s.
type Rule func(s SubIteration, r Ring) bool

// StandardRule is the direct per-pixel test: delete when 2 <= B_p <= 6,
// A_p == 1 and the sub-iteration's corner condition holds.
func StandardRule(s SubIteration, r Ring) bool {
	crossing, count := Classify(r)
	if count < 2 || count > 6 || crossing != 1 {
		return false
	}
	return cornersClear(s, r)
}

// ExtendedRule widens StandardRule: B_p may reach 7, and a pixel with two
// ink runs (A_p == 2) is also deleted when it sits on a diagonal staircase
// facing the sub-iteration's side.
func ExtendedRule(s SubIteration, r Ring) bool {
	crossing, count := Classify(r)
	inRange := count >= 2 && count <= 7

	switch crossing {
	case 1:
		return inRange && cornersClear(s, r)
	case 2:
		if s == First {
			return (inRange && r[P2] && r[P4] && !(r[P6] || r[P7] || r[P8])) ||
				(r[P4] && r[P6] && !(r[P2] || r[P8] || r[P9]))
		}
		return (inRange && r[P2] && r[P8] && !(r[P4] || r[P5] || r[P6])) ||
			(r[P6] && r[P8] && !(r[P2] || r[P3] || r[P4]))
	default:
		return false
	}
}

// cornersClear is the corner condition shared by both rules.
func cornersClear(s SubIteration, r Ring) bool {
	if s == First {
		return !(r[P2] && r[P4] && r[P6]) && !(r[P4] && r[P6] && r[P8])
	}
	return !(r[P2] && r[P4] && r[P8]) && !(r[P2] && r[P6] && r[P8])
}
