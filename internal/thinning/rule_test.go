package thinning_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironsheep/imgthin/internal/thinning"
)

func TestStandardRule(t *testing.T) {
	cases := []struct {
		name   string
		ring   string
		first  bool
		second bool
	}{
		{"Interior", "11111111", false, false},
		{"Isolated", "00000000", false, false},
		{"LineEnd", "00100000", false, false},
		{"TopEdge", "00111110", false, true},
		{"BottomEdge", "11100011", true, false},
		{"RightEdge", "10001111", true, false},
		{"LeftEdge", "11111000", false, true},
		{"Bridge", "10001000", false, false},
		{"SevenNeighbors", "11110111", false, false},
		{"Corner", "00111000", true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := ring(tc.ring)
			assert.Equal(t, tc.first, thinning.StandardRule(thinning.First, r), "first")
			assert.Equal(t, tc.second, thinning.StandardRule(thinning.Second, r), "second")
		})
	}
}

func TestExtendedRule(t *testing.T) {
	cases := []struct {
		sub  thinning.SubIteration
		ring string
		want bool
	}{
		{thinning.First, "11111111", false},
		{thinning.First, "11011111", true},
		{thinning.First, "10110000", true},
		{thinning.First, "11110001", true},
		{thinning.First, "10100000", true},
		{thinning.First, "00101000", true},
		{thinning.First, "01111100", true},
		{thinning.Second, "00001010", true},
		{thinning.Second, "00011111", true},
		{thinning.First, "10001000", false},
		{thinning.Second, "10100000", false},
	}
	for _, tc := range cases {
		t.Run(tc.sub.String()+"/"+tc.ring, func(t *testing.T) {
			assert.Equal(t, tc.want, thinning.ExtendedRule(tc.sub, ring(tc.ring)))
		})
	}
}

// The extended rule is a superset of the standard rule. The extra deletions
// are listed here explicitly instead of being assumed equivalent.
func TestExtendedRule_DiffersFromStandard(t *testing.T) {
	cases := []struct {
		sub            thinning.SubIteration
		sevenNeighbors []string
		twoRuns        []string
	}{
		{
			sub:            thinning.First,
			sevenNeighbors: []string{"11011111", "11110111"},
			twoRuns: []string{
				"00101000", "00101100", "01101000", "01101100",
				"10100000", "10100001", "10110000", "10110001",
			},
		},
		{
			sub:            thinning.Second,
			sevenNeighbors: []string{"01111111", "11111101"},
			twoRuns: []string{
				"00001010", "00001011", "00011010", "00011011",
				"10000010", "10000110", "11000010", "11000110",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.sub.String(), func(t *testing.T) {
			var sevenNeighbors, twoRuns []string
			for _, r := range allRings() {
				std := thinning.StandardRule(tc.sub, r)
				ext := thinning.ExtendedRule(tc.sub, r)
				crossing, count := thinning.Classify(r)

				if crossing == 1 && count <= 6 {
					assert.Equal(t, std, ext, "ring %s", ringString(r))
				}
				if std && !ext {
					t.Errorf("ring %s deleted by standard rule only", ringString(r))
				}
				if ext && !std {
					switch crossing {
					case 1:
						assert.Equal(t, 7, count, "ring %s", ringString(r))
						sevenNeighbors = append(sevenNeighbors, ringString(r))
					case 2:
						twoRuns = append(twoRuns, ringString(r))
					default:
						t.Errorf("ring %s deleted with crossing number %d", ringString(r), crossing)
					}
				}
			}
			sort.Strings(sevenNeighbors)
			sort.Strings(twoRuns)
			assert.Equal(t, tc.sevenNeighbors, sevenNeighbors)
			assert.Equal(t, tc.twoRuns, twoRuns)
		})
	}
}

func TestSubIterationString(t *testing.T) {
	assert.Equal(t, "first", thinning.First.String())
	assert.Equal(t, "second", thinning.Second.String())
	assert.Equal(t, "SubIteration(7)", thinning.SubIteration(7).String())
}
