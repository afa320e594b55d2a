package thinning_test

import (
	"fmt"

	"github.com/ironsheep/imgthin/internal/thinning"
)

// ExampleThin thins a 3-pixel-thick horizontal bar down to a line.
func ExampleThin() {
	bar := [][]bool{
		{false, false, false, false, false, false, false},
		{false, true, true, true, true, true, false},
		{false, true, true, true, true, true, false},
		{false, true, true, true, true, true, false},
		{false, false, false, false, false, false, false},
	}

	skeleton, err := thinning.Thin(bar)
	if err != nil {
		fmt.Println(err)
		return
	}
	img, _ := thinning.New(skeleton)
	fmt.Print(img)

	// Output:
	// 0000000
	// 0000000
	// 0011000
	// 0000000
	// 0000000
}

// ExampleClassify shows the crossing number and neighbor count of a pixel
// with two separate ink runs around it.
func ExampleClassify() {
	r := thinning.RingOf(true, true, false, false, true, false, true, true)
	crossing, count := thinning.Classify(r)
	fmt.Println(crossing, count)

	// Output:
	// 2 5
}

// ExampleNewEngine runs the table-driven engine and reports each pass.
func ExampleNewEngine() {
	engine, err := thinning.NewEngine(thinning.VariantTable, func(info thinning.PassInfo) {
		fmt.Printf("pass %d removed %d\n", info.Pass, info.Removed)
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	img, _ := thinning.New([][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	})
	_, stats := engine.Thin(img)
	fmt.Printf("%d passes, %d remaining\n", stats.Passes, stats.Remaining)

	// Output:
	// pass 1 removed 6
	// pass 2 removed 3
	// pass 3 removed 0
	// 3 passes, 0 remaining
}
