package costs_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/keyrelay/costs"
)

// TestTableProperties checks the structural guarantees of the DP over
// arbitrary pairs and depths:
//
//  1. deeper indirection never makes a transition cheaper (per-pair
//     monotone non-decreasing cost across levels);
//  2. every entry stays strictly positive (a transition always involves
//     at least the confirming press).
func TestTableProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	// Levels 0..10 built once; gopter only samples pairs and depths.
	const maxLevel = 10
	tables := make([]*costs.Table, 0, maxLevel+1)
	table := costs.Base()
	tables = append(tables, table)
	for level := 1; level <= maxLevel; level++ {
		next, err := table.Next()
		if err != nil {
			t.Fatalf("building level %d: %v", level, err)
		}
		tables = append(tables, next)
		table = next
	}

	properties.Property("cost is monotone in depth and positive", prop.ForAll(
		func(fi, ti, level int) bool {
			from, to := dirButtons[fi], dirButtons[ti]

			shallow, err := tables[level].Cost(from, to)
			if err != nil || shallow < 1 {
				return false
			}
			deep, err := tables[level+1].Cost(from, to)
			if err != nil {
				return false
			}

			return deep >= shallow
		},
		gen.IntRange(0, len(dirButtons)-1),
		gen.IntRange(0, len(dirButtons)-1),
		gen.IntRange(0, maxLevel-1),
	))

	properties.TestingRun(t)
}
