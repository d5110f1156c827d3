package suite

import (
	"fmt"

	"github.com/xlab/treeprint"

	"github.com/wesleyorama2/bigo/internal/algo"
	"github.com/wesleyorama2/bigo/internal/config"
)

// Plan describes the sweep cfg would run, without running it.
//
//	Complexity classes
//	├── Part A: Factorial (n=20)
//	│   ├── fact_iter  time O(n), space O(1)
//	│   └── fact_rec  time O(n), space O(n)
//	...
func Plan(cfg *config.SuiteConfig) (treeprint.Tree, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	patterns, err := cfg.PatternList()
	if err != nil {
		return nil, err
	}

	tree := treeprint.NewWithRoot(cfg.Name)

	partA := tree.AddBranch(fmt.Sprintf("Part A: Factorial (n=%d)", cfg.Factorial.N))
	partA.AddNode(planNode(algo.LabelFactorialIterative))
	partA.AddNode(planNode(algo.LabelFactorialRecursive))

	partB := tree.AddBranch("Part B: Fibonacci")
	partB.AddNode(planNode(algo.LabelFibonacciRecursive) + fmt.Sprintf(" (n=%d)", cfg.Fibonacci.RecursiveN))
	partB.AddNode(planNode(algo.LabelFibonacciIterSmall) + fmt.Sprintf(" (n=%d)", cfg.Fibonacci.RecursiveN))
	partB.AddNode(planNode(algo.LabelFibonacciIterLarge) + fmt.Sprintf(" (n=%d)", cfg.Fibonacci.IterativeN))

	for _, pattern := range patterns {
		partC := tree.AddBranch(fmt.Sprintf("Part C: Array Utilities (%s cases)", pattern))
		for _, n := range cfg.Arrays.Sizes {
			size := partC.AddBranch(fmt.Sprintf("n=%d", n))
			size.AddNode(planNode(algo.LabelExistsLinear))
			size.AddNode(planNode(algo.LabelFirstAboveLinear))
			size.AddNode(planNode(algo.LabelMaxLinear))
			if n <= cfg.Arrays.PairSkipAbove {
				size.AddNode(planNode(algo.LabelCountIncreasingPairs))
			} else {
				size.AddNode(fmt.Sprintf("%s  skipped (%s)", algo.LabelCountIncreasingPairs, PairSkipReason))
			}
		}
	}

	return tree, nil
}

func planNode(label string) string {
	info, ok := algo.Lookup(label)
	if !ok {
		return label
	}
	return fmt.Sprintf("%s  time %s, space %s", label, info.Time, info.Space)
}
