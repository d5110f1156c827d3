package algo

// Labels printed for each benchmark row.
const (
	LabelFactorialIterative   = "fact_iter"
	LabelFactorialRecursive   = "fact_rec"
	LabelFibonacciRecursive   = "fib_rec_naive"
	LabelFibonacciIterSmall   = "fib_iter_small"
	LabelFibonacciIterLarge   = "fib_iter_large"
	LabelExistsLinear         = "exists_linear"
	LabelFirstAboveLinear     = "firstAbove_linear"
	LabelMaxLinear            = "max_linear"
	LabelCountIncreasingPairs = "pairs_n2_baseline"
)

// Info describes one catalogued algorithm.
type Info struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Time  string `json:"time"`
	Space string `json:"space"`
	Notes string `json:"notes,omitempty"`
}

var catalog = []Info{
	{Label: LabelFactorialIterative, Name: "FactorialIterative", Time: "O(n)", Space: "O(1)",
		Notes: "wraps around for n > 20"},
	{Label: LabelFactorialRecursive, Name: "FactorialRecursive", Time: "O(n)", Space: "O(n)",
		Notes: "linear recursion, one frame per level"},
	{Label: LabelFibonacciRecursive, Name: "FibonacciRecursive", Time: "O(phi^n)", Space: "O(n)",
		Notes: "exponential; keep n small"},
	{Label: LabelFibonacciIterSmall, Name: "FibonacciIterative", Time: "O(n)", Space: "O(1)",
		Notes: "same n as the recursive run"},
	{Label: LabelFibonacciIterLarge, Name: "FibonacciIterative", Time: "O(n)", Space: "O(1)",
		Notes: "wraps around for n > 93; timing only"},
	{Label: LabelExistsLinear, Name: "ExistsLinear", Time: "O(1) best, O(n) worst", Space: "O(1)",
		Notes: "early exit on first match"},
	{Label: LabelFirstAboveLinear, Name: "FirstAboveLinear", Time: "O(1) best, O(n) worst", Space: "O(1)",
		Notes: "early exit on first element above threshold"},
	{Label: LabelMaxLinear, Name: "MaxLinear", Time: "Θ(n)", Space: "O(1)",
		Notes: "no early exit possible"},
	{Label: LabelCountIncreasingPairs, Name: "CountIncreasingPairs", Time: "Θ(n^2)", Space: "O(1)",
		Notes: "nested loop baseline"},
}

// Catalog returns the metadata of every benchmarked algorithm in run order.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the metadata for a row label.
func Lookup(label string) (Info, bool) {
	for _, info := range catalog {
		if info.Label == label {
			return info, true
		}
	}
	return Info{}, false
}
