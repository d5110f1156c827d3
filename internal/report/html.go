package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wesleyorama2/bigo/internal/algo"
	"github.com/wesleyorama2/bigo/internal/bench"
)

// arrayLabels are the Part C series, in row order.
var arrayLabels = []string{
	algo.LabelExistsLinear,
	algo.LabelFirstAboveLinear,
	algo.LabelMaxLinear,
	algo.LabelCountIncreasingPairs,
}

// WriteHTML saves r as a standalone chart page.
func WriteHTML(r *Report, path string) error {
	var buf bytes.Buffer
	if err := RenderHTML(r, &buf); err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	return nil
}

// RenderHTML writes the chart page for r to w: one comparisons-vs-n line
// chart per input pattern, and a bar chart of the Part A and B counters.
func RenderHTML(r *Report, w io.Writer) error {
	if r == nil {
		return fmt.Errorf("report cannot be nil")
	}

	page := components.NewPage()
	page.PageTitle = r.Name

	page.AddCharts(recursionChart(r))
	for _, group := range groups(r.Results) {
		page.AddCharts(patternChart(r, group))
	}

	return page.Render(w)
}

// recursionChart compares calls and comparisons of the Part A and B rows.
func recursionChart(r *Report) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Factorial and Fibonacci",
			Subtitle: "calls and comparisons per row",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	var labels []string
	var calls, comps []opts.BarData
	for _, res := range r.Results {
		if res.Part != "A" && res.Part != "B" {
			continue
		}
		labels = append(labels, fmt.Sprintf("%s(%d)", res.Label, res.N))
		calls = append(calls, opts.BarData{Value: res.Stats.Calls})
		comps = append(comps, opts.BarData{Value: res.Stats.Comparisons})
	}

	bar.SetXAxis(labels).
		AddSeries("calls", calls).
		AddSeries("comparisons", comps)
	return bar
}

// patternChart plots comparisons against n for every array utility run
// with one input pattern. Skipped rows leave a gap.
func patternChart(r *Report, group string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Array utilities (%s cases)", group),
			Subtitle: "comparisons vs n",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "comparisons"}),
	)

	sizes := sizesFor(r.Results, group)
	xAxis := make([]string, len(sizes))
	for i, n := range sizes {
		xAxis[i] = strconv.Itoa(n)
	}
	line.SetXAxis(xAxis)

	for _, label := range arrayLabels {
		points := make([]opts.LineData, len(sizes))
		for i, n := range sizes {
			points[i] = opts.LineData{Value: "-"}
			if res, ok := find(r.Results, group, label, n); ok && !res.Skipped {
				points[i] = opts.LineData{Value: res.Stats.Comparisons}
			}
		}
		line.AddSeries(label, points)
	}
	return line
}

// groups returns the Part C patterns in first-seen order.
func groups(results []bench.Result) []string {
	var out []string
	seen := make(map[string]bool)
	for _, res := range results {
		if res.Part != "C" || seen[res.Group] {
			continue
		}
		seen[res.Group] = true
		out = append(out, res.Group)
	}
	return out
}

// sizesFor returns the sizes run for group in first-seen order.
func sizesFor(results []bench.Result, group string) []int {
	var out []int
	seen := make(map[int]bool)
	for _, res := range results {
		if res.Part != "C" || res.Group != group || seen[res.N] {
			continue
		}
		seen[res.N] = true
		out = append(out, res.N)
	}
	return out
}

func find(results []bench.Result, group, label string, n int) (bench.Result, bool) {
	for _, res := range results {
		if res.Part == "C" && res.Group == group && res.Label == label && res.N == n {
			return res, true
		}
	}
	return bench.Result{}, false
}
