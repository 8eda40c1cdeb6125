package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/annolab/agreement/metrics"
	"github.com/annolab/agreement/report"
)

// renderChart writes a bar chart of the report's coefficients to an
// HTML file. Undefined metrics are left out rather than plotted as
// zero.
func renderChart(rep *report.ComprehensiveReport, path string) error {
	var x []string
	var y []opts.BarData

	add := func(label string, r metrics.Result) {
		if !r.Defined {
			return
		}
		x = append(x, label)
		y = append(y, opts.BarData{Value: r.Value})
	}
	add("Krippendorff α", rep.MultiRater.KrippendorffAlpha)
	add("ICC(2,1)", rep.MultiRater.ICC)
	add("Fleiss κ", rep.MultiRater.FleissKappa)
	add("mean pairwise κw", rep.MeanPairwiseKappa)
	for _, pc := range rep.Pairwise {
		add(fmt.Sprintf("κw %s/%s", pc.SourceA, pc.SourceB), pc.WeightedKappa)
	}
	if len(y) == 0 {
		return fmt.Errorf("no defined metrics to chart")
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "720px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Inter-rater agreement",
			Subtitle: fmt.Sprintf("run=%s units=%d sources=%d", rep.RunID, rep.MultiRater.Units, len(rep.Sources)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(x).
		AddSeries("coefficient", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)

	page := components.NewPage()
	page.AddCharts(bar)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
