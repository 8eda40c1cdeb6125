// Package main provides a reliability-report tool for coded datasets.
// It reads an already pivoted unit × source CSV of ordinal scores,
// runs the full agreement battery across all sources, and writes a
// JSON report plus an optional HTML chart.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/annolab/agreement/metrics"
	"github.com/annolab/agreement/rating"
	"github.com/annolab/agreement/report"
)

// Config holds the tool configuration.
type Config struct {
	CSVFile    string
	Missing    string
	Resamples  int
	Seed       int64
	OutputJSON string
	ChartHTML  string
}

func parseFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.CSVFile, "csv", "", "input CSV: header row of source names, one row per unit")
	flag.StringVar(&cfg.Missing, "missing", "NA", "cell value treated as a missing rating (empty cells always are)")
	flag.IntVar(&cfg.Resamples, "bootstrap", 0, "bootstrap resamples for the alpha CI (0 disables)")
	flag.Int64Var(&cfg.Seed, "seed", 1, "bootstrap RNG seed")
	flag.StringVar(&cfg.OutputJSON, "out", "", "write the JSON report here (default stdout)")
	flag.StringVar(&cfg.ChartHTML, "chart", "", "optionally render an HTML bar chart of the report here")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()
	if cfg.CSVFile == "" {
		log.Fatal("CSV file is required (-csv)")
	}

	sources, err := loadSources(cfg.CSVFile, cfg.Missing)
	if err != nil {
		log.Fatalf("Failed to load ratings: %v", err)
	}

	var opts []report.Option
	if cfg.Resamples > 0 {
		opts = append(opts, report.WithBootstrap(metrics.BootstrapConfig{
			Resamples: cfg.Resamples,
			Seed:      cfg.Seed,
		}))
	}

	rep, err := report.ComputeComprehensive(sources, opts...)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if err := writeReport(rep, cfg.OutputJSON); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	if cfg.ChartHTML != "" {
		if err := renderChart(rep, cfg.ChartHTML); err != nil {
			log.Fatalf("Failed to render chart: %v", err)
		}
		log.Printf("Chart written to %s", cfg.ChartHTML)
	}
}

// loadSources reads the CSV into named rater columns. The header row
// names the sources; each later row is one unit. Empty cells and cells
// equal to the missing marker become missing ratings.
func loadSources(path, missing string) ([]report.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: need a header row and at least one unit row", path)
	}

	header := rows[0]
	sources := make([]report.Source, len(header))
	for i, name := range header {
		sources[i] = report.Source{Name: strings.TrimSpace(name)}
	}
	for r, row := range rows[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d", path, r+2, len(row), len(header))
		}
		for c, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" || cell == missing {
				sources[c].Ratings = append(sources[c].Ratings, rating.None())
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d, column %q: %w", path, r+2, sources[c].Name, err)
			}
			sources[c].Ratings = append(sources[c].Ratings, rating.Some(v))
		}
	}
	return sources, nil
}

func writeReport(rep *report.ComprehensiveReport, path string) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
