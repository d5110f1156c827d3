// Package report saves a finished suite run as JSON or as an HTML chart
// page, and queries saved JSON reports.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wesleyorama2/bigo/internal/algo"
	"github.com/wesleyorama2/bigo/internal/bench"
	"github.com/wesleyorama2/bigo/internal/config"
)

// Report is the saved form of one run.
type Report struct {
	Name      string        `json:"name"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Duration  time.Duration `json:"duration"`

	// Config is the effective configuration of the run
	Config *config.SuiteConfig `json:"config"`

	// Algorithms describes every label that appears in Results
	Algorithms []algo.Info `json:"algorithms"`

	// Results holds every row, run or skipped, in console order
	Results []bench.Result `json:"results"`
}

// Build assembles a Report for a run that started at started and has just
// finished.
func Build(name string, cfg *config.SuiteConfig, started time.Time, results []bench.Result) *Report {
	end := time.Now()
	if started.IsZero() {
		started = end
	}

	rows := make([]bench.Result, len(results))
	copy(rows, results)

	return &Report{
		Name:       name,
		StartTime:  started,
		EndTime:    end,
		Duration:   end.Sub(started),
		Config:     cfg,
		Algorithms: algo.Catalog(),
		Results:    rows,
	}
}

// Format is a report file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// FormatFor picks the report format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unsupported report extension %q (want .json or .html)", filepath.Ext(path))
	}
}

// Write saves r to path in the format implied by its extension.
func Write(r *Report, path string) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	switch format {
	case FormatHTML:
		return WriteHTML(r, path)
	default:
		return WriteJSON(r, path)
	}
}

// JSON renders r as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report cannot be nil")
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

// WriteJSON saves r as JSON.
func WriteJSON(r *Report, path string) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}
