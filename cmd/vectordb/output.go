package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"vectordb/internal/bench"
	"vectordb/internal/quickstart"

	"github.com/olekukonko/tablewriter"
)

func seconds(d time.Duration) string {
	return fmt.Sprintf("%0.6fs", d.Seconds())
}

type stageJSON struct {
	Name        string           `json:"name"`
	Nanoseconds int64            `json:"nanoseconds"`
	Seconds     float64          `json:"seconds"`
	Detail      string           `json:"detail"`
	Hits        []quickstart.Hit `json:"hits,omitempty"`
}

type quickstartJSON struct {
	Collection   string      `json:"collection"`
	Stages       []stageJSON `json:"stages"`
	TotalSeconds float64     `json:"total_seconds"`
}

func renderQuickstart(w io.Writer, format string, report quickstart.Report) error {
	if format == outputJSON {
		out := quickstartJSON{
			Collection:   report.Collection,
			Stages:       make([]stageJSON, 0, len(report.Stages)),
			TotalSeconds: report.Total().Seconds(),
		}
		for _, s := range report.Stages {
			out.Stages = append(out.Stages, stageJSON{
				Name:        s.Name,
				Nanoseconds: s.Duration.Nanoseconds(),
				Seconds:     s.Duration.Seconds(),
				Detail:      s.Detail,
				Hits:        s.Hits,
			})
		}
		return writeJSON(w, out)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Stage", "Elapsed", "Detail", "Hits")
	for _, s := range report.Stages {
		table.Append(s.Name, seconds(s.Duration), s.Detail, formatHits(s.Hits))
	}
	table.Append("total", seconds(report.Total()), "", "")
	return table.Render()
}

func formatHits(hits []quickstart.Hit) string {
	parts := make([]string, len(hits))
	for i, h := range hits {
		parts[i] = fmt.Sprintf("%s:%0.3f", h.ID, h.Score)
	}
	return strings.Join(parts, " ")
}

type summaryJSON struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Min   float64 `json:"min_seconds"`
	Mean  float64 `json:"mean_seconds"`
	P50   float64 `json:"p50_seconds"`
	P95   float64 `json:"p95_seconds"`
	Max   float64 `json:"max_seconds"`
	Total float64 `json:"total_seconds"`
}

type benchJSON struct {
	Collection     string        `json:"collection"`
	Points         int           `json:"points"`
	Summaries      []summaryJSON `json:"summaries"`
	ElapsedSeconds float64       `json:"elapsed_seconds"`
}

func renderBench(w io.Writer, format string, report bench.Report) error {
	if format == outputJSON {
		out := benchJSON{
			Collection:     report.Collection,
			Points:         report.Points,
			Summaries:      make([]summaryJSON, 0, len(report.Summaries)),
			ElapsedSeconds: report.Elapsed.Seconds(),
		}
		for _, s := range report.Summaries {
			out.Summaries = append(out.Summaries, summaryJSON{
				Stage: s.Stage,
				Count: s.Count,
				Min:   s.Min.Seconds(),
				Mean:  s.Mean.Seconds(),
				P50:   s.P50.Seconds(),
				P95:   s.P95.Seconds(),
				Max:   s.Max.Seconds(),
				Total: s.Total.Seconds(),
			})
		}
		return writeJSON(w, out)
	}

	table := tablewriter.NewWriter(w)
	table.Header("Stage", "Calls", "Min", "Mean", "P50", "P95", "Max", "Total")
	for _, s := range report.Summaries {
		table.Append(s.Stage, fmt.Sprintf("%d", s.Count), seconds(s.Min), seconds(s.Mean),
			seconds(s.P50), seconds(s.P95), seconds(s.Max), seconds(s.Total))
	}
	table.Append("elapsed", "", "", "", "", "", "", seconds(report.Elapsed))
	return table.Render()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
