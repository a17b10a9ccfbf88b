package service

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"daily_companion/internal/models"
	"daily_companion/internal/mood"
	"daily_companion/internal/repository"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	// reportDays caps the chart at the most recent days that have entries.
	reportDays = 5

	// yHeadroom keeps room above the tallest bar for its symbol label.
	yHeadroom = 30

	barWidth    = vg.Points(30)
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

var barColor = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}

type MoodReportService struct {
	entries repository.JournalEntries
}

func NewMoodReportService(entries repository.JournalEntries) *MoodReportService {
	return &MoodReportService{entries: entries}
}

// DailyAverages returns the caller's per-day mood averages for the most
// recent days with entries, oldest first for display, each average
// classified into its symbol.
func (s *MoodReportService) DailyAverages(ctx context.Context, userID int) ([]models.DailyMood, error) {
	days, err := s.entries.DailyAverages(ctx, userID, reportDays)
	if err != nil {
		return nil, err
	}

	// repo returns newest-first; the chart reads left to right in time
	for i, j := 0, len(days)-1; i < j; i, j = i+1, j-1 {
		days[i], days[j] = days[j], days[i]
	}

	for i := range days {
		symbol, err := mood.ClassifyAverage(days[i].Average)
		if err != nil {
			return nil, fmt.Errorf("classify day %s: %w", days[i].Date, err)
		}
		days[i].Symbol = symbol
	}
	return days, nil
}

// RenderChart draws the daily averages as a labeled bar chart and returns
// PNG bytes. Nothing is written to disk; each request gets its own buffer.
func (s *MoodReportService) RenderChart(days []models.DailyMood) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Average Mood Values for Each Day"
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Average Mood Values Out of 120 of Each Day"

	values := make(plotter.Values, len(days))
	dates := make([]string, len(days))
	maxAvg := 0.0
	for i, d := range days {
		values[i] = d.Average
		dates[i] = d.Date
		if d.Average > maxAvg {
			maxAvg = d.Average
		}
	}

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("build bar chart: %w", err)
	}
	bars.LineStyle.Width = 0
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(dates...)

	p.Y.Min = 0
	p.Y.Max = maxAvg + yHeadroom

	labels, err := symbolLabels(days)
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encode chart png: %w", err)
	}
	return buf.Bytes(), nil
}

// symbolLabels places each day's mood symbol centered just above its bar.
func symbolLabels(days []models.DailyMood) (*plotter.Labels, error) {
	pts := make(plotter.XYs, len(days))
	texts := make([]string, len(days))
	for i, d := range days {
		pts[i] = plotter.XY{X: float64(i), Y: d.Average + 5}
		texts[i] = d.Symbol
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: texts})
	if err != nil {
		return nil, fmt.Errorf("build symbol labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(15)
	}
	return labels, nil
}
