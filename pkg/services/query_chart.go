package services

import (
	"fmt"
	"sort"
	"strings"

	"realestate-chat-api/pkg/models"
)

// Chart colors (Chart.js rgba strings).
const (
	trendBorderColor     = "rgba(54,162,235,1)"
	trendBackgroundColor = "rgba(54,162,235,0.4)"
	averageBorderColor   = "rgba(153,102,255,1)"
	averageFillColor     = "rgba(153,102,255,0.5)"
)

var (
	compareBackgroundColors = []string{"rgba(255,99,132,0.5)", "rgba(54,162,235,0.5)"}
	compareBorderColors     = []string{"rgba(255,99,132,1)", "rgba(54,162,235,1)"}
)

// GenerateChartData builds the chart for a non-empty view.
// Trend and compare queries with the wrong number of locations get an
// insufficient chart carrying the same message as the summary.
func GenerateChartData(view models.Dataset, q models.ParsedQuery) models.ChartSeries {
	switch q.Intent {
	case models.IntentTrend:
		if len(q.Locations) != 1 {
			return insufficientChart(TrendLocationsMessage)
		}
		return trendChart(view, q.Locations[0])
	case models.IntentCompare:
		if len(q.Locations) != 2 {
			return insufficientChart(CompareLocationsMessage)
		}
		return compareChart(view, q.Locations[0], q.Locations[1])
	case models.IntentAverage:
		return averageChart(view)
	}
	return insufficientChart(UnknownIntentMessage)
}

func insufficientChart(message string) models.ChartSeries {
	return models.ChartSeries{
		Type:     models.ChartTypeInsufficient,
		Labels:   []interface{}{},
		Datasets: []models.ChartDataset{},
		Message:  message,
	}
}

func trendChart(view models.Dataset, loc string) models.ChartSeries {
	rows := sortedByYear(rowsForLocation(view, loc))
	labels := make([]interface{}, 0, len(rows))
	data := make([]float64, 0, len(rows))
	for _, r := range rows {
		labels = append(labels, r.Year)
		data = append(data, r.Price)
	}

	return models.ChartSeries{
		Type:   models.ChartTypeLine,
		Labels: labels,
		Datasets: []models.ChartDataset{{
			Label:           fmt.Sprintf("Price trend in %s", loc),
			Data:            data,
			BorderColor:     trendBorderColor,
			BackgroundColor: trendBackgroundColor,
		}},
	}
}

func compareChart(view models.Dataset, a, b string) models.ChartSeries {
	avgA, avgB, missing := compareMeans(view, a, b)
	if missing != "" {
		return insufficientChart(missingCompareMessage(missing))
	}

	return models.ChartSeries{
		Type:   models.ChartTypeBar,
		Labels: []interface{}{a, b},
		Datasets: []models.ChartDataset{{
			Label:           "Average Price Comparison",
			Data:            []float64{avgA, avgB},
			BackgroundColor: compareBackgroundColors,
			BorderColor:     compareBorderColors,
			BorderWidth:     1,
		}},
	}
}

// averageChart groups rows by location (case-insensitive) in ascending key order.
// A group is labelled with the first spelling seen in the view.
func averageChart(view models.Dataset) models.ChartSeries {
	type group struct {
		label string
		sum   float64
		count int
	}
	groups := make(map[string]*group)
	keys := make([]string, 0)
	for _, r := range view {
		key := strings.ToLower(strings.TrimSpace(r.Location))
		g, ok := groups[key]
		if !ok {
			g = &group{label: r.Location}
			groups[key] = g
			keys = append(keys, key)
		}
		g.sum += r.Price
		g.count++
	}
	sort.Strings(keys)

	labels := make([]interface{}, 0, len(keys))
	data := make([]float64, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		labels = append(labels, g.label)
		data = append(data, g.sum/float64(g.count))
	}

	return models.ChartSeries{
		Type:   models.ChartTypeBar,
		Labels: labels,
		Datasets: []models.ChartDataset{{
			Label:           "Average Price",
			Data:            data,
			BackgroundColor: averageFillColor,
			BorderColor:     averageBorderColor,
			BorderWidth:     1,
		}},
	}
}
