package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"realestate-chat-api/pkg/models"

	"github.com/dustin/go-humanize"
)

// Fixed answers for queries that cannot be computed.
const (
	NoMatchSummary          = "No matching data found."
	TrendLocationsMessage   = "Trend requires exactly one location."
	CompareLocationsMessage = "Comparison requires exactly two locations."
	ZeroStartPriceMessage   = "Cannot compute trend: starting price is zero"
	UnknownIntentMessage    = "Unable to generate summary."
)

// QueryOptions tunes presentation only; it never changes which rows are used.
type QueryOptions struct {
	CurrencySymbol string
}

// DefaultQueryOptions matches Sample_data.xlsx, which is priced in rupees.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{CurrencySymbol: "₹"}
}

// FormatCurrency formats v rounded to two decimals with thousands separators.
func FormatCurrency(symbol string, v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return symbol + sign + s
	}
	return symbol + sign + humanize.Comma(n) + "." + frac
}

// GenerateSummary produces the one-sentence answer for a non-empty view.
func GenerateSummary(view models.Dataset, q models.ParsedQuery, opts QueryOptions) string {
	switch q.Intent {
	case models.IntentAverage:
		return averageSummary(view, q.Locations, opts)
	case models.IntentTrend:
		return trendSummary(view, q.Locations)
	case models.IntentCompare:
		return compareSummary(view, q.Locations, opts)
	}
	return UnknownIntentMessage
}

func averageSummary(view models.Dataset, locations []string, opts QueryOptions) string {
	label := "all locations"
	if len(locations) > 0 {
		label = strings.Join(locations, ", ")
	}
	return fmt.Sprintf("Average price in %s is %s", label, FormatCurrency(opts.CurrencySymbol, meanPrice(view)))
}

func trendSummary(view models.Dataset, locations []string) string {
	if len(locations) != 1 {
		return TrendLocationsMessage
	}
	loc := locations[0]
	rows := sortedByYear(rowsForLocation(view, loc))
	if len(rows) < 2 {
		return fmt.Sprintf("Not enough data to compute trend for %s", loc)
	}

	change, ok := percentChange(rows[0].Price, rows[len(rows)-1].Price)
	if !ok {
		return ZeroStartPriceMessage
	}
	return fmt.Sprintf("Prices in %s changed by %+.2f%% over time.", loc, change)
}

func compareSummary(view models.Dataset, locations []string, opts QueryOptions) string {
	if len(locations) != 2 {
		return CompareLocationsMessage
	}
	a, b := locations[0], locations[1]
	avgA, avgB, missing := compareMeans(view, a, b)
	if missing != "" {
		return missingCompareMessage(missing)
	}

	if avgA == avgB {
		return fmt.Sprintf("%s and %s have the same average price of %s", a, b, FormatCurrency(opts.CurrencySymbol, avgA))
	}
	higher, diff := b, avgB-avgA
	if avgA > avgB {
		higher, diff = a, avgA-avgB
	}
	return fmt.Sprintf("%s has a higher average price by %s", higher, FormatCurrency(opts.CurrencySymbol, diff))
}

// sortedByYear returns a copy of rows ordered by ascending year.
func sortedByYear(rows models.Dataset) models.Dataset {
	out := make(models.Dataset, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// percentChange is false when first is zero.
func percentChange(first, last float64) (float64, bool) {
	if first == 0 {
		return 0, false
	}
	return (last - first) / first * 100, true
}

// compareMeans returns each location's mean price, or the first location
// that has no rows in view.
func compareMeans(view models.Dataset, a, b string) (float64, float64, string) {
	rowsA := rowsForLocation(view, a)
	if len(rowsA) == 0 {
		return 0, 0, a
	}
	rowsB := rowsForLocation(view, b)
	if len(rowsB) == 0 {
		return 0, 0, b
	}
	return meanPrice(rowsA), meanPrice(rowsB), ""
}

func missingCompareMessage(location string) string {
	return fmt.Sprintf("No price data for %s in the selected range.", location)
}
