package services

import (
	"testing"

	"realestate-chat-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func parsed(intent models.Intent, locations ...string) models.ParsedQuery {
	return models.ParsedQuery{Intent: intent, Locations: locations}
}

func TestAverageSummary(t *testing.T) {
	view := models.Dataset{
		{Location: "pune", Year: 2020, Price: 100},
		{Location: "pune", Year: 2021, Price: 200},
	}

	summary := GenerateSummary(view, parsed(models.IntentAverage, "pune"), DefaultQueryOptions())
	assert.Equal(t, "Average price in pune is ₹150.00", summary)

	summary = GenerateSummary(view, parsed(models.IntentAverage), DefaultQueryOptions())
	assert.Equal(t, "Average price in all locations is ₹150.00", summary)
}

func TestAverageSummaryJoinsLocationsAndGroupsThousands(t *testing.T) {
	view := models.Dataset{
		{Location: "wakad", Year: 2020, Price: 10000},
		{Location: "aundh", Year: 2020, Price: 14691.5},
	}

	summary := GenerateSummary(view, parsed(models.IntentAverage, "wakad", "aundh"), QueryOptions{CurrencySymbol: "$"})
	assert.Equal(t, "Average price in wakad, aundh is $12,345.75", summary)
}

func TestTrendSummary(t *testing.T) {
	view := models.Dataset{
		{Location: "mumbai", Year: 2021, Price: 150},
		{Location: "mumbai", Year: 2019, Price: 100},
	}

	summary := GenerateSummary(view, parsed(models.IntentTrend, "mumbai"), DefaultQueryOptions())
	assert.Equal(t, "Prices in mumbai changed by +50.00% over time.", summary)
	assert.Contains(t, summary, "50.00%")
}

func TestTrendSummaryNegativeChange(t *testing.T) {
	view := models.Dataset{
		{Location: "wakad", Year: 2020, Price: 200},
		{Location: "wakad", Year: 2022, Price: 150},
	}

	summary := GenerateSummary(view, parsed(models.IntentTrend, "wakad"), DefaultQueryOptions())
	assert.Equal(t, "Prices in wakad changed by -25.00% over time.", summary)
}

func TestTrendSummaryNotEnoughData(t *testing.T) {
	view := models.Dataset{{Location: "mumbai", Year: 2019, Price: 100}}

	summary := GenerateSummary(view, parsed(models.IntentTrend, "mumbai"), DefaultQueryOptions())
	assert.Equal(t, "Not enough data to compute trend for mumbai", summary)
}

func TestTrendSummaryZeroStartingPrice(t *testing.T) {
	view := models.Dataset{
		{Location: "mumbai", Year: 2019, Price: 0},
		{Location: "mumbai", Year: 2021, Price: 150},
	}

	summary := GenerateSummary(view, parsed(models.IntentTrend, "mumbai"), DefaultQueryOptions())
	assert.Equal(t, ZeroStartPriceMessage, summary)
}

func TestTrendSummaryRequiresOneLocation(t *testing.T) {
	view := sampleDataset()

	assert.Equal(t, TrendLocationsMessage, GenerateSummary(view, parsed(models.IntentTrend), DefaultQueryOptions()))
	assert.Equal(t, TrendLocationsMessage, GenerateSummary(view, parsed(models.IntentTrend, "pune", "mumbai"), DefaultQueryOptions()))
}

func TestCompareSummary(t *testing.T) {
	view := models.Dataset{
		{Location: "pune", Year: 2020, Price: 100},
		{Location: "mumbai", Year: 2020, Price: 140},
		{Location: "mumbai", Year: 2021, Price: 160},
	}

	summary := GenerateSummary(view, parsed(models.IntentCompare, "pune", "mumbai"), DefaultQueryOptions())
	assert.Equal(t, "mumbai has a higher average price by ₹50.00", summary)

	summary = GenerateSummary(view, parsed(models.IntentCompare, "mumbai", "pune"), DefaultQueryOptions())
	assert.Equal(t, "mumbai has a higher average price by ₹50.00", summary)
}

// Extracted locations are lowercase while the sheet may not be. Comparison
// matches case-insensitively instead of silently averaging zero rows.
func TestCompareSummaryMatchesLocationCaseInsensitively(t *testing.T) {
	view := models.Dataset{
		{Location: "Pune", Year: 2020, Price: 100},
		{Location: "MUMBAI", Year: 2020, Price: 150},
	}

	summary := GenerateSummary(view, parsed(models.IntentCompare, "pune", "mumbai"), DefaultQueryOptions())
	assert.Equal(t, "mumbai has a higher average price by ₹50.00", summary)
}

func TestCompareSummaryEqualAverages(t *testing.T) {
	view := models.Dataset{
		{Location: "pune", Year: 2020, Price: 120},
		{Location: "mumbai", Year: 2020, Price: 120},
	}

	summary := GenerateSummary(view, parsed(models.IntentCompare, "pune", "mumbai"), DefaultQueryOptions())
	assert.Equal(t, "pune and mumbai have the same average price of ₹120.00", summary)
}

func TestCompareSummaryMissingLocationRows(t *testing.T) {
	view := models.Dataset{{Location: "pune", Year: 2020, Price: 120}}

	summary := GenerateSummary(view, parsed(models.IntentCompare, "pune", "mumbai"), DefaultQueryOptions())
	assert.Equal(t, "No price data for mumbai in the selected range.", summary)
}

func TestCompareSummaryRequiresTwoLocations(t *testing.T) {
	view := sampleDataset()

	assert.Equal(t, CompareLocationsMessage, GenerateSummary(view, parsed(models.IntentCompare, "pune"), DefaultQueryOptions()))
	assert.Equal(t, CompareLocationsMessage, GenerateSummary(view, parsed(models.IntentCompare, "pune", "mumbai", "wakad"), DefaultQueryOptions()))
}

func TestGenerateSummaryUnknownIntent(t *testing.T) {
	summary := GenerateSummary(sampleDataset(), parsed(models.Intent(42)), DefaultQueryOptions())
	assert.Equal(t, UnknownIntentMessage, summary)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹0.00", FormatCurrency("₹", 0))
	assert.Equal(t, "₹1,234,567.89", FormatCurrency("₹", 1234567.891))
	assert.Equal(t, "Rs 50.50", FormatCurrency("Rs ", 50.5))

	// 通常の小数点以下2桁への丸め（二重丸めしない）
	assert.Equal(t, "₹0.99", FormatCurrency("₹", 0.995))
	assert.Equal(t, "₹0.12", FormatCurrency("₹", 0.125))
	assert.Equal(t, "₹1,000.00", FormatCurrency("₹", 999.999))
	assert.Equal(t, "₹-1,234.50", FormatCurrency("₹", -1234.5))
}
