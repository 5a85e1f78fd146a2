package services

import (
	"encoding/json"
	"testing"

	"realestate-chat-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntitiesWholeWordLocations(t *testing.T) {
	known := []string{"pune", "mumbai", "wakad"}

	locations, years := ExtractEntities("Compare Pune vs Mumbai", known)
	assert.Equal(t, []string{"pune", "mumbai"}, locations)
	assert.Nil(t, years, "no year in text means no year filter")
}

func TestExtractEntitiesIgnoresSubstringMatches(t *testing.T) {
	known := []string{"pune"}

	locations, _ := ExtractEntities("ask a punekar about prices", known)
	assert.Empty(t, locations)
	assert.NotNil(t, locations)

	locations, _ = ExtractEntities("prices in pune, please", known)
	assert.Equal(t, []string{"pune"}, locations)
}

func TestExtractEntitiesUnicodeWordBoundaries(t *testing.T) {
	known := []string{"pune", "mumbai"}

	testCases := []struct {
		text     string
		expected []string
	}{
		{"average price in puneé", []string{}},
		{"average price in pune_x", []string{}},
		{"average price in pune2", []string{}},
		{"prices in épune", []string{}},
		{"prices in pune mumbai", []string{"pune", "mumbai"}},
		{"pune", []string{"pune"}},
		{"pune。mumbai", []string{"pune", "mumbai"}},
	}

	for _, tc := range testCases {
		locations, _ := ExtractEntities(tc.text, known)
		assert.Equal(t, tc.expected, locations, "text=%q", tc.text)
	}
}

func TestExtractEntitiesFallsBackToShorterName(t *testing.T) {
	known := []string{"pune", "pune city"}

	locations, _ := ExtractEntities("trend in pune cityé", known)
	assert.Equal(t, []string{"pune"}, locations)
}

func TestLocationIndexNormalizesNames(t *testing.T) {
	ix := NewLocationIndex([]string{" Wakad", "aundh", "wakad", ""})

	assert.Equal(t, []string{"aundh", "wakad"}, ix.Known())
	parsed := ix.Parse("compare wakad vs aundh")
	assert.Equal(t, models.IntentCompare, parsed.Intent)
	assert.Equal(t, []string{"wakad", "aundh"}, parsed.Locations)
}

func TestExtractEntitiesPrefersLongerNames(t *testing.T) {
	known := []string{"mumbai", "navi mumbai"}

	locations, _ := ExtractEntities("trend in navi mumbai", known)
	assert.Equal(t, []string{"navi mumbai"}, locations)
}

func TestExtractEntitiesQuotesRegexCharacters(t *testing.T) {
	known := []string{"baner (east)"}

	locations, _ := ExtractEntities("average in baner (east)", known)
	assert.Equal(t, []string{"baner (east)"}, locations)
}

func TestExtractEntitiesYears(t *testing.T) {
	testCases := []struct {
		text     string
		expected []int
	}{
		{"average in 2021", []int{2021}},
		{"from 2019 to 2023 and again 2019", []int{2019, 2023}},
		{"back in 1999", nil},
		{"code 120215", nil},
		{"no year here", nil},
	}

	for _, tc := range testCases {
		_, years := ExtractEntities(tc.text, nil)
		assert.Equal(t, tc.expected, years, "text=%q", tc.text)
	}
}

func TestExtractEntitiesDeduplicatesLocations(t *testing.T) {
	locations, _ := ExtractEntities("pune vs pune", []string{"pune"})
	assert.Equal(t, []string{"pune"}, locations)
}

func TestClassifyIntent(t *testing.T) {
	testCases := []struct {
		text     string
		expected models.Intent
	}{
		{"compare wakad and aundh", models.IntentCompare},
		{"pune vs mumbai", models.IntentCompare},
		{"pune versus mumbai", models.IntentCompare},
		{"trend vs last year", models.IntentCompare},
		{"price trend in wakad", models.IntentTrend},
		{"how did prices move over time", models.IntentTrend},
		{"average price in pune", models.IntentAverage},
		{"pune", models.IntentAverage},
		{"PUNE VS MUMBAI", models.IntentCompare},
		{"punevsmumbai", models.IntentAverage},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ClassifyIntent(tc.text), "text=%q", tc.text)
	}
}

func TestParseQuery(t *testing.T) {
	parsed := ParseQuery("show the trend in wakad for 2021 and 2022", []string{"wakad", "aundh"})

	assert.Equal(t, models.IntentTrend, parsed.Intent)
	assert.Equal(t, []string{"wakad"}, parsed.Locations)
	assert.Equal(t, []int{2021, 2022}, parsed.Years)
}

func TestKnownLocations(t *testing.T) {
	ds := models.Dataset{
		{Location: "Wakad", Year: 2020, Price: 1},
		{Location: "aundh", Year: 2020, Price: 1},
		{Location: "wakad ", Year: 2021, Price: 1},
	}
	assert.Equal(t, []string{"aundh", "wakad"}, KnownLocations(ds))
}

func TestIntentEncodesByName(t *testing.T) {
	body, err := json.Marshal(models.ParsedQuery{Intent: models.IntentCompare, Locations: []string{"pune", "mumbai"}})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"intent":"compare","locations":["pune","mumbai"],"years":null}`, string(body))
}
