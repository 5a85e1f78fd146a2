package services

import (
	"realestate-chat-api/pkg/models"
)

// HandleQuery answers one natural-language question over ds.
// It has no side effects: the same ds and text always give the same result.
// Empty query text must be rejected by the caller.
func HandleQuery(ds models.Dataset, text string, opts QueryOptions) models.QueryResult {
	parsed := ParseQuery(text, KnownLocations(ds))
	return AnswerParsedQuery(ds, parsed, opts)
}

// AnswerParsedQuery filters ds by parsed and builds the summary, chart and table.
func AnswerParsedQuery(ds models.Dataset, parsed models.ParsedQuery, opts QueryOptions) models.QueryResult {
	view := FilterRecords(ds, parsed.Locations, parsed.Years)
	if len(view) == 0 {
		return NoMatchResult()
	}

	return models.QueryResult{
		Summary:   GenerateSummary(view, parsed, opts),
		ChartData: GenerateChartData(view, parsed),
		TableData: view,
	}
}

// NoMatchResult is returned when the filters leave no rows.
func NoMatchResult() models.QueryResult {
	return models.QueryResult{
		Summary:   NoMatchSummary,
		ChartData: models.ChartSeries{},
		TableData: []models.Record{},
	}
}
