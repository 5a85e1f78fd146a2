package models

import "encoding/json"

// Record is one row of the canonical dataset.
type Record struct {
	Location string   `json:"location"`
	Year     int      `json:"year"`
	Price    float64  `json:"price"`
	Demand   *float64 `json:"demand"`
	Supply   *float64 `json:"supply"`
}

// Dataset is the ordered, read-only table every query runs against.
type Dataset []Record

// Intent 質問の意図
type Intent int

const (
	IntentAverage Intent = iota
	IntentTrend
	IntentCompare
)

// String returns the wire name of the intent.
func (i Intent) String() string {
	switch i {
	case IntentAverage:
		return "average"
	case IntentTrend:
		return "trend"
	case IntentCompare:
		return "compare"
	}
	return "unknown"
}

// MarshalText encodes the intent by name in JSON.
func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// ParsedQuery は1リクエスト分の解析結果です。
type ParsedQuery struct {
	Intent    Intent   `json:"intent"`
	Locations []string `json:"locations"`
	Years     []int    `json:"years"` // nil = 年での絞り込みなし
}

// ChartDataset is one series in Chart.js shape.
type ChartDataset struct {
	Label           string      `json:"label"`
	Data            []float64   `json:"data"`
	BorderColor     interface{} `json:"borderColor,omitempty"`
	BackgroundColor interface{} `json:"backgroundColor,omitempty"`
	BorderWidth     int         `json:"borderWidth,omitempty"`
}

// Chart types
const (
	ChartTypeLine         = "line"
	ChartTypeBar          = "bar"
	ChartTypeInsufficient = "insufficient"
)

// ChartSeries is the chart payload. The zero value encodes as {}.
type ChartSeries struct {
	Type     string         `json:"type,omitempty"`
	Labels   []interface{}  `json:"labels,omitempty"`
	Datasets []ChartDataset `json:"datasets,omitempty"`
	Message  string         `json:"message,omitempty"`
}

// MarshalJSON always writes labels and datasets as arrays once the chart has a
// type, so an insufficient chart encodes as {"type":"insufficient","labels":[],...}.
func (c ChartSeries) MarshalJSON() ([]byte, error) {
	if c.Type == "" && len(c.Labels) == 0 && len(c.Datasets) == 0 && c.Message == "" {
		return []byte("{}"), nil
	}
	out := struct {
		Type     string         `json:"type"`
		Labels   []interface{}  `json:"labels"`
		Datasets []ChartDataset `json:"datasets"`
		Message  string         `json:"message,omitempty"`
	}{c.Type, c.Labels, c.Datasets, c.Message}
	if out.Labels == nil {
		out.Labels = []interface{}{}
	}
	if out.Datasets == nil {
		out.Datasets = []ChartDataset{}
	}
	return json.Marshal(out)
}

// IsEmpty reports whether the chart carries nothing to draw.
func (c ChartSeries) IsEmpty() bool {
	return len(c.Datasets) == 0
}

// QueryRequest represents an incoming query request
type QueryRequest struct {
	Query string `json:"query"`
}

// QueryResult represents the response from the query API
type QueryResult struct {
	Summary   string      `json:"summary"`
	ChartData ChartSeries `json:"chart_data"`
	TableData []Record    `json:"table_data"`
}

// DatasetInfo は /locations のレスポンスです。
type DatasetInfo struct {
	Locations []string `json:"locations"`
	Years     []int    `json:"years"`
	Rows      int      `json:"rows"`
}
