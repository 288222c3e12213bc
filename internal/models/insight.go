// internal/models/insight.go
package models

// ChartPoint is a single labeled value in an insight chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// AIInsight is the structured result of one insight query. ChartData and
// ChartType are nil when the model decided no chart is relevant. Never
// persisted.
type AIInsight struct {
	Insight   string       `json:"insight"`
	ChartData []ChartPoint `json:"chart_data,omitempty"`
	ChartType *ChartType   `json:"chart_type,omitempty"`
}
