package domain

// ChartPoint is one sample of a provider chart series.
type ChartPoint struct {
	X int64   `json:"x"` // unix timestamp
	Y float64 `json:"y"`
}

// ChartSeries is the decoded body of /charts/<name>?format=json.
type ChartSeries struct {
	Name   string       `json:"name"`
	Unit   string       `json:"unit"`
	Period string       `json:"period"`
	Values []ChartPoint `json:"values"`
}
