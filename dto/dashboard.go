package dto

// StatCardDTO is one headline figure on the dashboard.
type StatCardDTO struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
}

// GrowthPointDTO is one bar of the traffic growth chart.
type GrowthPointDTO struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// PostEarningsDTO is one row of the per-post revenue table.
type PostEarningsDTO struct {
	PostID       string  `json:"postId"`
	Title        string  `json:"title"`
	Views        int64   `json:"views"`
	TargetMarket string  `json:"targetMarket"`
	RPM          float64 `json:"rpm"`
	EarningsUSD  float64 `json:"earningsUsd"`
}

// DashboardDTO aggregates everything the monetization dashboard renders.
type DashboardDTO struct {
	Stats            []StatCardDTO     `json:"stats"`
	Growth           []GrowthPointDTO  `json:"growth"`
	Earnings         []PostEarningsDTO `json:"earnings"`
	TotalEarningsUSD float64           `json:"totalEarningsUsd"`
	MeasurementID    string            `json:"measurementId,omitempty"`
}
