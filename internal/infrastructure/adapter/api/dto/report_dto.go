package dto

// DashboardResponse aggregates the headline payroll figures
type DashboardResponse struct {
	TreasuryBalance   string `json:"treasuryBalance"`
	TotalPayout       string `json:"totalPayout"`
	TotalTaxCollected string `json:"totalTaxCollected"`
	ActiveStreams     int64  `json:"activeStreams"`
}

// StreamStateResponse reports the result of a stream transition
type StreamStateResponse struct {
	EmployeeID  uint64 `json:"employeeId"`
	IsStreaming bool   `json:"isStreaming"`
	Changed     bool   `json:"changed"`
}

// MonthlyRollupResponse is one month's net and tax totals
type MonthlyRollupResponse struct {
	Month string `json:"month"`
	Net   string `json:"net"`
	Tax   string `json:"tax"`
}

// TopEarnerResponse is one row of the top-earners ranking
type TopEarnerResponse struct {
	EmployeeID uint64 `json:"employeeId"`
	Name       string `json:"name"`
	TotalNet   string `json:"totalNet"`
}
