package response

import (
	"time"

	"fieldops/internal/domain/risk"
)

type BucketStatResponse struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type AgingBucketsResponse struct {
	Fresh    BucketStatResponse `json:"fresh"`
	Warning  BucketStatResponse `json:"warning"`
	Critical BucketStatResponse `json:"critical"`
}

type WeekStatResponse struct {
	Year   int     `json:"year"`
	Week   int     `json:"week"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type RiskSummaryResponse struct {
	TotalAtRisk float64                       `json:"total_at_risk"`
	Count       int                           `json:"count"`
	ByStatus    map[string]BucketStatResponse `json:"by_status"`
	Aging       AgingBucketsResponse          `json:"aging"`
	Trend       []WeekStatResponse            `json:"trend"`
	ComputedAt  time.Time                     `json:"computed_at"`
}

func FromRiskSummary(s risk.Summary) RiskSummaryResponse {
	resp := RiskSummaryResponse{
		TotalAtRisk: s.TotalAtRisk,
		Count:       s.Count,
		ByStatus:    make(map[string]BucketStatResponse, len(s.ByStatus)),
		Aging: AgingBucketsResponse{
			Fresh:    BucketStatResponse(s.Aging.Fresh),
			Warning:  BucketStatResponse(s.Aging.Warning),
			Critical: BucketStatResponse(s.Aging.Critical),
		},
		Trend:      make([]WeekStatResponse, 0, len(s.Trend)),
		ComputedAt: s.ComputedAt,
	}
	for status, stat := range s.ByStatus {
		resp.ByStatus[string(status)] = BucketStatResponse(stat)
	}
	for _, w := range s.Trend {
		resp.Trend = append(resp.Trend, WeekStatResponse(w))
	}
	return resp
}
