package dto

import "freightdesk/internal/entities"

type DashboardCounter struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value int    `json:"value"`
}

type DashboardResponse struct {
	Role     string             `json:"role"`
	Counters []DashboardCounter `json:"counters"`
}

func FromDashboard(s entities.DashboardSummary) DashboardResponse {
	counters := make([]DashboardCounter, 0, len(s.Counters))
	for _, c := range s.Counters {
		counters = append(counters, DashboardCounter(c))
	}
	return DashboardResponse{
		Role:     s.Role.String(),
		Counters: counters,
	}
}
