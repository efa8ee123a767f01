package domain

type StatsRequest struct {
	Hours int `query:"hours" validate:"min=1,max=720"` // 30 days max
}

type KindCount struct {
	Kind  Kind  `json:"kind"`
	Count int64 `json:"count"`
}

// StatsSummary is the admin roll-up over the last N hours.
type StatsSummary struct {
	Hours           int         `json:"hours"`
	TotalReports    int64       `json:"total_reports"`
	CutReports      int64       `json:"cut_reports"`
	RestoredReports int64       `json:"restored_reports"`
	ActiveIncidents int64       `json:"active_incidents"`
	ActiveOutages   int64       `json:"active_outages"`
	ByKind          []KindCount `json:"by_kind"`
}
