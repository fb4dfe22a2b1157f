package models

import "time"

// ReportRequest — параметры отчёта: период и необязательный проект.
type ReportRequest struct {
	PeriodRequest
	ProjectID int `json:"project_id,omitempty" validate:"gte=0"`
}

// ReportFilter передаётся в слой доступа к данным.
type ReportFilter struct {
	ProjectID *int      // nil, если отчёт по всем проектам
	Start     time.Time // Начало периода включительно
	End       time.Time // Конец периода включительно
	Timezone  string    // IANA-зона для группировки по дням
}

// StatusCount — количество задач в одном статусе.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DayCount — количество созданных и решённых задач за календарный день.
type DayCount struct {
	Day       time.Time `json:"day"`
	Submitted int       `json:"submitted"`
	Resolved  int       `json:"resolved"`
}

// Summary — сводка по статусам задач, созданных за период.
type Summary struct {
	Period   PeriodResponse `json:"period"`
	Total    int            `json:"total"`
	ByStatus []StatusCount  `json:"by_status"`
}

// Trend — ежедневная динамика за период, по точке на каждый день.
type Trend struct {
	Period PeriodResponse `json:"period"`
	Days   []DayCount     `json:"days"`
}
