// Package models содержит доменные структуры отчётов по задачам баг-трекера,
// а также DTO для приёма параметров периода из HTTP-запросов.
package models

// PeriodRequest используется для приёма параметров периода из query-строки
// до их валидации и передачи в калькулятор периода.
// Даты приходят строками в формате отображения из конфига.
type PeriodRequest struct {
	Type      string `json:"type" validate:"required"`               // Имя типа периода, например "month_to_date"
	StartDate string `json:"start_date,omitempty" validate:"max=32"` // Начало для произвольного диапазона
	EndDate   string `json:"end_date,omitempty" validate:"max=32"`   // Конец для произвольного диапазона
	Reference string `json:"reference,omitempty" validate:"max=32"`  // Точка отсчёта для прошлых периодов
}

// PeriodResponse — вычисленный период в виде, пригодном для отображения.
type PeriodResponse struct {
	Type           string `json:"type"`
	Label          string `json:"label"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	StartTimestamp int64  `json:"start_timestamp"`
	EndTimestamp   int64  `json:"end_timestamp"`
	ElapsedDays    int    `json:"elapsed_days"`
}
