package models

// DailyDashboard es la vista completa de un día: plan, valores derivados,
// operaciones y estado de bloqueo. Es lo que consume la UI en una sola llamada.
type DailyDashboard struct {
	Date           string          `json:"date"`
	IsToday        bool            `json:"isToday"`
	Plan           *TradingPlan    `json:"plan"`
	CalculatedPlan *CalculatedPlan `json:"calculatedPlan"`
	Trades         []Trade         `json:"trades"`
	Summary        TradeSummary    `json:"summary"`
	LockStatus     string          `json:"lockStatus"`
	TradingLocked  bool            `json:"tradingLocked"`
}
