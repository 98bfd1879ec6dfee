package models

// DailyPlanTarget es la meta de un día dentro de un plan mensual compuesto.
// Completed es el único campo mutable después de la creación.
type DailyPlanTarget struct {
	Day             int     `json:"day"`
	StartingCapital float64 `json:"startingCapital"`
	TargetProfit    float64 `json:"targetProfit"`
	EndingCapital   float64 `json:"endingCapital"`
	Completed       bool    `json:"completed"`
}

// MonthlyPlan es un plan de crecimiento compuesto de capital a N días.
// Un usuario tiene a lo sumo un plan activo; al crear uno nuevo el anterior
// pasa al historial sin modificarse.
type MonthlyPlan struct {
	ID                string            `json:"id"`
	CreatedAt         string            `json:"createdAt"`
	StartingCapital   float64           `json:"startingCapital"`
	MonthlyProfitGoal float64           `json:"monthlyProfitGoal"`
	TradingDays       int               `json:"tradingDays"`
	DailyTargets      []DailyPlanTarget `json:"dailyTargets"`
}
