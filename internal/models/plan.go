package models

// TradingPlan es el plan de riesgo de un día de trading.
// Los porcentajes se expresan como números enteros o decimales (ej: 10 = 10%).
type TradingPlan struct {
	InitialCapital    float64 `json:"initialCapital" binding:"required,gt=0"`
	DailyProfitTarget float64 `json:"dailyProfitTarget" binding:"required,gt=0"`
	StopLoss          float64 `json:"stopLoss" binding:"required,gt=0"`
	RiskPerTrade      float64 `json:"riskPerTrade" binding:"required,gt=0"`
}

// CalculatedPlan son los valores derivados del plan. Nunca se persiste:
// se recalcula en cada lectura.
type CalculatedPlan struct {
	InvestmentPerTrade float64 `json:"investmentPerTrade"`
	MaxTrades          int     `json:"maxTrades"`
	ProfitTargetAmount float64 `json:"profitTargetAmount"`
	StopLossAmount     float64 `json:"stopLossAmount"`
}
