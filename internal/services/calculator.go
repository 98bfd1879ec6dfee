package services

import (
	"math"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
)

// CalculatePlan deriva los montos operativos de un plan diario. Es una
// función pura: se recalcula en cada lectura, nunca se guarda el resultado.
func CalculatePlan(plan models.TradingPlan) models.CalculatedPlan {
	investmentPerTrade := plan.InitialCapital * (plan.RiskPerTrade / 100)
	stopLossAmount := plan.InitialCapital * (plan.StopLoss / 100)
	profitTargetAmount := plan.InitialCapital * (plan.DailyProfitTarget / 100)

	// Máximo de operaciones antes de agotar el stop loss, truncado hacia cero
	maxTrades := 0
	if investmentPerTrade > 0 {
		maxTrades = int(math.Floor(stopLossAmount / investmentPerTrade))
	}

	return models.CalculatedPlan{
		InvestmentPerTrade: investmentPerTrade,
		MaxTrades:          maxTrades,
		ProfitTargetAmount: profitTargetAmount,
		StopLossAmount:     stopLossAmount,
	}
}
