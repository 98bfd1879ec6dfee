package services

import (
	"github.com/MatiasFerreyra/Journal_Api/internal/models"
)

// LockStatus indica si el día quedó bloqueado por alcanzar la meta de
// ganancia o el stop loss.
type LockStatus string

const (
	LockNone   LockStatus = "none"
	LockProfit LockStatus = "profit"
	LockLoss   LockStatus = "loss"
)

// EvaluateLock compara el P/L acumulado contra los montos del plan calculado.
func EvaluateLock(totalPL float64, calc models.CalculatedPlan) LockStatus {
	if totalPL >= calc.ProfitTargetAmount {
		return LockProfit
	}
	if totalPL <= -calc.StopLossAmount {
		return LockLoss
	}
	return LockNone
}

// TradingLocked decide si se pueden registrar nuevas operaciones. Un día
// histórico es de solo lectura aunque no haya tocado meta ni stop.
func TradingLocked(status LockStatus, isToday bool) bool {
	return status != LockNone || !isToday
}
