package services

import (
	"errors"
	"math"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
)

var ErrInvalidTradingDays = errors.New("la cantidad de días debe ser al menos 1")

// GenerateDailyTargets genera el cronograma de crecimiento compuesto: resuelve
// la tasa diaria r tal que (1+r)^days = 1 + profitGoal/100 y la aplica día a
// día. El capital final del último día equivale a
// capital*(1+profitGoal/100), salvo redondeo de punto flotante.
func GenerateDailyTargets(capital, profitGoal float64, days int) ([]models.DailyPlanTarget, error) {
	if days < 1 {
		return nil, ErrInvalidTradingDays
	}

	dailyGrowthRate := math.Pow(1+profitGoal/100, 1/float64(days)) - 1

	currentCapital := capital
	targets := make([]models.DailyPlanTarget, 0, days)
	for day := 1; day <= days; day++ {
		targetProfit := currentCapital * dailyGrowthRate
		endingCapital := currentCapital + targetProfit
		targets = append(targets, models.DailyPlanTarget{
			Day:             day,
			StartingCapital: currentCapital,
			TargetProfit:    targetProfit,
			EndingCapital:   endingCapital,
			Completed:       false,
		})
		currentCapital = endingCapital
	}

	return targets, nil
}
