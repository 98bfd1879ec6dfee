package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MatiasFerreyra/Journal_Api/internal/services"
	"github.com/gin-gonic/gin"
)

// GetMonthlyPlan devuelve el plan mensual activo y el historial de planes
// archivados, el más reciente primero.
func GetMonthlyPlan(c *gin.Context) {
	email := c.GetString("email")

	active, err := monthlyRepo.GetActivePlan(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	history, err := monthlyRepo.GetHistory(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activePlan": active, "historicalPlans": history})
}

// CreateMonthlyPlan genera un plan compuesto nuevo. Si había un plan activo,
// pasa al historial sin modificarse.
func CreateMonthlyPlan(c *gin.Context) {
	email := c.GetString("email")

	var input struct {
		StartingCapital   float64 `json:"startingCapital" binding:"required,gt=0"`
		MonthlyProfitGoal float64 `json:"monthlyProfitGoal" binding:"required,gt=0"`
		TradingDays       int     `json:"tradingDays" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := monthlyRepo.CreatePlan(email, input.StartingCapital, input.MonthlyProfitGoal, input.TradingDays)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTradingDays) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Plan mensual creado", "plan": plan})
}

// ToggleDayCompletion marca o desmarca un día del plan activo como
// completado. Si el id no corresponde al plan activo no modifica nada: los
// planes históricos son de solo lectura.
func ToggleDayCompletion(c *gin.Context) {
	email := c.GetString("email")
	planId := c.Param("id")

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Día inválido"})
		return
	}

	if err := monthlyRepo.ToggleDayCompletion(email, planId, day); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	active, err := monthlyRepo.GetActivePlan(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activePlan": active})
}
