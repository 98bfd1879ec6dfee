package middleware

import (
	"net/http"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/repository"
	"github.com/MatiasFerreyra/Journal_Api/internal/services"
	"github.com/gin-gonic/gin"
)

// GetPlan devuelve el plan del día junto con sus valores calculados.
func GetPlan(c *gin.Context) {
	email := c.GetString("email")

	date, _, ok := requestDate(c)
	if !ok {
		return
	}

	plan, err := planRepo.GetPlan(email, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if plan == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": repository.ErrPlanNotFound.Error()})
		return
	}

	calculated := services.CalculatePlan(*plan)
	c.JSON(http.StatusOK, gin.H{"plan": plan, "calculatedPlan": calculated})
}

// CreatePlan guarda el plan del día. Reemplaza por completo el plan anterior
// si ya había uno para esa fecha.
func CreatePlan(c *gin.Context) {
	email := c.GetString("email")

	date, _, ok := requestDate(c)
	if !ok {
		return
	}

	var plan models.TradingPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := planRepo.CreatePlan(email, date, plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	calculated := services.CalculatePlan(plan)
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Plan creado exitosamente",
		"plan":           plan,
		"calculatedPlan": calculated,
	})
}

// DeletePlan elimina el plan del día (el botón de "reset" de la UI).
func DeletePlan(c *gin.Context) {
	email := c.GetString("email")

	date, _, ok := requestDate(c)
	if !ok {
		return
	}

	if err := planRepo.ClearPlan(email, date); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan eliminado"})
}
