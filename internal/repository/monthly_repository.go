package repository

import (
	"time"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/services"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
	"github.com/google/uuid"
)

// MonthlyRepository administra el plan mensual compuesto. A lo sumo hay un
// plan activo por usuario; los anteriores quedan en el historial, el más
// recientemente archivado primero.
type MonthlyRepository struct {
	store *storage.Store
}

func NewMonthlyRepository(store *storage.Store) *MonthlyRepository {
	return &MonthlyRepository{store: store}
}

// GetActivePlan devuelve el plan activo o nil si no hay.
func (r *MonthlyRepository) GetActivePlan(email string) (*models.MonthlyPlan, error) {
	var plan models.MonthlyPlan
	found, err := r.store.Get(storage.MonthlyActiveKey(email), &plan)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &plan, nil
}

// GetHistory devuelve los planes archivados.
func (r *MonthlyRepository) GetHistory(email string) ([]models.MonthlyPlan, error) {
	history := []models.MonthlyPlan{}
	if _, err := r.store.Get(storage.MonthlyHistoryKey(email), &history); err != nil {
		return nil, err
	}
	return history, nil
}

// CreatePlan archiva el plan activo (si existe) anteponiéndolo al historial
// sin modificarlo, y luego instala el plan nuevo como activo.
func (r *MonthlyRepository) CreatePlan(email string, capital, profitGoal float64, days int) (*models.MonthlyPlan, error) {
	targets, err := services.GenerateDailyTargets(capital, profitGoal, days)
	if err != nil {
		return nil, err
	}

	active, err := r.GetActivePlan(email)
	if err != nil {
		return nil, err
	}
	if active != nil {
		history, err := r.GetHistory(email)
		if err != nil {
			return nil, err
		}
		updated := append([]models.MonthlyPlan{*active}, history...)
		if err := r.store.Set(storage.MonthlyHistoryKey(email), updated); err != nil {
			return nil, err
		}
	}

	plan := models.MonthlyPlan{
		ID:                uuid.NewString(),
		CreatedAt:         time.Now().Format(time.RFC3339),
		StartingCapital:   capital,
		MonthlyProfitGoal: profitGoal,
		TradingDays:       days,
		DailyTargets:      targets,
	}

	if err := r.store.Set(storage.MonthlyActiveKey(email), plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ToggleDayCompletion invierte el campo completed del día indicado del plan
// activo. Si planId no coincide con el plan activo no hace nada: los planes
// históricos no se modifican.
func (r *MonthlyRepository) ToggleDayCompletion(email, planId string, day int) error {
	active, err := r.GetActivePlan(email)
	if err != nil {
		return err
	}
	if active == nil || active.ID != planId {
		return nil
	}

	for i := range active.DailyTargets {
		if active.DailyTargets[i].Day == day {
			active.DailyTargets[i].Completed = !active.DailyTargets[i].Completed
		}
	}

	return r.store.Set(storage.MonthlyActiveKey(email), active)
}
