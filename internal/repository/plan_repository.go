package repository

import (
	"time"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
)

// PlanRepository administra el plan de trading diario de cada usuario,
// uno por (email, fecha local).
type PlanRepository struct {
	store *storage.Store
}

func NewPlanRepository(store *storage.Store) *PlanRepository {
	return &PlanRepository{store: store}
}

// GetPlan devuelve el plan del día o nil si no existe.
func (r *PlanRepository) GetPlan(email string, date time.Time) (*models.TradingPlan, error) {
	var plan models.TradingPlan
	found, err := r.store.Get(storage.PlanKey(email, date), &plan)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &plan, nil
}

// CreatePlan guarda el plan del día, reemplazando el anterior si existía.
func (r *PlanRepository) CreatePlan(email string, date time.Time, plan models.TradingPlan) error {
	return r.store.Set(storage.PlanKey(email, date), plan)
}

// ClearPlan elimina el plan del día (el "reset" del plan).
func (r *PlanRepository) ClearPlan(email string, date time.Time) error {
	return r.store.Remove(storage.PlanKey(email, date))
}
