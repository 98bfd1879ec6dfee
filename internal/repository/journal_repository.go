package repository

import (
	"time"

	"github.com/MatiasFerreyra/Journal_Api/internal/models"
	"github.com/MatiasFerreyra/Journal_Api/internal/storage"
)

// JournalRepository administra el diario de operaciones de cada día.
// El diario es de solo agregado: las operaciones no se editan ni se borran.
type JournalRepository struct {
	store *storage.Store
}

func NewJournalRepository(store *storage.Store) *JournalRepository {
	return &JournalRepository{store: store}
}

// GetTrades devuelve las operaciones del día, la más reciente primero.
func (r *JournalRepository) GetTrades(email string, date time.Time) ([]models.Trade, error) {
	trades := []models.Trade{}
	if _, err := r.store.Get(storage.TradesKey(email, date), &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// AddTrade asigna el id, antepone la operación a la lista del día y
// persiste la lista completa. El id deriva del instante de creación: las
// operaciones se registran de a una, así que no colisiona dentro del día.
func (r *JournalRepository) AddTrade(email string, date time.Time, trade models.Trade) (models.Trade, error) {
	trades, err := r.GetTrades(email, date)
	if err != nil {
		return models.Trade{}, err
	}

	trade.ID = time.Now().Format(time.RFC3339Nano)
	updated := append([]models.Trade{trade}, trades...)

	if err := r.store.Set(storage.TradesKey(email, date), updated); err != nil {
		return models.Trade{}, err
	}
	return trade, nil
}
