package repository

import (
	"time"

	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
)

// StockUpdateRepository puerto de persistencia para StockUpdate.
type StockUpdateRepository interface {
	Create(update *entity.StockUpdate) error
	GetByID(id string) (*entity.StockUpdate, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.StockUpdate, error)
	Delete(id string) error
}
