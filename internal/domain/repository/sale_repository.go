package repository

import (
	"time"

	"github.com/tu-usuario/cafeteria-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
	Delete(id string) error
}
