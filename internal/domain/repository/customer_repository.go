package repository

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create persiste el cliente y completa ID y CreatedAt asignados por la base.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve domain.ErrNotFound si no existe.
	GetByID(ctx context.Context, id entity.ID) (*entity.Customer, error)
	// List devuelve la página pedida y el total de registros que cumplen el filtro.
	List(ctx context.Context, filter entity.CustomerFilter, limit, offset int) ([]*entity.Customer, int, error)
	// Update reescribe todos los campos mutables. domain.ErrNotFound si no existe.
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete devuelve domain.ErrNotFound si no existe.
	Delete(ctx context.Context, id entity.ID) error
}
