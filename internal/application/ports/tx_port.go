package ports

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/repository"
)

// CustomerTxRunner ejecuta fn dentro de una transacción, con un repositorio atado a ella.
// Si fn devuelve error no se persiste nada.
type CustomerTxRunner interface {
	RunCustomers(ctx context.Context, fn func(repo repository.CustomerRepository) error) error
}
