package ports

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// AddressLookup puerto hacia el directorio externo de CEPs.
// El adaptador de infraestructura (p. ej. ViaCEP) implementa esta interfaz.
type AddressLookup interface {
	// LookupPostalCode recibe exactamente 8 dígitos (ya validados por el llamador).
	// Devuelve domain.ErrAddressNotFound si el proveedor no conoce el CEP y
	// domain.ErrLookupFailed ante fallos de red o respuestas inesperadas.
	LookupPostalCode(ctx context.Context, postalCode string) (*entity.Address, error)
}
