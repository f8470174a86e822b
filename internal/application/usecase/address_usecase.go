package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/ports"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

// AddressUseCase resuelve direcciones a partir del CEP delegando en el puerto AddressLookup.
type AddressUseCase struct {
	lookup  ports.AddressLookup
	timeout time.Duration
}

// NewAddressUseCase construye el caso de uso. timeout <= 0 usa 10 s.
func NewAddressUseCase(lookup ports.AddressLookup, timeout time.Duration) *AddressUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &AddressUseCase{lookup: lookup, timeout: timeout}
}

// Lookup acepta el CEP con o sin máscara. Si no tiene exactamente 8 dígitos devuelve
// domain.ErrInvalidInput sin consultar al proveedor.
func (uc *AddressUseCase) Lookup(ctx context.Context, raw string) (*dto.AddressResponse, error) {
	digits := brdoc.Digits(raw)
	if len(digits) != entity.PostalCodeLength {
		return nil, domain.NewValidationError(map[string]string{"postalCode": "CEP deve ter 8 dígitos"})
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	addr, err := uc.lookup.LookupPostalCode(ctx, digits)
	if err != nil {
		return nil, fmt.Errorf("consultar CEP %s: %w", digits, err)
	}
	if addr.PostalCode == "" {
		addr.PostalCode = digits
	}
	out := dto.ToAddressResponse(addr)
	return &out, nil
}
