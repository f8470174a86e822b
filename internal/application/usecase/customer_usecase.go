package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

const (
	// DefaultPageSize tamaño de página cuando no se informa limit.
	DefaultPageSize = 10
	// MaxPageSize tope de registros por página (la UI pide hasta 1000 de una vez).
	MaxPageSize = 1000
	// MaxPage tope de page: el OFFSET resultante cabe en un int32.
	MaxPage = math.MaxInt32 / MaxPageSize
)

// CustomerUseCase casos de uso CRUD del cadastro de clientes.
type CustomerUseCase struct {
	repo        repository.CustomerRepository
	checkDigits bool
}

// CustomerOption configura el caso de uso.
type CustomerOption func(*CustomerUseCase)

// WithTaxIDCheckDigits exige dígitos verificadores válidos de CPF/CNPJ.
func WithTaxIDCheckDigits(enabled bool) CustomerOption {
	return func(uc *CustomerUseCase) { uc.checkDigits = enabled }
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, opts ...CustomerOption) *CustomerUseCase {
	uc := &CustomerUseCase{repo: repo}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create valida, normaliza (CPF/CNPJ, teléfono y CEP solo dígitos) y persiste un cliente.
// Los campos de dirección omitidos quedan vacíos.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer := &entity.Customer{}
	fields := uc.apply(customer, dto.UpdateCustomerRequest{
		UserID:       &in.UserID,
		Code:         &in.Code,
		Name:         &in.Name,
		TaxID:        &in.TaxID,
		PostalCode:   &in.PostalCode,
		Street:       &in.Street,
		Address:      &in.Address,
		Number:       &in.Number,
		Neighborhood: &in.Neighborhood,
		City:         &in.City,
		State:        &in.State,
		Complement:   in.Complement,
		Phone:        &in.Phone,
		CreditLimit:  in.CreditLimit,
		ExpiresAt:    &in.ExpiresAt,
	})
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// GetByID obtiene un cliente. domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id entity.ID) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// List devuelve una página de clientes (más recientes primero) y los metadatos de paginación.
func (uc *CustomerUseCase) List(ctx context.Context, filter entity.CustomerFilter, page, limit int) (*dto.CustomerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	list, total, err := uc.repo.List(ctx, NormalizeFilter(filter), limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.ToCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Data: items,
		Pagination: dto.PaginationResponse{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

// Update aplica solo los campos presentes en la solicitud.
func (uc *CustomerUseCase) Update(ctx context.Context, id entity.ID, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fields := uc.apply(customer, in); len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("actualizar cliente: %w", err)
	}
	out := dto.ToCustomerResponse(customer)
	return &out, nil
}

// Delete elimina un cliente. domain.ErrNotFound si no existe.
func (uc *CustomerUseCase) Delete(ctx context.Context, id entity.ID) error {
	return uc.repo.Delete(ctx, id)
}

// NormalizeFilter recorta espacios y deja el CEP solo con dígitos. Un CEP sin ningún dígito
// se conserva tal cual: no coincide con ningún registro.
func NormalizeFilter(f entity.CustomerFilter) entity.CustomerFilter {
	postal := strings.TrimSpace(f.PostalCode)
	if d := brdoc.Digits(postal); d != "" {
		postal = d
	}
	return entity.CustomerFilter{
		Code:       strings.TrimSpace(f.Code),
		Name:       strings.TrimSpace(f.Name),
		City:       strings.TrimSpace(f.City),
		PostalCode: postal,
	}
}

// apply copia en customer los campos presentes de in, normalizados. Devuelve los mensajes
// de los campos rechazados (vacío si todo es válido).
func (uc *CustomerUseCase) apply(c *entity.Customer, in dto.UpdateCustomerRequest) map[string]string {
	fields := map[string]string{}

	if in.UserID != nil && !in.UserID.IsZero() {
		c.UserID = *in.UserID
	}
	if in.Code != nil {
		if v := strings.TrimSpace(*in.Code); v != "" {
			c.Code = v
		} else {
			fields["code"] = dto.RequiredMessage("code")
		}
	}
	if in.Name != nil {
		if v := strings.TrimSpace(*in.Name); v != "" {
			c.Name = v
		} else {
			fields["name"] = dto.RequiredMessage("name")
		}
	}
	if in.TaxID != nil {
		d := brdoc.Digits(*in.TaxID)
		switch {
		case len(d) != brdoc.CPFDigits && len(d) != brdoc.CNPJDigits:
			fields["taxId"] = "CPF/CNPJ deve ter 11 ou 14 dígitos"
		case uc.checkDigits && brdoc.ValidateTaxID(d) != nil:
			fields["taxId"] = "CPF/CNPJ inválido"
		default:
			c.TaxID = d
		}
	}
	if in.PostalCode != nil {
		if pc, err := entity.ParsePostalCode(string(*in.PostalCode)); err != nil {
			fields["postalCode"] = "CEP deve ter 8 dígitos"
		} else {
			c.PostalCode = pc
		}
	}
	setTrimmed(&c.Street, in.Street)
	setTrimmed(&c.Address, in.Address)
	setTrimmed(&c.Number, in.Number)
	setTrimmed(&c.Neighborhood, in.Neighborhood)
	setTrimmed(&c.City, in.City)
	if in.State != nil {
		c.State = strings.ToUpper(strings.TrimSpace(*in.State))
	}
	if in.Complement != nil {
		if v := strings.TrimSpace(*in.Complement); v != "" {
			c.Complement = &v
		} else {
			c.Complement = nil
		}
	}
	if in.Phone != nil {
		d := brdoc.Digits(*in.Phone)
		if len(d) < 10 || len(d) > 11 {
			fields["phone"] = "Telefone deve ter 10 ou 11 dígitos"
		} else {
			c.Phone = d
		}
	}
	if in.CreditLimit != nil {
		if in.CreditLimit.IsNegative() {
			fields["creditLimit"] = "Limite de crédito não pode ser negativo"
		} else {
			c.CreditLimit = in.CreditLimit.Round(2)
		}
	}
	if in.ExpiresAt != nil {
		if d, err := ParseDate(*in.ExpiresAt); err != nil {
			fields["expiresAt"] = "Validade deve estar no formato AAAA-MM-DD"
		} else {
			c.ExpiresAt = d
		}
	}
	return fields
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// ParseDate acepta "2006-01-02" o un datetime ISO (se descarta la hora).
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(dto.DateLayout) {
		return time.Time{}, fmt.Errorf("fecha inválida %q", raw)
	}
	if len(raw) > len(dto.DateLayout) && raw[len(dto.DateLayout)] != 'T' && raw[len(dto.DateLayout)] != ' ' {
		return time.Time{}, fmt.Errorf("fecha inválida %q", raw)
	}
	return time.Parse(dto.DateLayout, raw[:len(dto.DateLayout)])
}
