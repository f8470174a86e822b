package form

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Payload datos normalizados que se envían a la API: CPF/CNPJ, teléfono y CEP solo dígitos.
type Payload struct {
	UserID       entity.ID
	Code         string
	Name         string
	TaxID        string
	PostalCode   string
	Street       string
	Address      string
	Number       string
	Neighborhood string
	City         string
	State        string
	Complement   string
	Phone        string
	CreditLimit  decimal.Decimal
	ExpiresAt    string
}

// CreateRequest body de POST /customers.
func (p Payload) CreateRequest() dto.CreateCustomerRequest {
	limit := p.CreditLimit
	req := dto.CreateCustomerRequest{
		UserID:       p.UserID,
		Code:         p.Code,
		Name:         p.Name,
		TaxID:        p.TaxID,
		PostalCode:   dto.PostalCodeInput(p.PostalCode),
		Street:       p.Street,
		Address:      p.Address,
		Number:       p.Number,
		Neighborhood: p.Neighborhood,
		City:         p.City,
		State:        p.State,
		Phone:        p.Phone,
		CreditLimit:  &limit,
		ExpiresAt:    p.ExpiresAt,
	}
	if p.Complement != "" {
		complement := p.Complement
		req.Complement = &complement
	}
	return req
}

// UpdateRequest body de PUT /customers/:id con todos los campos del formulario.
func (p Payload) UpdateRequest() dto.UpdateCustomerRequest {
	str := func(s string) *string { return &s }
	postal := dto.PostalCodeInput(p.PostalCode)
	limit := p.CreditLimit
	req := dto.UpdateCustomerRequest{
		Code:         str(p.Code),
		Name:         str(p.Name),
		TaxID:        str(p.TaxID),
		PostalCode:   &postal,
		Street:       str(p.Street),
		Address:      str(p.Address),
		Number:       str(p.Number),
		Neighborhood: str(p.Neighborhood),
		City:         str(p.City),
		State:        str(p.State),
		Complement:   str(p.Complement),
		Phone:        str(p.Phone),
		CreditLimit:  &limit,
		ExpiresAt:    str(p.ExpiresAt),
	}
	if !p.UserID.IsZero() {
		id := p.UserID
		req.UserID = &id
	}
	return req
}
