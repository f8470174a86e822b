package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// DateLayout formato de fecha (validade) en el wire.
const DateLayout = "2006-01-02"

// CreateCustomerRequest body para POST /customers. Los campos de dirección son opcionales.
type CreateCustomerRequest struct {
	UserID       entity.ID        `json:"userId" validate:"required"`
	Code         string           `json:"code" validate:"required,max=50"`
	Name         string           `json:"name" validate:"required,max=200"`
	TaxID        string           `json:"taxId" validate:"required"`
	PostalCode   PostalCodeInput  `json:"postalCode" validate:"required"`
	Street       string           `json:"street" validate:"max=200"`
	Address      string           `json:"address" validate:"max=300"`
	Number       string           `json:"number" validate:"max=20"`
	Neighborhood string           `json:"neighborhood" validate:"max=120"`
	City         string           `json:"city" validate:"max=120"`
	State        string           `json:"state" validate:"omitempty,len=2,alpha"`
	Complement   *string          `json:"complement,omitempty" validate:"omitempty,max=200"`
	Phone        string           `json:"phone" validate:"required"`
	CreditLimit  *decimal.Decimal `json:"creditLimit" validate:"required"`
	ExpiresAt    string           `json:"expiresAt" validate:"required"`
}

// UpdateCustomerRequest body para PUT /customers/:id. Solo cambian los campos presentes.
type UpdateCustomerRequest struct {
	UserID       *entity.ID       `json:"userId,omitempty"`
	Code         *string          `json:"code,omitempty" validate:"omitempty,min=1,max=50"`
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	TaxID        *string          `json:"taxId,omitempty"`
	PostalCode   *PostalCodeInput `json:"postalCode,omitempty"`
	Street       *string          `json:"street,omitempty" validate:"omitempty,max=200"`
	Address      *string          `json:"address,omitempty" validate:"omitempty,max=300"`
	Number       *string          `json:"number,omitempty" validate:"omitempty,max=20"`
	Neighborhood *string          `json:"neighborhood,omitempty" validate:"omitempty,max=120"`
	City         *string          `json:"city,omitempty" validate:"omitempty,max=120"`
	State        *string          `json:"state,omitempty" validate:"omitempty,len=2,alpha"`
	Complement   *string          `json:"complement,omitempty" validate:"omitempty,max=200"`
	Phone        *string          `json:"phone,omitempty"`
	CreditLimit  *decimal.Decimal `json:"creditLimit,omitempty"`
	ExpiresAt    *string          `json:"expiresAt,omitempty"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           entity.ID         `json:"id"`
	UserID       entity.ID         `json:"userId"`
	CreatedAt    time.Time         `json:"createdAt"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	TaxID        string            `json:"taxId"`
	PostalCode   entity.PostalCode `json:"postalCode"`
	Street       string            `json:"street"`
	Address      string            `json:"address"`
	Number       string            `json:"number"`
	Neighborhood string            `json:"neighborhood"`
	City         string            `json:"city"`
	State        string            `json:"state"`
	Complement   *string           `json:"complement,omitempty"`
	Phone        string            `json:"phone"`
	CreditLimit  decimal.Decimal   `json:"creditLimit"`
	ExpiresAt    string            `json:"expiresAt"`
}

// CustomerListResponse página de clientes.
type CustomerListResponse struct {
	Data       []CustomerResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// AddressResponse dirección resuelta por CEP.
type AddressResponse struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// ToCustomerResponse mapea la entidad al DTO de salida.
func ToCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID,
		UserID:       c.UserID,
		CreatedAt:    c.CreatedAt,
		Code:         c.Code,
		Name:         c.Name,
		TaxID:        c.TaxID,
		PostalCode:   c.PostalCode,
		Street:       c.Street,
		Address:      c.Address,
		Number:       c.Number,
		Neighborhood: c.Neighborhood,
		City:         c.City,
		State:        c.State,
		Complement:   c.Complement,
		Phone:        c.Phone,
		CreditLimit:  c.CreditLimit,
		ExpiresAt:    c.ExpiresAt.Format(DateLayout),
	}
}

// ToAddressResponse mapea la dirección resuelta.
func ToAddressResponse(a *entity.Address) AddressResponse {
	return AddressResponse{
		PostalCode:   a.PostalCode,
		Street:       a.Street,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}
