package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente del catálogo (cadastro de clientes).
type Customer struct {
	ID           ID
	UserID       ID // usuario propietario
	CreatedAt    time.Time
	Code         string // código de negocio, único
	Name         string
	TaxID        string // CPF (11 dígitos) o CNPJ (14 dígitos), solo dígitos
	PostalCode   PostalCode
	Street       string // logradouro
	Address      string // línea completa de dirección
	Number       string
	Neighborhood string // bairro
	City         string
	State        string // UF, 2 letras
	Complement   *string
	Phone        string // solo dígitos
	CreditLimit  decimal.Decimal
	ExpiresAt    time.Time // fecha de validez (sin hora)
}

// Address dirección resuelta a partir de un CEP.
type Address struct {
	PostalCode   string
	Street       string
	Neighborhood string
	City         string
	State        string
	Complement   string // vacío si el proveedor no lo informa
}

// CustomerFilter criterios de listado. Vacío = no filtra. Todos se combinan con AND.
type CustomerFilter struct {
	Code       string
	Name       string
	City       string
	PostalCode string
}

// IsEmpty indica si ningún criterio está definido.
func (f CustomerFilter) IsEmpty() bool {
	return f.Code == "" && f.Name == "" && f.City == "" && f.PostalCode == ""
}
