package form

import (
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// Event entrada del reductor.
type Event interface{ isEvent() }

// Mounted el formulario se abrió.
type Mounted struct{}

// Loaded llegó el cliente a editar.
type Loaded struct{ Customer dto.CustomerResponse }

// LoadFailed no se pudo obtener el cliente a editar.
type LoadFailed struct{ Err error }

// FieldChanged el usuario editó un campo.
type FieldChanged struct {
	Field Field
	Value string
}

// LookupSucceeded respuesta de la consulta de CEP.
type LookupSucceeded struct {
	PostalCode string
	Address    entity.Address
}

// LookupFailed la consulta de CEP falló o el CEP no existe.
type LookupFailed struct {
	PostalCode string
	Err        error
}

// SubmitRequested el usuario pidió guardar.
type SubmitRequested struct{}

// SubmitSucceeded la API aceptó el alta o la edición.
type SubmitSucceeded struct{ Customer dto.CustomerResponse }

// SubmitFailed la API rechazó el guardado o no respondió.
type SubmitFailed struct{ Err error }

func (Mounted) isEvent()         {}
func (Loaded) isEvent()          {}
func (LoadFailed) isEvent()      {}
func (FieldChanged) isEvent()    {}
func (LookupSucceeded) isEvent() {}
func (LookupFailed) isEvent()    {}
func (SubmitRequested) isEvent() {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Effect trabajo que el Controller debe ejecutar fuera del reductor.
type Effect interface{ isEffect() }

// FetchCustomer obtener el cliente a editar.
type FetchCustomer struct{ ID entity.ID }

// LookupAddress consultar la dirección del CEP (8 dígitos). No bloquea el formulario.
type LookupAddress struct{ PostalCode string }

// Submit enviar el formulario normalizado.
type Submit struct {
	Mode    Mode
	ID      entity.ID
	Payload Payload
}

// Navigate cambiar de pantalla.
type Navigate struct{ To string }

func (FetchCustomer) isEffect() {}
func (LookupAddress) isEffect() {}
func (Submit) isEffect()        {}
func (Navigate) isEffect()      {}
