// Package form controla los formularios de alta y edición de clientes: estado inmutable,
// un reductor puro que devuelve efectos y un Controller que ejecuta esos efectos.
package form

import "github.com/jhoicas/clientes-api/internal/domain/entity"

// Mode alta o edición.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Status etapa del formulario.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Field nombre de campo; coincide con la clave JSON de la API.
type Field string

const (
	FieldCode         Field = "code"
	FieldName         Field = "name"
	FieldTaxID        Field = "taxId"
	FieldPostalCode   Field = "postalCode"
	FieldStreet       Field = "street"
	FieldAddress      Field = "address"
	FieldNumber       Field = "number"
	FieldNeighborhood Field = "neighborhood"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldComplement   Field = "complement"
	FieldPhone        Field = "phone"
	FieldCreditLimit  Field = "creditLimit"
	FieldExpiresAt    Field = "expiresAt"
)

// requiredFields obligatorios en alta y edición.
var requiredFields = []Field{
	FieldCode, FieldName, FieldTaxID, FieldPhone, FieldPostalCode, FieldCreditLimit, FieldExpiresAt,
}

// Values texto de cada campo tal como se muestra.
type Values map[Field]string

// State estado del formulario. Los métodos del paquete nunca lo modifican en sitio.
type State struct {
	Mode      Mode
	ID        entity.ID // solo edición
	UserID    entity.ID
	Status    Status
	Values    Values
	Errors    map[Field]string
	FormError string
	Lookups   int // consultas de CEP en curso
}

// NewCreate estado inicial de alta.
func NewCreate(userID entity.ID) State {
	return State{Mode: ModeCreate, UserID: userID, Status: StatusIdle, Values: Values{}, Errors: map[Field]string{}}
}

// NewEdit estado inicial de edición del cliente id.
func NewEdit(id entity.ID) State {
	return State{Mode: ModeEdit, ID: id, Status: StatusIdle, Values: Values{}, Errors: map[Field]string{}}
}

// Value valor actual del campo.
func (s State) Value(f Field) string { return s.Values[f] }

// Error mensaje del campo, vacío si no tiene.
func (s State) Error(f Field) string { return s.Errors[f] }

func (s State) withValue(f Field, v string) State {
	values := make(Values, len(s.Values)+1)
	for k, old := range s.Values {
		values[k] = old
	}
	values[f] = v
	s.Values = values
	return s
}

func (s State) withError(f Field, msg string) State {
	errs := make(map[Field]string, len(s.Errors)+1)
	for k, old := range s.Errors {
		if k != f {
			errs[k] = old
		}
	}
	if msg != "" {
		errs[f] = msg
	}
	s.Errors = errs
	return s
}

func (s State) withErrors(errs map[Field]string) State {
	s.Errors = errs
	return s
}
