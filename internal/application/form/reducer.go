package form

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/brdoc"
)

// ListPath pantalla a la que se vuelve tras guardar.
const ListPath = "/customers"

// Mensajes visibles del formulario.
const (
	MsgPostalCodeNotFound = "CEP não encontrado ou inválido"
	MsgPostalCodeLength   = "CEP deve ter 8 dígitos"
	MsgCreditLimitInvalid = "Limite de crédito inválido"
	MsgCreditLimitNeg     = "Limite de crédito não pode ser negativo"
	MsgLoadFailed         = "Erro ao carregar dados do cliente"
	MsgCreateFailed       = "Erro ao criar cliente"
	MsgUpdateFailed       = "Erro ao atualizar cliente"
	MsgConnection         = "Erro de conexão. Verifique sua rede e tente novamente"
)

// Reduce aplica ev sobre s y devuelve el nuevo estado y los efectos a ejecutar.
// No tiene efectos secundarios.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Mounted:
		if s.Status != StatusIdle {
			return s, nil
		}
		if s.Mode == ModeEdit {
			s.Status = StatusLoading
			return s, []Effect{FetchCustomer{ID: s.ID}}
		}
		s.Status = StatusReady
		return s, nil

	case Loaded:
		if s.Status != StatusLoading {
			return s, nil
		}
		s.Values = valuesFromCustomer(e.Customer)
		s.UserID = e.Customer.UserID
		s.Errors = map[Field]string{}
		s.FormError = ""
		s.Status = StatusReady
		return s, nil

	case LoadFailed:
		if s.Status != StatusLoading {
			return s, nil
		}
		s.Status = StatusFailed
		s.FormError = failureMessage(e.Err, MsgLoadFailed)
		return s, nil

	case FieldChanged:
		return changeField(s, e.Field, e.Value)

	case LookupSucceeded:
		// Sin descartar respuestas viejas: la última en llegar gana.
		if s.Lookups > 0 {
			s.Lookups--
		}
		s = s.withValue(FieldStreet, e.Address.Street).
			withValue(FieldNeighborhood, e.Address.Neighborhood).
			withValue(FieldCity, e.Address.City).
			withValue(FieldState, e.Address.State)
		if e.Address.Complement != "" {
			s = s.withValue(FieldComplement, e.Address.Complement)
		}
		return s.withError(FieldPostalCode, ""), nil

	case LookupFailed:
		if s.Lookups > 0 {
			s.Lookups--
		}
		msg := MsgPostalCodeNotFound
		if errors.Is(e.Err, domain.ErrLookupFailed) || errors.Is(e.Err, domain.ErrTransport) {
			msg = MsgConnection
		}
		return s.withError(FieldPostalCode, msg), nil

	case SubmitRequested:
		if s.Status != StatusReady && s.Status != StatusFailed {
			return s, nil
		}
		payload, errs := validate(s)
		if len(errs) > 0 {
			return s.withErrors(errs), nil
		}
		s.Errors = map[Field]string{}
		s.FormError = ""
		s.Status = StatusSubmitting
		return s, []Effect{Submit{Mode: s.Mode, ID: s.ID, Payload: payload}}

	case SubmitSucceeded:
		if s.Status != StatusSubmitting {
			return s, nil
		}
		s.Status = StatusSuccess
		return s, []Effect{Navigate{To: ListPath}}

	case SubmitFailed:
		if s.Status != StatusSubmitting {
			return s, nil
		}
		s.Status = StatusFailed
		fallback := MsgCreateFailed
		if s.Mode == ModeEdit {
			fallback = MsgUpdateFailed
		}
		s.FormError = failureMessage(e.Err, fallback)
		var ve *domain.ValidationError
		if errors.As(e.Err, &ve) {
			errs := make(map[Field]string, len(ve.Fields))
			for k, msg := range ve.Fields {
				errs[Field(k)] = msg
			}
			s = s.withErrors(errs)
		}
		return s, nil
	}
	return s, nil
}

func changeField(s State, f Field, value string) (State, []Effect) {
	if s.Status == StatusLoading {
		return s, nil
	}
	switch f {
	case FieldPostalCode:
		formatted := brdoc.FormatPostalCode(value)
		s = s.withValue(f, formatted).withError(f, "")
		if digits := brdoc.Digits(formatted); len(digits) == entity.PostalCodeLength {
			s.Lookups++
			return s, []Effect{LookupAddress{PostalCode: digits}}
		}
		return s, nil
	case FieldTaxID:
		value = brdoc.FormatTaxID(value)
	case FieldPhone:
		value = brdoc.FormatPhone(value)
	case FieldState:
		value = strings.ToUpper(value)
	}
	return s.withValue(f, value).withError(f, ""), nil
}

// valuesFromCustomer valores de pantalla: documentos con máscara, límite con 2 decimales y
// validade solo con la fecha.
func valuesFromCustomer(c dto.CustomerResponse) Values {
	complement := ""
	if c.Complement != nil {
		complement = *c.Complement
	}
	return Values{
		FieldCode:         c.Code,
		FieldName:         c.Name,
		FieldTaxID:        brdoc.FormatTaxID(c.TaxID),
		FieldPostalCode:   brdoc.FormatPostalCode(c.PostalCode.String()),
		FieldStreet:       c.Street,
		FieldAddress:      c.Address,
		FieldNumber:       c.Number,
		FieldNeighborhood: c.Neighborhood,
		FieldCity:         c.City,
		FieldState:        c.State,
		FieldComplement:   complement,
		FieldPhone:        brdoc.FormatPhone(c.Phone),
		FieldCreditLimit:  c.CreditLimit.StringFixed(2),
		FieldExpiresAt:    dateOnly(c.ExpiresAt),
	}
}

func dateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// validate revisa obligatorios y formatos antes de cualquier llamada a la red.
func validate(s State) (Payload, map[Field]string) {
	errs := map[Field]string{}
	for _, f := range requiredFields {
		if strings.TrimSpace(s.Value(f)) == "" {
			errs[f] = dto.RequiredMessage(string(f))
		}
	}

	postal := brdoc.Digits(s.Value(FieldPostalCode))
	if _, missing := errs[FieldPostalCode]; !missing && len(postal) != entity.PostalCodeLength {
		errs[FieldPostalCode] = MsgPostalCodeLength
	}

	var limit decimal.Decimal
	if _, missing := errs[FieldCreditLimit]; !missing {
		var err error
		limit, err = brdoc.ParseAmount(s.Value(FieldCreditLimit))
		switch {
		case err != nil:
			errs[FieldCreditLimit] = MsgCreditLimitInvalid
		case limit.IsNegative():
			errs[FieldCreditLimit] = MsgCreditLimitNeg
		}
	}
	if len(errs) > 0 {
		return Payload{}, errs
	}

	trim := func(f Field) string { return strings.TrimSpace(s.Value(f)) }
	return Payload{
		UserID:       s.UserID,
		Code:         trim(FieldCode),
		Name:         trim(FieldName),
		TaxID:        brdoc.Digits(s.Value(FieldTaxID)),
		PostalCode:   postal,
		Street:       trim(FieldStreet),
		Address:      trim(FieldAddress),
		Number:       trim(FieldNumber),
		Neighborhood: trim(FieldNeighborhood),
		City:         trim(FieldCity),
		State:        strings.ToUpper(trim(FieldState)),
		Complement:   trim(FieldComplement),
		Phone:        brdoc.Digits(s.Value(FieldPhone)),
		CreditLimit:  limit,
		ExpiresAt:    dateOnly(trim(FieldExpiresAt)),
	}, nil
}

func failureMessage(err error, fallback string) string {
	if errors.Is(err, domain.ErrTransport) {
		return MsgConnection
	}
	return fallback
}
