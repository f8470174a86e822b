package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/clientes-api/internal/domain"
)

var validate = newValidator()

// FieldLabels nombres visibles de los campos (mensajes en pt-BR, como la interfaz).
var FieldLabels = map[string]string{
	"userId":       "Usuário",
	"code":         "Código",
	"name":         "Nome",
	"taxId":        "CPF/CNPJ",
	"postalCode":   "CEP",
	"street":       "Logradouro",
	"address":      "Endereço",
	"number":       "Número",
	"neighborhood": "Bairro",
	"city":         "Cidade",
	"state":        "UF",
	"complement":   "Complemento",
	"phone":        "Telefone",
	"creditLimit":  "Limite de crédito",
	"expiresAt":    "Validade",
}

// feminineLabels etiquetas que concuerdan en femenino ("Validade é obrigatória").
var feminineLabels = map[string]bool{"expiresAt": true}

func newValidator() *validator.Validate {
	v := validator.New()
	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica las reglas `validate` del DTO. Devuelve *domain.ValidationError con un
// mensaje por campo, o nil.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return fmt.Errorf("validar entrada: %w", err)
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = fieldMessage(fe.Field(), fe.Tag(), fe.Param())
	}
	return domain.NewValidationError(fields)
}

// RequiredMessage mensaje estándar de campo obligatorio.
func RequiredMessage(field string) string {
	return fieldMessage(field, "required", "")
}

func fieldMessage(field, tag, param string) string {
	label := FieldLabels[field]
	if label == "" {
		label = field
	}
	switch tag {
	case "required":
		if feminineLabels[field] {
			return label + " é obrigatória"
		}
		return label + " é obrigatório"
	case "len":
		return fmt.Sprintf("%s deve ter %s caracteres", label, param)
	case "max":
		return fmt.Sprintf("%s deve ter no máximo %s caracteres", label, param)
	case "min":
		return label + " não pode ficar vazio"
	case "alpha":
		return label + " deve conter apenas letras"
	default:
		return label + " inválido"
	}
}
