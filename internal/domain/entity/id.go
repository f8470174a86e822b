package entity

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ID identificador numérico (BIGSERIAL). Viaja como string en JSON para no perder precisión
// en clientes que representan números como float64.
type ID int64

// ParseID convierte el texto recibido (path, query o JSON) en ID.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("id vacío")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id inválido %q: %w", s, err)
	}
	return ID(n), nil
}

// String devuelve la representación decimal.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero indica si el ID no fue asignado.
func (id ID) IsZero() bool { return id == 0 }

// MarshalJSON emite el ID entre comillas.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(id.String())), nil
}

// UnmarshalJSON acepta "123" o 123.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("id inválido: %w", err)
		}
		s = unq
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
