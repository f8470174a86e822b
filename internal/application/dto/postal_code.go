package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
)

// PostalCodeInput CEP recibido en POST/PUT. Acepta texto ("01310-930") o el número que
// devuelve la propia API (1310930); el número se completa con ceros a 8 dígitos.
type PostalCodeInput string

var maxPostalCode = decimal.NewFromInt(99999999)

// UnmarshalJSON acepta "01310-930", "01310930" o 1310930.
func (p *PostalCodeInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("CEP inválido: %w", err)
		}
		*p = PostalCodeInput(s)
		return nil
	}
	n, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("CEP inválido: %w", err)
	}
	if !n.IsInteger() || n.IsNegative() || n.GreaterThan(maxPostalCode) {
		return fmt.Errorf("CEP inválido: %s", data)
	}
	*p = PostalCodeInput(entity.PostalCode(n.IntPart()).String())
	return nil
}
