package entity

import (
	"fmt"
	"strconv"
	"unicode"
)

// PostalCodeLength cantidad exacta de dígitos de un CEP.
const PostalCodeLength = 8

// PostalCode CEP almacenado como entero (columna INTEGER). Los ceros a la izquierda
// se recuperan al formatear con String.
type PostalCode uint32

// ParsePostalCode acepta "01310-930", "01310930", etc. Exige exactamente 8 dígitos.
func ParsePostalCode(raw string) (PostalCode, error) {
	var digits []rune
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) != PostalCodeLength {
		return 0, fmt.Errorf("CEP debe tener %d dígitos, se recibieron %d", PostalCodeLength, len(digits))
	}
	n, err := strconv.ParseUint(string(digits), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("CEP inválido: %w", err)
	}
	return PostalCode(n), nil
}

// String devuelve los 8 dígitos con ceros a la izquierda.
func (p PostalCode) String() string {
	return fmt.Sprintf("%08d", uint32(p))
}
