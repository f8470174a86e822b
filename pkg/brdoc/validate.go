package brdoc

import "fmt"

var (
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCPF verifica longitud y dígitos verificadores (módulo 11) de un CPF.
// Acepta el valor con o sin máscara.
func ValidateCPF(raw string) error {
	d := Digits(raw)
	if len(d) != CPFDigits {
		return fmt.Errorf("brdoc: CPF debe tener %d dígitos, se encontraron %d", CPFDigits, len(d))
	}
	if repeated(d) {
		return fmt.Errorf("brdoc: CPF con dígitos repetidos")
	}
	for pos := 9; pos <= 10; pos++ {
		sum := 0
		for i := 0; i < pos; i++ {
			sum += int(d[i]-'0') * (pos + 1 - i)
		}
		r := sum * 10 % 11
		if r == 10 {
			r = 0
		}
		if int(d[pos]-'0') != r {
			return fmt.Errorf("brdoc: dígito verificador del CPF inválido en posición %d", pos+1)
		}
	}
	return nil
}

// ValidateCNPJ verifica longitud y dígitos verificadores de un CNPJ.
func ValidateCNPJ(raw string) error {
	d := Digits(raw)
	if len(d) != CNPJDigits {
		return fmt.Errorf("brdoc: CNPJ debe tener %d dígitos, se encontraron %d", CNPJDigits, len(d))
	}
	if repeated(d) {
		return fmt.Errorf("brdoc: CNPJ con dígitos repetidos")
	}
	if int(d[12]-'0') != cnpjDigit(d, cnpjWeights1[:]) {
		return fmt.Errorf("brdoc: primer dígito verificador del CNPJ inválido")
	}
	if int(d[13]-'0') != cnpjDigit(d, cnpjWeights2[:]) {
		return fmt.Errorf("brdoc: segundo dígito verificador del CNPJ inválido")
	}
	return nil
}

// ValidateTaxID elige CPF o CNPJ según la cantidad de dígitos.
func ValidateTaxID(raw string) error {
	switch d := Digits(raw); len(d) {
	case CPFDigits:
		return ValidateCPF(d)
	case CNPJDigits:
		return ValidateCNPJ(d)
	default:
		return fmt.Errorf("brdoc: CPF/CNPJ debe tener %d o %d dígitos, se encontraron %d", CPFDigits, CNPJDigits, len(d))
	}
}

// IsOrganization indica si el documento corresponde a persona jurídica (más de 11 dígitos).
func IsOrganization(raw string) bool {
	return len(Digits(raw)) > CPFDigits
}

func cnpjDigit(d string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += int(d[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func repeated(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}
