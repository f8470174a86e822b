// Package brdoc formatea y valida documentos brasileños usados en el cadastro de clientes:
// CEP, CPF/CNPJ y teléfono. Todas las funciones de formato son puras y totales: cualquier
// texto (incluso vacío o parcial) produce un resultado sin error.
package brdoc

import "regexp"

// Longitudes de referencia (solo dígitos).
const (
	PostalCodeDigits = 8
	CPFDigits        = 11
	CNPJDigits       = 14
	landlineDigits   = 10
)

var (
	reGroup3      = regexp.MustCompile(`(\d{3})(\d)`)
	reGroup2      = regexp.MustCompile(`(\d{2})(\d)`)
	reCPFSuffix   = regexp.MustCompile(`(\d{3})(\d{1,2})$`)
	reCNPJSuffix  = regexp.MustCompile(`(\d{4})(\d{1,2})$`)
	rePhoneSuffix = regexp.MustCompile(`(\d{4})(\d{1,4})$`)
	reCellSuffix  = regexp.MustCompile(`(\d{5})(\d{1,4})$`)
)

// Digits elimina todo lo que no sea dígito ASCII.
func Digits(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}

// FormatPostalCode devuelve "12345" para hasta 5 dígitos y "12345-678" a partir de 6.
// Solo se consideran los 8 primeros dígitos.
func FormatPostalCode(raw string) string {
	d := Digits(raw)
	if len(d) <= 5 {
		return d
	}
	end := len(d)
	if end > PostalCodeDigits {
		end = PostalCodeDigits
	}
	return d[:5] + "-" + d[5:end]
}

// FormatTaxID aplica la máscara de CPF (000.000.000-00) hasta 11 dígitos y la de
// CNPJ (00.000.000/0000-00) desde 12. Entradas parciales quedan agrupadas hasta donde alcance.
func FormatTaxID(raw string) string {
	d := Digits(raw)
	if len(d) <= CPFDigits {
		d = replaceFirst(reGroup3, d, "${1}.${2}")
		d = replaceFirst(reGroup3, d, "${1}.${2}")
		return replaceFirst(reCPFSuffix, d, "${1}-${2}")
	}
	d = replaceFirst(reGroup2, d, "${1}.${2}")
	d = replaceFirst(reGroup3, d, "${1}.${2}")
	d = replaceFirst(reGroup3, d, "${1}/${2}")
	return replaceFirst(reCNPJSuffix, d, "${1}-${2}")
}

// FormatPhone aplica (00) 0000-0000 hasta 10 dígitos y (00) 00000-0000 desde 11.
func FormatPhone(raw string) string {
	d := Digits(raw)
	d2 := replaceFirst(reGroup2, d, "(${1}) ${2}")
	if len(d) <= landlineDigits {
		return replaceFirst(rePhoneSuffix, d2, "${1}-${2}")
	}
	return replaceFirst(reCellSuffix, d2, "${1}-${2}")
}

// replaceFirst sustituye solo la primera coincidencia (regexp no trae un equivalente directo).
func replaceFirst(re *regexp.Regexp, s, template string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	expanded := re.ExpandString(nil, template, s, m)
	return s[:m[0]] + string(expanded) + s[m[1]:]
}
